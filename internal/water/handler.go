package water

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/apierr"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/validation"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=water_test

type waterRepo interface {
	DaySummary(ctx context.Context, userID int, date string) (_ *Summary, err error)
	Add(ctx context.Context, entry Entry) (_ *Entry, err error)
	Delete(ctx context.Context, userID, id int) (err error)
	GetGoal(ctx context.Context, userID int) (_ *Goal, err error)
	SetGoal(ctx context.Context, userID int, goal Goal) (_ *Goal, err error)
}

type Handler struct {
	repo           waterRepo
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(repo waterRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/water-entries", handler.HandleList).Methods("GET", "OPTIONS").Name("list-water-entries")
	r.HandleFunc("/water-entries", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-water-entry")
	r.HandleFunc("/water-entries/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-water-entry")
	r.HandleFunc("/water-goal", handler.HandleGetGoal).Methods("GET", "OPTIONS").Name("get-water-goal")
	r.HandleFunc("/water-goal", handler.HandleSetGoal).Methods("PUT", "OPTIONS").Name("set-water-goal")
}

type NewEntryRequest struct {
	Date      string     `json:"date" validate:"required,date"`
	Amount    float64    `json:"amount" validate:"gt=0"`
	Unit      string     `json:"unit" validate:"required,oneof=ml oz cups"`
	Timestamp *time.Time `json:"timestamp"`
}

type GoalRequest struct {
	DailyGoal float64 `json:"dailyGoal" validate:"gt=0"`
	Unit      string  `json:"unit" validate:"required,oneof=ml oz cups"`
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = pkg.DayOf(handler.now()).Format(pkg.DateLayout)
	} else if _, err := pkg.ParseDate(date); err != nil {
		apierr.Write(w, apierr.Validation("date must be in YYYY-MM-DD format"))
		return
	}

	summary, err := handler.repo.DaySummary(ctx, userID, date)
	if err != nil {
		log.Errorf("water summary for %s: %s", date, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	var req NewEntryRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("new water entry, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	timestamp := handler.now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	added, err := handler.repo.Add(ctx, Entry{
		UserID:    userID,
		Date:      req.Date,
		Amount:    req.Amount,
		Unit:      req.Unit,
		Timestamp: timestamp,
	})
	if err != nil {
		log.Errorf("add water entry: %s", err)
		apierr.Write(w, err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterWaterEntries.Inc()
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, water entry id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		apierr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleGetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.get_goal")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	goal, err := handler.repo.GetGoal(ctx, userID)
	if err != nil {
		log.Errorf("get water goal: %s", err)
		apierr.Write(w, err)
		return
	}
	if goal == nil {
		defaultGoal := DefaultGoal
		goal = &defaultGoal
	}

	pkg.WriteJSON(w, goal, http.StatusOK)
}

func (handler *Handler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.set_goal")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	var req GoalRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("set water goal, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	goal, err := handler.repo.SetGoal(ctx, userID, Goal{DailyGoal: req.DailyGoal, Unit: req.Unit})
	if err != nil {
		log.Errorf("set water goal: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, goal, http.StatusOK)
}
