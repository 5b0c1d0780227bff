package diet

import (
	"context"
	"errors"
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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=diet_test

type dietRepo interface {
	ListByDate(ctx context.Context, userID int, date string) (_ []Entry, err error)
	Add(ctx context.Context, entry Entry) (_ *Entry, err error)
	Update(ctx context.Context, userID, id int, update EntryUpdate) (_ *Entry, err error)
	Delete(ctx context.Context, userID, id int) (err error)
}

type Handler struct {
	repo           dietRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo dietRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/diet-entries", handler.HandleList).Methods("GET", "OPTIONS").Name("list-diet-entries")
	r.HandleFunc("/diet-entries", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-diet-entry")
	r.HandleFunc("/diet-entries/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-diet-entry")
	r.HandleFunc("/diet-entries/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-diet-entry")
}

type NewEntryRequest struct {
	FoodID       int      `json:"foodId" validate:"gt=0"`
	Date         string   `json:"date" validate:"required,date"`
	MealCategory string   `json:"mealCategory" validate:"required,oneof=breakfast lunch snack dinner"`
	Servings     *float64 `json:"servings" validate:"omitempty,gt=0"`
	Notes        string   `json:"notes" validate:"max=1000"`
}

type UpdateEntryRequest struct {
	MealCategory string  `json:"mealCategory" validate:"required,oneof=breakfast lunch snack dinner"`
	Servings     float64 `json:"servings" validate:"gt=0"`
	Notes        string  `json:"notes" validate:"max=1000"`
}

// dateParam reads ?date=, defaulting to today.
func dateParam(r *http.Request) (string, error) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		return pkg.DayOf(time.Now()).Format(pkg.DateLayout), nil
	}
	if _, err := pkg.ParseDate(date); err != nil {
		return "", apierr.Validation("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	date, err := dateParam(r)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	entries, err := handler.repo.ListByDate(ctx, userID, date)
	if err != nil {
		log.Errorf("list diet entries for %s: %s", date, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, Group(entries), http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	var req NewEntryRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("new diet entry, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	servings := 1.0
	if req.Servings != nil {
		servings = *req.Servings
	}

	added, err := handler.repo.Add(ctx, Entry{
		UserID:       userID,
		FoodID:       req.FoodID,
		Date:         req.Date,
		MealCategory: req.MealCategory,
		Servings:     servings,
		Notes:        strings.TrimSpace(req.Notes),
	})
	if err != nil {
		if !errors.Is(err, ErrFoodNotFound) {
			log.Errorf("add diet entry: %s", err)
		}
		apierr.Write(w, err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterDietEntries.Inc()
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, diet entry id invalid", http.StatusBadRequest)
		return
	}

	var req UpdateEntryRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("update diet entry, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	updated, err := handler.repo.Update(ctx, userID, id, EntryUpdate{
		MealCategory: req.MealCategory,
		Servings:     req.Servings,
		Notes:        strings.TrimSpace(req.Notes),
	})
	if err != nil {
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, diet entry id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		apierr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
