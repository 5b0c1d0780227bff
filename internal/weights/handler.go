package weights

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/fittrack/internal/apierr"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/validation"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weights_test

type weightsRepo interface {
	List(ctx context.Context, userID int, params ListParams) (_ []Weight, err error)
	Add(ctx context.Context, weight Weight) (_ *Weight, err error)
	Update(ctx context.Context, weight Weight) (_ *Weight, err error)
	Delete(ctx context.Context, userID, id int) (err error)
}

type Handler struct {
	repo weightsRepo
}

func NewHandler(repo weightsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/weights", handler.HandleList).Methods("GET", "OPTIONS").Name("list-weights")
	r.HandleFunc("/weights", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-weight")
	r.HandleFunc("/weights/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-weight")
	r.HandleFunc("/weights/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-weight")
}

type WeightRequest struct {
	Date   string  `json:"date" validate:"required,date"`
	Weight float64 `json:"weight" validate:"gt=0,lt=1000"`
	Unit   string  `json:"unit" validate:"required,oneof=kg lb"`
	Notes  string  `json:"notes" validate:"max=1000"`
}

func (req WeightRequest) toWeight(userID int) Weight {
	return Weight{
		UserID: userID,
		Date:   req.Date,
		Weight: req.Weight,
		Unit:   req.Unit,
		Notes:  strings.TrimSpace(req.Notes),
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	params := ListParams{
		From: strings.TrimSpace(r.URL.Query().Get("from")),
		To:   strings.TrimSpace(r.URL.Query().Get("to")),
	}
	for _, d := range []string{params.From, params.To} {
		if d == "" {
			continue
		}
		if _, err := pkg.ParseDate(d); err != nil {
			apierr.Write(w, apierr.Validation("from and to must be in YYYY-MM-DD format"))
			return
		}
	}

	weights, err := handler.repo.List(ctx, userID, params)
	if err != nil {
		log.Errorf("list weights: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, weights, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	var req WeightRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("new weight, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	added, err := handler.repo.Add(ctx, req.toWeight(userID))
	if err != nil {
		log.Errorf("add weight: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, weight id invalid", http.StatusBadRequest)
		return
	}

	var req WeightRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("update weight, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	weight := req.toWeight(userID)
	weight.ID = id
	updated, err := handler.repo.Update(ctx, weight)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, weight id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		apierr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
