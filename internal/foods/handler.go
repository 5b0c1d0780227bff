package foods

import (
	"context"
	"errors"
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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=foods_test

type foodsRepo interface {
	List(ctx context.Context, userID int, params ListParams) (_ []Food, err error)
	Get(ctx context.Context, userID, id int) (_ *Food, err error)
	Add(ctx context.Context, food Food) (_ *Food, err error)
	Update(ctx context.Context, food Food) (err error)
	Delete(ctx context.Context, userID, id int) (err error)
}

type Handler struct {
	repo foodsRepo
}

func NewHandler(repo foodsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/foods", handler.HandleList).Methods("GET", "OPTIONS").Name("list-foods")
	r.HandleFunc("/foods", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-food")
	r.HandleFunc("/foods/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-food")
	r.HandleFunc("/foods/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-food")
	r.HandleFunc("/foods/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-food")
}

type FoodRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Brand       *string `json:"brand" validate:"omitempty,max=200"`
	Barcode     *string `json:"barcode" validate:"omitempty,max=64"`
	Calories    float64 `json:"calories" validate:"gte=0"`
	Protein     float64 `json:"protein" validate:"gte=0"`
	Carbs       float64 `json:"carbs" validate:"gte=0"`
	Fat         float64 `json:"fat" validate:"gte=0"`
	ServingSize string  `json:"servingSize" validate:"required"`
	ServingUnit string  `json:"servingUnit" validate:"required"`
	Source      string  `json:"source" validate:"omitempty,oneof=manual barcode"`
}

func (req FoodRequest) toFood(userID int) Food {
	source := req.Source
	if source == "" {
		source = Source.Manual
	}
	return Food{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Brand:       emptyToNil(req.Brand),
		Barcode:     emptyToNil(req.Barcode),
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		ServingSize: req.ServingSize,
		ServingUnit: req.ServingUnit,
		Source:      source,
	}
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	foods, err := handler.repo.List(ctx, userID, ListParams{
		Query:   strings.TrimSpace(r.URL.Query().Get("q")),
		Barcode: strings.TrimSpace(r.URL.Query().Get("barcode")),
	})
	if err != nil {
		log.Errorf("list foods: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, foods, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, food id invalid", http.StatusBadRequest)
		return
	}

	food, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, food, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	var req FoodRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("new food, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	added, err := handler.repo.Add(ctx, req.toFood(userID))
	if err != nil {
		if !errors.Is(err, ErrDuplicateBarcode) {
			log.Errorf("add food: %s", err)
		}
		apierr.Write(w, err)
		return
	}

	log.Debugf("new food added: %d", added.ID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, food id invalid", http.StatusBadRequest)
		return
	}

	var req FoodRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("update food, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	existing, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	if existing.IsCompound {
		apierr.Write(w, ErrCompoundFood)
		return
	}

	food := req.toFood(userID)
	food.ID = id
	if err := handler.repo.Update(ctx, food); err != nil {
		apierr.Write(w, err)
		return
	}

	food.CreatedAt = existing.CreatedAt
	pkg.WriteJSON(w, food, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, food id invalid", http.StatusBadRequest)
		return
	}

	existing, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	if existing.IsCompound {
		apierr.Write(w, ErrCompoundFood)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		apierr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
