package compoundfoods

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=compoundfoods_test

type compoundFoodsRepo interface {
	List(ctx context.Context, userID int) (_ []CompoundFood, err error)
	Get(ctx context.Context, userID, id int) (_ *CompoundFood, err error)
	Create(ctx context.Context, userID int, input Input) (_ *CompoundFood, err error)
	Update(ctx context.Context, userID, id int, input Input) (_ *CompoundFood, err error)
	Delete(ctx context.Context, userID, id int) (err error)
}

type Handler struct {
	repo compoundFoodsRepo
}

func NewHandler(repo compoundFoodsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/compound-foods", handler.HandleList).Methods("GET", "OPTIONS").Name("list-compound-foods")
	r.HandleFunc("/compound-foods", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-compound-food")
	r.HandleFunc("/compound-foods/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-compound-food")
	r.HandleFunc("/compound-foods/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-compound-food")
	r.HandleFunc("/compound-foods/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-compound-food")
}

type IngredientRequest struct {
	FoodID   int     `json:"foodId" validate:"gt=0"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
}

type CompoundFoodRequest struct {
	Name        string              `json:"name" validate:"required,max=200"`
	Description string              `json:"description" validate:"max=2000"`
	Servings    float64             `json:"servings" validate:"gte=0.1"`
	Ingredients []IngredientRequest `json:"ingredients" validate:"dive"`
}

func (req CompoundFoodRequest) toInput() Input {
	input := Input{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Servings:    req.Servings,
		Ingredients: make([]IngredientInput, 0, len(req.Ingredients)),
	}
	for _, ing := range req.Ingredients {
		input.Ingredients = append(input.Ingredients, IngredientInput{
			FoodID:   ing.FoodID,
			Quantity: ing.Quantity,
		})
	}
	return input
}

// readRequest decodes and validates the body, writing the error response on failure.
func readRequest(w http.ResponseWriter, r *http.Request) (CompoundFoodRequest, bool) {
	var req CompoundFoodRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("compound food, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	if len(req.Ingredients) == 0 {
		apierr.Write(w, ErrNoIngredients)
		return req, false
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return req, false
	}
	return req, true
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.compound_foods.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	compoundFoods, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list compound foods: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, compoundFoods, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.compound_foods.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, compound food id invalid", http.StatusBadRequest)
		return
	}

	cf, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, cf, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.compound_foods.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	req, ok := readRequest(w, r)
	if !ok {
		return
	}

	created, err := handler.repo.Create(ctx, userID, req.toInput())
	if err != nil {
		if !errors.Is(err, apierr.ErrNotFound) && !errors.Is(err, apierr.ErrValidation) {
			log.Errorf("create compound food: %s", err)
		}
		apierr.Write(w, err)
		return
	}

	log.Debugf("new compound food added: %d", created.ID)
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.compound_foods.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, compound food id invalid", http.StatusBadRequest)
		return
	}

	req, ok := readRequest(w, r)
	if !ok {
		return
	}

	updated, err := handler.repo.Update(ctx, userID, id, req.toInput())
	if err != nil {
		if !errors.Is(err, apierr.ErrNotFound) && !errors.Is(err, apierr.ErrValidation) {
			log.Errorf("update compound food %d: %s", id, err)
		}
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.compound_foods.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, compound food id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		apierr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
