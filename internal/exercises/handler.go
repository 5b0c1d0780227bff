package exercises

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	List(ctx context.Context, userID int, params ListParams) (_ []Exercise, err error)
	Get(ctx context.Context, userID, id int) (_ *Exercise, err error)
	Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error)
	Update(ctx context.Context, exercise Exercise) (_ *Exercise, err error)
	Delete(ctx context.Context, userID, id int) (err error)
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

type ExerciseRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	MuscleGroups []string `json:"muscleGroups" validate:"max=20,dive,max=50"`
	Description  string   `json:"description" validate:"max=2000"`
}

func (req ExerciseRequest) toExercise(userID int) Exercise {
	return Exercise{
		UserID:       userID,
		Name:         strings.TrimSpace(req.Name),
		MuscleGroups: cleanGroups(req.MuscleGroups),
		Description:  strings.TrimSpace(req.Description),
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	exercises, err := handler.repo.List(ctx, userID, ListParams{
		MuscleGroup: strings.TrimSpace(r.URL.Query().Get("muscleGroup")),
	})
	if err != nil {
		log.Errorf("list exercises: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, exercise id invalid", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	var req ExerciseRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("new exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	added, err := handler.repo.Add(ctx, req.toExercise(userID))
	if err != nil {
		log.Errorf("add exercise: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, exercise id invalid", http.StatusBadRequest)
		return
	}

	var req ExerciseRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("update exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	exercise := req.toExercise(userID)
	exercise.ID = id
	updated, err := handler.repo.Update(ctx, exercise)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, exercise id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		apierr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
