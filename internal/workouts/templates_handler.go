package workouts

import (
	"net/http"
	"strings"

	"github.com/2beens/fittrack/internal/apierr"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/validation"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

type TemplateExerciseRequest struct {
	ExerciseID int    `json:"exerciseId" validate:"gt=0"`
	Sets       int    `json:"sets" validate:"gte=1,lte=50"`
	Reps       int    `json:"reps" validate:"gte=1,lte=1000"`
	Notes      string `json:"notes" validate:"max=1000"`
}

type TemplateRequest struct {
	Name        string                    `json:"name" validate:"required,max=200"`
	Description string                    `json:"description" validate:"max=2000"`
	Exercises   []TemplateExerciseRequest `json:"exercises" validate:"max=100,dive"`
}

func (req TemplateRequest) toInput() TemplateInput {
	input := TemplateInput{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Exercises:   make([]TemplateExerciseInput, 0, len(req.Exercises)),
	}
	for _, ex := range req.Exercises {
		input.Exercises = append(input.Exercises, TemplateExerciseInput{
			ExerciseID: ex.ExerciseID,
			Sets:       ex.Sets,
			Reps:       ex.Reps,
			Notes:      strings.TrimSpace(ex.Notes),
		})
	}
	return input
}

type InstantiateRequest struct {
	ScheduledDate string `json:"scheduledDate" validate:"required,date"`
}

func readTemplateRequest(r *http.Request) (TemplateInput, error) {
	var req TemplateRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("workout template, unmarshal json params: %s", err)
		return TemplateInput{}, apierr.Validation("invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return TemplateInput{}, err
	}
	return req.toInput(), nil
}

func (handler *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	templates, err := handler.repo.ListTemplates(ctx, userID)
	if err != nil {
		log.Errorf("list workout templates: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, templates, http.StatusOK)
}

func (handler *Handler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, template id invalid", http.StatusBadRequest)
		return
	}

	template, err := handler.repo.GetTemplate(ctx, userID, id)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, template, http.StatusOK)
}

func (handler *Handler) HandleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	input, err := readTemplateRequest(r)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	created, err := handler.repo.CreateTemplate(ctx, userID, input)
	if err != nil {
		log.Errorf("create workout template: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (handler *Handler) HandleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, template id invalid", http.StatusBadRequest)
		return
	}

	input, err := readTemplateRequest(r)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	updated, err := handler.repo.UpdateTemplate(ctx, userID, id, input)
	if err != nil {
		log.Errorf("update workout template %d: %s", id, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, template id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteTemplate(ctx, userID, id); err != nil {
		apierr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleInstantiate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.instantiate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, template id invalid", http.StatusBadRequest)
		return
	}

	var req InstantiateRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	created, err := handler.repo.CreateInstance(ctx, userID, id, req.ScheduledDate)
	if err != nil {
		log.Errorf("instantiate workout template %d: %s", id, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, created, http.StatusCreated)
}
