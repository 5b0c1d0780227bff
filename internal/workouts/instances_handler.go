package workouts

import (
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/apierr"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/validation"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

type NewInstanceRequest struct {
	TemplateID    int    `json:"templateId" validate:"gt=0"`
	ScheduledDate string `json:"scheduledDate" validate:"required,date"`
}

type UpdateInstanceRequest struct {
	Status        *string    `json:"status" validate:"omitempty,oneof=scheduled in-progress completed"`
	Notes         *string    `json:"notes" validate:"omitempty,max=5000"`
	CompletedDate *time.Time `json:"completedDate"`
}

type UpdateSetRequest struct {
	ActualReps *int     `json:"actualReps" validate:"omitempty,gte=0,lte=10000"`
	Weight     *float64 `json:"weight" validate:"omitempty,gte=0,lt=10000"`
	Unit       *string  `json:"unit" validate:"omitempty,oneof=kg lb"`
	Completed  *bool    `json:"completed"`
}

func (handler *Handler) HandleListInstances(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.instances.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	query := r.URL.Query()
	from, err := optionalDate(query.Get("from"), "from")
	if err != nil {
		apierr.Write(w, err)
		return
	}
	to, err := optionalDate(query.Get("to"), "to")
	if err != nil {
		apierr.Write(w, err)
		return
	}
	status := strings.TrimSpace(query.Get("status"))
	if _, known := statusRank[status]; status != "" && !known {
		apierr.Write(w, apierr.Validation("status must be one of: scheduled, in-progress, completed"))
		return
	}

	instances, err := handler.repo.ListInstances(ctx, userID, ListParams{
		From:   from,
		To:     to,
		Status: status,
	})
	if err != nil {
		log.Errorf("list workout instances: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, instances, http.StatusOK)
}

func (handler *Handler) HandleGetInstance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.instances.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, instance id invalid", http.StatusBadRequest)
		return
	}

	inst, err := handler.repo.GetInstance(ctx, userID, id)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, inst, http.StatusOK)
}

func (handler *Handler) HandleCreateInstance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.instances.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	var req NewInstanceRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	created, err := handler.repo.CreateInstance(ctx, userID, req.TemplateID, req.ScheduledDate)
	if err != nil {
		log.Errorf("create workout instance: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (handler *Handler) HandleUpdateInstance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.instances.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, instance id invalid", http.StatusBadRequest)
		return
	}

	var req UpdateInstanceRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	updated, err := handler.repo.UpdateInstance(ctx, userID, id, InstanceUpdate{
		Status:        req.Status,
		Notes:         req.Notes,
		CompletedDate: req.CompletedDate,
	})
	if err != nil {
		log.Errorf("update workout instance %d: %s", id, err)
		apierr.Write(w, err)
		return
	}
	if req.Status != nil && *req.Status == Status.Completed {
		handler.countCompleted(updated)
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleCompleteInstance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.instances.complete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, instance id invalid", http.StatusBadRequest)
		return
	}

	completed := Status.Completed
	updated, err := handler.repo.UpdateInstance(ctx, userID, id, InstanceUpdate{Status: &completed})
	if err != nil {
		log.Errorf("complete workout instance %d: %s", id, err)
		apierr.Write(w, err)
		return
	}
	handler.countCompleted(updated)

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDeleteInstance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.instances.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, instance id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteInstance(ctx, userID, id); err != nil {
		apierr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}
	id, err := pkg.IntVar(r, "id")
	if err != nil {
		http.Error(w, "error, set id invalid", http.StatusBadRequest)
		return
	}

	var req UpdateSetRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	result, err := handler.repo.UpdateSet(ctx, userID, id, SetUpdate{
		ActualReps: req.ActualReps,
		Weight:     req.Weight,
		Unit:       req.Unit,
		Completed:  req.Completed,
	})
	if err != nil {
		log.Errorf("update exercise set %d: %s", id, err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}
