package workouts

import (
	"context"
	"strings"

	"github.com/2beens/fittrack/internal/apierr"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	ListTemplates(ctx context.Context, userID int) (_ []Template, err error)
	GetTemplate(ctx context.Context, userID, id int) (_ *Template, err error)
	CreateTemplate(ctx context.Context, userID int, input TemplateInput) (_ *Template, err error)
	UpdateTemplate(ctx context.Context, userID, id int, input TemplateInput) (_ *Template, err error)
	DeleteTemplate(ctx context.Context, userID, id int) (err error)

	ListInstances(ctx context.Context, userID int, params ListParams) (_ []Instance, err error)
	GetInstance(ctx context.Context, userID, id int) (_ *Instance, err error)
	CreateInstance(ctx context.Context, userID, templateID int, scheduledDate string) (_ *Instance, err error)
	UpdateInstance(ctx context.Context, userID, id int, update InstanceUpdate) (_ *Instance, err error)
	DeleteInstance(ctx context.Context, userID, id int) (err error)
	UpdateSet(ctx context.Context, userID, setID int, update SetUpdate) (_ *SetUpdateResult, err error)
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workout-templates", handler.HandleListTemplates).Methods("GET", "OPTIONS").Name("list-workout-templates")
	r.HandleFunc("/workout-templates", handler.HandleCreateTemplate).Methods("POST", "OPTIONS").Name("new-workout-template")
	r.HandleFunc("/workout-templates/{id}", handler.HandleGetTemplate).Methods("GET", "OPTIONS").Name("get-workout-template")
	r.HandleFunc("/workout-templates/{id}", handler.HandleUpdateTemplate).Methods("PUT", "OPTIONS").Name("update-workout-template")
	r.HandleFunc("/workout-templates/{id}", handler.HandleDeleteTemplate).Methods("DELETE", "OPTIONS").Name("delete-workout-template")
	r.HandleFunc("/workout-templates/{id}/instantiate", handler.HandleInstantiate).Methods("POST", "OPTIONS").Name("instantiate-workout-template")

	r.HandleFunc("/workout-instances", handler.HandleListInstances).Methods("GET", "OPTIONS").Name("list-workout-instances")
	r.HandleFunc("/workout-instances", handler.HandleCreateInstance).Methods("POST", "OPTIONS").Name("new-workout-instance")
	r.HandleFunc("/workout-instances/{id}", handler.HandleGetInstance).Methods("GET", "OPTIONS").Name("get-workout-instance")
	r.HandleFunc("/workout-instances/{id}", handler.HandleUpdateInstance).Methods("PATCH", "OPTIONS").Name("update-workout-instance")
	r.HandleFunc("/workout-instances/{id}", handler.HandleDeleteInstance).Methods("DELETE", "OPTIONS").Name("delete-workout-instance")
	r.HandleFunc("/workout-instances/{id}/complete", handler.HandleCompleteInstance).Methods("POST", "OPTIONS").Name("complete-workout-instance")

	r.HandleFunc("/exercise-sets/{id}", handler.HandleUpdateSet).Methods("PATCH", "OPTIONS").Name("update-exercise-set")
}

func (handler *Handler) countCompleted(inst *Instance) {
	if handler.metricsManager != nil && inst != nil && inst.Status == Status.Completed {
		handler.metricsManager.CounterWorkoutsCompleted.Inc()
	}
}

func optionalDate(value, name string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if _, err := pkg.ParseDate(value); err != nil {
		return "", apierr.Validation(name + " must be in YYYY-MM-DD format")
	}
	return value, nil
}
