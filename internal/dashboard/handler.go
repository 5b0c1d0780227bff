package dashboard

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/apierr"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type builder interface {
	Build(ctx context.Context, userID int, day time.Time) (_ *Dashboard, err error)
}

type Handler struct {
	builder builder
	now     func() time.Time
}

func NewHandler(builder builder) *Handler {
	return &Handler{
		builder: builder,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/dashboard", handler.HandleGet).Methods("GET", "OPTIONS").Name("dashboard")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	day := pkg.DayOf(handler.now())
	if date := strings.TrimSpace(r.URL.Query().Get("date")); date != "" {
		parsed, err := pkg.ParseDate(date)
		if err != nil {
			apierr.Write(w, apierr.Validation("date must be in YYYY-MM-DD format"))
			return
		}
		day = parsed
	}

	d, err := handler.builder.Build(ctx, userID, day)
	if err != nil {
		log.Errorf("build dashboard: %s", err)
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, d, http.StatusOK)
}
