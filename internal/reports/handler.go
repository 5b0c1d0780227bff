package reports

import (
	"context"
	"net/http"
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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=reports_test

type dataCollector interface {
	Collect(ctx context.Context, userID int, date string, opts Options) (_ Data, err error)
}

type Handler struct {
	collector      dataCollector
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(collector dataCollector, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		collector:      collector,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/reports/generate", handler.HandleGenerate).Methods("POST", "OPTIONS").Name("generate-report")
}

type GenerateRequest struct {
	Date string `json:"date" validate:"required,date"`
	// all sections when omitted
	Options *Options `json:"options"`
}

type GenerateResponse struct {
	Markdown string `json:"markdown"`
	Filename string `json:"filename"`
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.generate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	var req GenerateRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("generate report, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}
	day, err := pkg.ParseDate(req.Date)
	if err != nil {
		apierr.Write(w, apierr.Validation("date must be in YYYY-MM-DD format"))
		return
	}

	opts := AllSections()
	if req.Options != nil {
		opts = *req.Options
	}

	data, err := handler.collector.Collect(ctx, userID, req.Date, opts)
	if err != nil {
		log.Errorf("collect report data for %s: %s", req.Date, err)
		apierr.Write(w, err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterReportsGenerated.Inc()
	}

	pkg.WriteJSON(w, GenerateResponse{
		Markdown: Generate(day, opts, data, handler.now()),
		Filename: Filename(day),
	}, http.StatusOK)
}
