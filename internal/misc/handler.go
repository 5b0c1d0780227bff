package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=misc_test

// Pinger is a dependency the service cannot work without, e.g. postgres.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain func to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Handler struct {
	versionInfo string
	deps        map[string]Pinger
}

func NewHandler(versionInfo string, deps map[string]Pinger) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		deps:        deps,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
	mainRouter.HandleFunc("/myip", handler.handleGetMyIp).Methods("GET").Name("myip")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "fittrack is up")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var err error
	status := map[string]string{}
	for name, dep := range handler.deps {
		if pingErr := dep.Ping(ctx); pingErr != nil {
			log.Warnf("health check, %s: %s", name, pingErr)
			status[name] = "down"
			err = multierr.Append(err, pingErr)
			continue
		}
		status[name] = "ok"
	}

	if err != nil {
		span.SetAttributes(attribute.Int("deps.down", len(multierr.Errors(err))))
		pkg.WriteJSON(w, status, http.StatusServiceUnavailable)
		return
	}
	pkg.WriteJSON(w, status, http.StatusOK)
}

func (handler *Handler) handleGetMyIp(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.myip")
	defer span.End()

	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Errorf("failed to get user IP address: %s", err)
		http.Error(w, "failed to get IP", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("user.ip", ip))
	pkg.WriteTextResponseOK(w, ip)
}
