package users

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/apierr"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/validation"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type authService interface {
	Register(ctx context.Context, username, password, displayName string) (_ *auth.Account, err error)
	Login(ctx context.Context, username, password string, createdAt time.Time) (_ *auth.LoginSession, err error)
	Logout(ctx context.Context, token string) (_ bool, err error)
	TTL() time.Duration
}

// sessionForgetter drops locally cached sessions on logout.
type sessionForgetter interface {
	Forget(token string)
}

type profilesRepo interface {
	Get(ctx context.Context, userID int) (_ *Profile, err error)
	Update(ctx context.Context, userID int, update ProfileUpdate) (_ *Profile, err error)
}

type Handler struct {
	authService  authService
	forgetter    sessionForgetter
	profiles     profilesRepo
	secureCookie bool
}

func NewHandler(
	authService authService,
	forgetter sessionForgetter,
	profiles profilesRepo,
	secureCookie bool,
) *Handler {
	return &Handler{
		authService:  authService,
		forgetter:    forgetter,
		profiles:     profiles,
		secureCookie: secureCookie,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/users/me", handler.HandleGetMe).Methods("GET", "OPTIONS").Name("get-me")
	mainRouter.HandleFunc("/users/me", handler.HandleUpdateMe).Methods("PATCH", "OPTIONS").Name("update-me")

	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/register", handler.HandleRegister).
		Methods("POST", "OPTIONS").Name("register")
	loginSubrouter.
		HandleFunc("/login", handler.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", handler.HandleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	if rateLimiter != nil {
		loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", allowedPerMin, metricsManager))
	}
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=64"`
	Password    string `json:"password" validate:"required,min=8,max=128"`
	DisplayName string `json:"displayName" validate:"max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	DisplayName         *string `json:"displayName" validate:"omitempty,min=1,max=100"`
	PreferredWeightUnit *string `json:"preferredWeightUnit" validate:"omitempty,oneof=kg lb"`
	PreferredWaterUnit  *string `json:"preferredWaterUnit" validate:"omitempty,oneof=ml oz cups"`
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var req RegisterRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	account, err := handler.authService.Register(ctx, req.Username, req.Password, strings.TrimSpace(req.DisplayName))
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			apierr.Write(w, apierr.Conflict("username already taken"))
			return
		}
		log.Errorf("register %s: %s", req.Username, err)
		apierr.Write(w, err)
		return
	}

	log.Debugf("new user registered: %d", account.ID)
	pkg.WriteJSON(w, map[string]any{
		"id":       account.ID,
		"username": account.Username,
	}, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var req LoginRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	session, err := handler.authService.Login(ctx, strings.TrimSpace(req.Username), req.Password, time.Now())
	if err != nil {
		if errors.Is(err, auth.ErrWrongCredentials) {
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(handler.authService.TTL().Seconds()),
		HttpOnly: true,
		Secure:   handler.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	log.Trace("new login success")
	pkg.WriteJSON(w, map[string]string{"token": session.Token}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := auth.TokenFromRequest(r)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.authService.Logout(ctx, authToken)
	if err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	handler.forgetter.Forget(authToken)

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookie,
	})

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.me")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	profile, err := handler.profiles.Get(ctx, userID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (handler *Handler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update_me")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		apierr.Write(w, apierr.ErrUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := pkg.ReadJSON(r, &req); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.DisplayName != nil {
		trimmed := strings.TrimSpace(*req.DisplayName)
		req.DisplayName = &trimmed
	}
	if err := validation.Struct(req); err != nil {
		apierr.Write(w, err)
		return
	}

	profile, err := handler.profiles.Update(ctx, userID, ProfileUpdate{
		DisplayName:         req.DisplayName,
		PreferredWeightUnit: req.PreferredWeightUnit,
		PreferredWaterUnit:  req.PreferredWaterUnit,
	})
	if err != nil {
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}
