package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fittrack-session||"
	tokensSetKey     = "fittrack-sessions"
	tokenLength      = 35
)

var ErrInvalidSession = errors.New("invalid session value")

type LoginSession struct {
	Token     string
	UserID    int
	CreatedAt time.Time
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// sessions are stored as "<userID>|<created unix>"
func encodeSession(userID int, createdAt time.Time) string {
	return fmt.Sprintf("%d|%d", userID, createdAt.Unix())
}

func decodeSession(val string) (int, time.Time, error) {
	userIDStr, createdAtStr, found := strings.Cut(val, "|")
	if !found {
		return 0, time.Time{}, ErrInvalidSession
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil || userID <= 0 {
		return 0, time.Time{}, ErrInvalidSession
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return 0, time.Time{}, ErrInvalidSession
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}

const (
	TokenHeader   = "X-FIT-TOKEN"
	SessionCookie = "fittrack_session"
)

// TokenFromRequest reads the session token from the X-FIT-TOKEN header,
// falling back to the session cookie set on login.
func TokenFromRequest(r *http.Request) string {
	if token := r.Header.Get(TokenHeader); token != "" {
		return token
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
