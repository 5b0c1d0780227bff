package auth

import (
	"context"
	"sync"
)

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	// IsLogged resolves the session token to the owning user id.
	IsLogged(ctx context.Context, token string) (userID int, logged bool, err error)
}

// LoginTestChecker is an in-memory Checker for tests and local tooling.
type LoginTestChecker struct {
	mutex          sync.Mutex
	LoggedSessions map[string]int
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]int{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (int, bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	userID, ok := c.LoggedSessions[token]
	return userID, ok, nil
}
