package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

var ErrWrongCredentials = errors.New("wrong credentials")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth

type accountsRepo interface {
	Create(ctx context.Context, account Account) (_ *Account, err error)
	GetByUsername(ctx context.Context, username string) (_ *Account, err error)
}

type Service struct {
	accounts    accountsRepo
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	// swapped in tests, bcrypt is slow on purpose
	HashPasswordFunc func(password string) (string, error)
}

func NewAuthService(
	accounts accountsRepo,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		accounts:         accounts,
		ttl:              ttl,
		redisClient:      redisClient,
		RandStringFunc:   pkg.GenerateRandomString,
		HashPasswordFunc: pkg.HashPassword,
	}
}

func (as *Service) TTL() time.Duration {
	return as.ttl
}

func (as *Service) Register(ctx context.Context, username, password, displayName string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	passwordHash, err := as.HashPasswordFunc(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if strings.TrimSpace(displayName) == "" {
		displayName = username
	}

	return as.accounts.Create(ctx, Account{
		Username:     username,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
	})
}

func (as *Service) Login(ctx context.Context, username, password string, createdAt time.Time) (_ *LoginSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	account, err := as.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			log.Tracef("[username] failed login attempt for user: %s", username)
			return nil, ErrWrongCredentials
		}
		return nil, err
	}

	if !pkg.CheckPasswordHash(password, account.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %s", username)
		return nil, ErrWrongCredentials
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return nil, err
	}

	cmdSet := as.redisClient.Set(ctx, sessionKey(token), encodeSession(account.ID, createdAt), as.ttl)
	if err := cmdSet.Err(); err != nil {
		return nil, err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return nil, err
	}

	return &LoginSession{
		Token:     token,
		UserID:    account.ID,
		CreatedAt: createdAt,
	}, nil
}

// Logout removes the session; false when there was no such session.
func (as *Service) Logout(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmdDel := as.redisClient.Del(ctx, sessionKey(token))
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return cmdDel.Val() > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		cmd := as.redisClient.Get(ctx, sessionKey(token))
		if err := cmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				// expired by redis already, only the set entry is left
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		_, createdAt, err := decodeSession(cmd.Val())
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			toRemove = append(toRemove, token)
			continue
		}

		if time.Since(createdAt) > as.ttl {
			log.Debugf("=>\twill clean the session with token: %s", token)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
}
