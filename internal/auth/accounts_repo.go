package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrUsernameTaken   = errors.New("username taken")
)

type Account struct {
	ID           int
	Username     string
	PasswordHash string
	DisplayName  string
}

type AccountsRepo struct {
	db *pgxpool.Pool
}

func NewAccountsRepo(db *pgxpool.Pool) *AccountsRepo {
	return &AccountsRepo{
		db: db,
	}
}

func (r *AccountsRepo) Create(ctx context.Context, account Account) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.accounts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO app_user (username, password_hash, display_name)
			VALUES ($1, $2, $3)
			RETURNING id
		`,
		account.Username, account.PasswordHash, account.DisplayName,
	).Scan(&account.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return &account, nil
}

func (r *AccountsRepo) GetByUsername(ctx context.Context, username string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.accounts.get_by_username")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var account Account
	err = r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, display_name FROM app_user WHERE username = $1`,
		username,
	).Scan(&account.ID, &account.Username, &account.PasswordHash, &account.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	return &account, nil
}
