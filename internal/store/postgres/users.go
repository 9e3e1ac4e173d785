package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"TennisLeaguewebserver/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UsersStore struct {
	pool *pgxpool.Pool
}

func NewUsersStore(pool *pgxpool.Pool) *UsersStore {
	return &UsersStore{pool: pool}
}

// CreateUserWithPlayer inserts the account and its player record in one
// transaction. A player never exists without its backing account.
func (s *UsersStore) CreateUserWithPlayer(ctx context.Context, username, email, passwordHash string) (domain.User, domain.Player, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.User{}, domain.Player{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const insertUser = `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, username, status, created_at, updated_at, last_login_at
	`

	var (
		u           domain.User
		idUUID      pgtype.UUID
		emailText   pgtype.Text
		lastLoginTS pgtype.Timestamptz
	)
	err = tx.QueryRow(ctx, insertUser, username, nullIfEmpty(email), passwordHash).Scan(
		&idUUID,
		&emailText,
		&u.Username,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
		&lastLoginTS,
	)
	if err != nil {
		return domain.User{}, domain.Player{}, mapUserWriteError(err)
	}
	u.ID = uuidOrEmpty(idUUID)
	u.Email = textOrEmpty(emailText)
	u.LastLoginAt = timestamptzPtr(lastLoginTS)

	const insertPlayer = `
		INSERT INTO players (user_id)
		VALUES ($1)
		RETURNING id
	`

	var playerUUID pgtype.UUID
	if err := tx.QueryRow(ctx, insertPlayer, u.ID).Scan(&playerUUID); err != nil {
		return domain.User{}, domain.Player{}, fmt.Errorf("insert player: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.User{}, domain.Player{}, fmt.Errorf("commit tx: %w", err)
	}

	p := domain.Player{
		ID:       uuidOrEmpty(playerUUID),
		UserID:   u.ID,
		Username: u.Username,
	}
	return u, p, nil
}

func (s *UsersStore) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	const q = `
		SELECT id, email, username, status, created_at, updated_at, last_login_at
		FROM users
		WHERE id = $1
	`

	var (
		u           domain.User
		idUUID      pgtype.UUID
		emailText   pgtype.Text
		lastLoginTS pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, q, id).Scan(
		&idUUID,
		&emailText,
		&u.Username,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
		&lastLoginTS,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("get user by id: %w", err)
	}

	u.ID = uuidOrEmpty(idUUID)
	u.Email = textOrEmpty(emailText)
	u.LastLoginAt = timestamptzPtr(lastLoginTS)
	return u, nil
}

// GetUserByUsername looks up the username namespace. Registration checks both
// the requested username and the requested email against it.
func (s *UsersStore) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	const q = `
		SELECT id, email, username, status, created_at, updated_at, last_login_at
		FROM users
		WHERE username = $1
	`

	var (
		u           domain.User
		idUUID      pgtype.UUID
		emailText   pgtype.Text
		lastLoginTS pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, q, username).Scan(
		&idUUID,
		&emailText,
		&u.Username,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
		&lastLoginTS,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("get user by username: %w", err)
	}

	u.ID = uuidOrEmpty(idUUID)
	u.Email = textOrEmpty(emailText)
	u.LastLoginAt = timestamptzPtr(lastLoginTS)
	return u, nil
}

func (s *UsersStore) GetUserByLogin(ctx context.Context, login string) (domain.UserWithPassword, error) {
	const q = `
		SELECT id, email, username, password_hash, status, created_at, updated_at, last_login_at
		FROM users
		WHERE username = $1
		LIMIT 1
	`

	var (
		u           domain.UserWithPassword
		idUUID      pgtype.UUID
		emailText   pgtype.Text
		lastLoginTS pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, q, login).Scan(
		&idUUID,
		&emailText,
		&u.Username,
		&u.PasswordHash,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
		&lastLoginTS,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserWithPassword{}, domain.ErrNotFound
		}
		return domain.UserWithPassword{}, fmt.Errorf("get user by login: %w", err)
	}

	u.ID = uuidOrEmpty(idUUID)
	u.Email = textOrEmpty(emailText)
	u.LastLoginAt = timestamptzPtr(lastLoginTS)
	return u, nil
}

func (s *UsersStore) SetLastLogin(ctx context.Context, userID string, when time.Time) error {
	const q = `
		UPDATE users
		SET last_login_at = $2, updated_at = now()
		WHERE id = $1
	`
	_, err := s.pool.Exec(ctx, q, userID, when)
	if err != nil {
		return fmt.Errorf("set last login: %w", err)
	}
	return nil
}

func mapUserWriteError(err error) error {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == "23505" {
		if pgerr.ConstraintName == "users_username_uq" {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("unique violation (%s): %w", pgerr.ConstraintName, err)
	}
	return fmt.Errorf("create user: %w", err)
}
