package repository

import (
	"context"
	"errors"
	"time"

	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/jackc/pgx/v5"
)

type SessionRepository struct {
	DB *db.Postgres
}

func (r SessionRepository) Create(ctx context.Context, userID int64, refreshToken string, expiresAt time.Time) (*domain.Session, error) {
	var s domain.Session
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO sessions (user_id, refresh_token, expires_at, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, user_id, refresh_token, expires_at, created_at
	`, userID, refreshToken, expiresAt).Scan(&s.ID, &s.UserID, &s.RefreshToken, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r SessionRepository) GetByToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	var s domain.Session
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT id, user_id, refresh_token, expires_at, created_at
		FROM sessions
		WHERE refresh_token=$1
	`, refreshToken).Scan(&s.ID, &s.UserID, &s.RefreshToken, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// DeleteByToken invalidates one session; logout relies on this taking
// effect immediately.
func (r SessionRepository) DeleteByToken(ctx context.Context, refreshToken string) error {
	tag, err := r.DB.Pool.Exec(ctx, `
		DELETE FROM sessions WHERE refresh_token=$1
	`, refreshToken)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r SessionRepository) DeleteExpired(ctx context.Context) error {
	_, err := r.DB.Pool.Exec(ctx, `
		DELETE FROM sessions WHERE expires_at < now()
	`)
	return err
}
