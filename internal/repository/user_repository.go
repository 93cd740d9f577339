package repository

import (
	"context"
	"errors"

	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	DB *db.Postgres
}

func (r UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, username, password_hash, access_level, shop_id, created_at
		FROM users
		WHERE username=$1
	`, username)
	return scanUser(row)
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, username, password_hash, access_level, shop_id, created_at
		FROM users
		WHERE id=$1
	`, id)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u      domain.User
		level  string
		shopID pgtype.Int8
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &level, &shopID, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.AccessLevel = domain.AccessLevel(level)
	if shopID.Valid {
		u.ShopID = &shopID.Int64
	}
	return &u, nil
}
