package repository

import (
	"context"
	"errors"

	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ShopRepository struct {
	DB *db.Postgres
}

func (r ShopRepository) List(ctx context.Context) ([]domain.Shop, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, location
		FROM shops
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Shop
	for rows.Next() {
		var s domain.Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.Location); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r ShopRepository) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	var s domain.Shop
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, location
		FROM shops
		WHERE id=$1
	`, id).Scan(&s.ID, &s.Name, &s.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
