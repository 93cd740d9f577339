package repository

import (
	"context"
	"errors"
	"time"

	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ReturnRepository struct {
	DB *db.Postgres
}

func (r ReturnRepository) List(ctx context.Context, shopID *int64, from, to *time.Time) ([]domain.Return, error) {
	query := `
		SELECT id, shop_id, entry_date, item_name, employee_id, amount, notes
		FROM returns`
	where, args := dateScopeClause(shopID, from, to)
	query += where + ` ORDER BY entry_date ASC, id ASC`

	rows, err := r.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Return
	for rows.Next() {
		var ret domain.Return
		if err := rows.Scan(&ret.ID, &ret.ShopID, &ret.Date, &ret.ItemName, &ret.EmployeeID, &ret.Amount, &ret.Notes); err != nil {
			return nil, err
		}
		items = append(items, ret)
	}
	return items, rows.Err()
}

func (r ReturnRepository) Create(ctx context.Context, ret domain.Return) (*domain.Return, error) {
	err := r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO returns (shop_id, entry_date, item_name, employee_id, amount, notes)
			VALUES ($1,$2,$3,$4,$5,$6)
			RETURNING id
		`, ret.ShopID, ret.Date, ret.ItemName, ret.EmployeeID, ret.Amount, ret.Notes).Scan(&ret.ID)
	})
	if err != nil {
		if IsMissingReference(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ret, nil
}

func (r ReturnRepository) DeleteOwned(ctx context.Context, shopID, id int64) error {
	return r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		var owner int64
		if err := tx.QueryRow(ctx, `SELECT shop_id FROM returns WHERE id=$1`, id).Scan(&owner); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if owner != shopID {
			return ErrForbidden
		}
		_, err := tx.Exec(ctx, `DELETE FROM returns WHERE id=$1`, id)
		return err
	})
}
