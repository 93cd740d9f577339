package repository

import (
	"context"
	"errors"
	"time"

	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ExpenseRepository struct {
	DB *db.Postgres
}

func (r ExpenseRepository) List(ctx context.Context, shopID *int64, from, to *time.Time) ([]domain.Expense, error) {
	query := `
		SELECT id, shop_id, entry_date, category, amount, notes
		FROM expenses`
	where, args := dateScopeClause(shopID, from, to)
	query += where + ` ORDER BY entry_date ASC, id ASC`

	rows, err := r.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Expense
	for rows.Next() {
		var ex domain.Expense
		if err := rows.Scan(&ex.ID, &ex.ShopID, &ex.Date, &ex.Category, &ex.Amount, &ex.Notes); err != nil {
			return nil, err
		}
		items = append(items, ex)
	}
	return items, rows.Err()
}

func (r ExpenseRepository) Create(ctx context.Context, ex domain.Expense) (*domain.Expense, error) {
	err := r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO expenses (shop_id, entry_date, category, amount, notes)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING id
		`, ex.ShopID, ex.Date, ex.Category, ex.Amount, ex.Notes).Scan(&ex.ID)
	})
	if err != nil {
		if IsMissingReference(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ex, nil
}

func (r ExpenseRepository) DeleteOwned(ctx context.Context, shopID, id int64) error {
	return r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		var owner int64
		if err := tx.QueryRow(ctx, `SELECT shop_id FROM expenses WHERE id=$1`, id).Scan(&owner); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if owner != shopID {
			return ErrForbidden
		}
		_, err := tx.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
		return err
	})
}
