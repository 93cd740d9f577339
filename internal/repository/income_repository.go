package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/jackc/pgx/v5"
)

type IncomeRepository struct {
	DB *db.Postgres
}

func (r IncomeRepository) List(ctx context.Context, shopID *int64, from, to *time.Time) ([]domain.Income, error) {
	query := `
		SELECT id, shop_id, entry_date, operation_type, item_name, employee_id, amount, notes
		FROM incomes`
	where, args := dateScopeClause(shopID, from, to)
	query += where + ` ORDER BY entry_date ASC, id ASC`

	rows, err := r.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Income
	for rows.Next() {
		var in domain.Income
		if err := rows.Scan(&in.ID, &in.ShopID, &in.Date, &in.OperationType, &in.ItemName, &in.EmployeeID, &in.Amount, &in.Notes); err != nil {
			return nil, err
		}
		items = append(items, in)
	}
	return items, rows.Err()
}

func (r IncomeRepository) Create(ctx context.Context, in domain.Income) (*domain.Income, error) {
	err := r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO incomes (shop_id, entry_date, operation_type, item_name, employee_id, amount, notes)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
			RETURNING id
		`, in.ShopID, in.Date, in.OperationType, in.ItemName, in.EmployeeID, in.Amount, in.Notes).Scan(&in.ID)
	})
	if err != nil {
		if IsMissingReference(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &in, nil
}

// DeleteOwned removes an income record only when it belongs to the given
// shop; a record owned by another shop is reported as forbidden, not as
// missing.
func (r IncomeRepository) DeleteOwned(ctx context.Context, shopID, id int64) error {
	return r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		var owner int64
		if err := tx.QueryRow(ctx, `SELECT shop_id FROM incomes WHERE id=$1`, id).Scan(&owner); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if owner != shopID {
			return ErrForbidden
		}
		_, err := tx.Exec(ctx, `DELETE FROM incomes WHERE id=$1`, id)
		return err
	})
}

// dateScopeClause builds the shared WHERE clause for itemized ledger
// listings: optional shop scope plus independently optional date bounds.
func dateScopeClause(shopID *int64, from, to *time.Time) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if shopID != nil {
		args = append(args, *shopID)
		conds = append(conds, fmt.Sprintf("shop_id=$%d", len(args)))
	}
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("entry_date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("entry_date <= $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}
