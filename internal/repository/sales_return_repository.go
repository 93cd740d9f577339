package repository

import (
	"context"
	"time"

	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/jackc/pgx/v5"
)

type SalesReturnRepository struct {
	DB *db.Postgres
}

func (r SalesReturnRepository) ListRange(ctx context.Context, shopID int64, from, to time.Time) ([]domain.SalesReturn, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, shop_id, entry_date,
		       retail_sale_amount, retail_sale_note,
		       wholesale_sale_amount, wholesale_sale_note,
		       return_amount, return_note
		FROM sales_returns
		WHERE shop_id=$1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date ASC
	`, shopID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.SalesReturn
	for rows.Next() {
		var sr domain.SalesReturn
		if err := rows.Scan(&sr.ID, &sr.ShopID, &sr.Date,
			&sr.RetailSaleAmount, &sr.RetailSaleNote,
			&sr.WholesaleSaleAmount, &sr.WholesaleSaleNote,
			&sr.ReturnAmount, &sr.ReturnNote); err != nil {
			return nil, err
		}
		items = append(items, sr)
	}
	return items, rows.Err()
}

// UpsertDays writes a batch of daily sales buckets atomically; one row per
// (shop, date) is kept, later submissions overwrite earlier ones.
func (r SalesReturnRepository) UpsertDays(ctx context.Context, shopID int64, days []domain.SalesReturn) error {
	return r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		for _, sr := range days {
			_, err := tx.Exec(ctx, `
				INSERT INTO sales_returns (shop_id, entry_date,
					retail_sale_amount, retail_sale_note,
					wholesale_sale_amount, wholesale_sale_note,
					return_amount, return_note)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
				ON CONFLICT (shop_id, entry_date) DO UPDATE SET
					retail_sale_amount = EXCLUDED.retail_sale_amount,
					retail_sale_note = EXCLUDED.retail_sale_note,
					wholesale_sale_amount = EXCLUDED.wholesale_sale_amount,
					wholesale_sale_note = EXCLUDED.wholesale_sale_note,
					return_amount = EXCLUDED.return_amount,
					return_note = EXCLUDED.return_note
			`, shopID, sr.Date,
				sr.RetailSaleAmount, sr.RetailSaleNote,
				sr.WholesaleSaleAmount, sr.WholesaleSaleNote,
				sr.ReturnAmount, sr.ReturnNote)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
