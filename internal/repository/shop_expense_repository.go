package repository

import (
	"context"
	"time"

	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ShopExpenseRepository struct {
	DB *db.Postgres
}

func (r ShopExpenseRepository) ListRange(ctx context.Context, shopID int64, from, to time.Time) ([]domain.ShopExpense, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, shop_id, entry_date,
		       purchase, purchase_note,
		       store_needs, store_needs_note,
		       salary, salary_note,
		       rent, rent_note,
		       repair, repair_note,
		       marketing, marketing_note
		FROM shop_expenses
		WHERE shop_id=$1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date ASC
	`, shopID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ShopExpense
	for rows.Next() {
		var se domain.ShopExpense
		if err := rows.Scan(&se.ID, &se.ShopID, &se.Date,
			&se.Purchase, &se.PurchaseNote,
			&se.StoreNeeds, &se.StoreNeedsNote,
			&se.Salary, &se.SalaryNote,
			&se.Rent, &se.RentNote,
			&se.Repair, &se.RepairNote,
			&se.Marketing, &se.MarketingNote); err != nil {
			return nil, err
		}
		items = append(items, se)
	}
	return items, rows.Err()
}

func (r ShopExpenseRepository) UpsertDays(ctx context.Context, shopID int64, days []domain.ShopExpense) error {
	return r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		for _, se := range days {
			_, err := tx.Exec(ctx, `
				INSERT INTO shop_expenses (shop_id, entry_date,
					purchase, purchase_note,
					store_needs, store_needs_note,
					salary, salary_note,
					rent, rent_note,
					repair, repair_note,
					marketing, marketing_note)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
				ON CONFLICT (shop_id, entry_date) DO UPDATE SET
					purchase = EXCLUDED.purchase,
					purchase_note = EXCLUDED.purchase_note,
					store_needs = EXCLUDED.store_needs,
					store_needs_note = EXCLUDED.store_needs_note,
					salary = EXCLUDED.salary,
					salary_note = EXCLUDED.salary_note,
					rent = EXCLUDED.rent,
					rent_note = EXCLUDED.rent_note,
					repair = EXCLUDED.repair,
					repair_note = EXCLUDED.repair_note,
					marketing = EXCLUDED.marketing,
					marketing_note = EXCLUDED.marketing_note
			`, shopID, se.Date,
				se.Purchase, se.PurchaseNote,
				se.StoreNeeds, se.StoreNeedsNote,
				se.Salary, se.SalaryNote,
				se.Rent, se.RentNote,
				se.Repair, se.RepairNote,
				se.Marketing, se.MarketingNote)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
