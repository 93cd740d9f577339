package repository

import (
	"context"
	"time"

	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/jackc/pgx/v5"
)

type WorkdayRepository struct {
	DB *db.Postgres
}

// MonthFlags returns the stored worked flags for one employee's month,
// keyed by YYYY-MM-DD. Days without a row are absent.
func (r WorkdayRepository) MonthFlags(ctx context.Context, employeeID int64, year int, month time.Month) (map[string]bool, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT work_date, worked
		FROM workdays
		WHERE employee_id=$1
		  AND work_date >= $2
		  AND work_date < $2 + interval '1 month'
		ORDER BY work_date ASC
	`, employeeID, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flags := make(map[string]bool)
	for rows.Next() {
		var (
			day    time.Time
			worked bool
		)
		if err := rows.Scan(&day, &worked); err != nil {
			return nil, err
		}
		flags[day.Format("2006-01-02")] = worked
	}
	return flags, rows.Err()
}

// Reconcile writes the full flag set for a month in one transaction.
// Re-submitting the same set produces the same stored rows.
func (r WorkdayRepository) Reconcile(ctx context.Context, employeeID int64, flags map[string]bool) error {
	return r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		for day, worked := range flags {
			date, err := time.Parse("2006-01-02", day)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx, `
				INSERT INTO workdays (employee_id, work_date, worked)
				VALUES ($1, $2, $3)
				ON CONFLICT (employee_id, work_date)
				DO UPDATE SET worked = EXCLUDED.worked
			`, employeeID, date, worked)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
