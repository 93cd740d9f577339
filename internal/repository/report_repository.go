package repository

import (
	"context"
	"time"

	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/godofwar007/Store-income-control/internal/ports"
)

// ReportRepository feeds the aggregation engine with per-day bucket sums.
type ReportRepository struct {
	DB *db.Postgres
}

func (r ReportRepository) SalesSumsByDay(ctx context.Context, start, end time.Time, shopID *int64) (map[string]ports.SalesSums, error) {
	query := `
		SELECT entry_date,
		       COALESCE(SUM(retail_sale_amount),0),
		       COALESCE(SUM(wholesale_sale_amount),0),
		       COALESCE(SUM(return_amount),0)
		FROM sales_returns
		WHERE entry_date BETWEEN $1 AND $2`
	args := []any{start, end}
	if shopID != nil {
		query += ` AND shop_id=$3`
		args = append(args, *shopID)
	}
	query += ` GROUP BY entry_date`

	rows, err := r.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]ports.SalesSums)
	for rows.Next() {
		var (
			day time.Time
			s   ports.SalesSums
		)
		if err := rows.Scan(&day, &s.Retail, &s.Wholesale, &s.Return); err != nil {
			return nil, err
		}
		sums[day.Format("2006-01-02")] = s
	}
	return sums, rows.Err()
}

func (r ReportRepository) ExpenseSumsByDay(ctx context.Context, start, end time.Time, shopID *int64) (map[string]ports.ExpenseSums, error) {
	query := `
		SELECT entry_date,
		       COALESCE(SUM(purchase),0),
		       COALESCE(SUM(store_needs),0),
		       COALESCE(SUM(salary),0),
		       COALESCE(SUM(rent),0),
		       COALESCE(SUM(repair),0),
		       COALESCE(SUM(marketing),0)
		FROM shop_expenses
		WHERE entry_date BETWEEN $1 AND $2`
	args := []any{start, end}
	if shopID != nil {
		query += ` AND shop_id=$3`
		args = append(args, *shopID)
	}
	query += ` GROUP BY entry_date`

	rows, err := r.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]ports.ExpenseSums)
	for rows.Next() {
		var (
			day time.Time
			e   ports.ExpenseSums
		)
		if err := rows.Scan(&day, &e.Purchase, &e.StoreNeeds, &e.Salary, &e.Rent, &e.Repair, &e.Marketing); err != nil {
			return nil, err
		}
		sums[day.Format("2006-01-02")] = e
	}
	return sums, rows.Err()
}

// EmployeeSalaryTotal sums total_salary over every employee row. No date or
// month filter applies here, unlike every other report category: the figure
// is the all-time payroll total.
func (r ReportRepository) EmployeeSalaryTotal(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_salary),0) FROM employees
	`).Scan(&total)
	return total, err
}
