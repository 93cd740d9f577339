package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/jackc/pgx/v5"
)

type EmployeeRepository struct {
	DB *db.Postgres
}

// Sortable columns for employee listings; anything else falls back to name.
var employeeSortColumns = map[string]string{
	"name":         "name",
	"shop_id":      "shop_id",
	"hours_worked": "hours_worked",
	"salary":       "salary",
	"motivation":   "motivation",
	"total_salary": "total_salary",
}

type ListEmployeesParams struct {
	ShopID *int64
	Month  string
	SortBy string
	Order  string
}

func (r EmployeeRepository) List(ctx context.Context, p ListEmployeesParams) ([]domain.Employee, error) {
	column, ok := employeeSortColumns[p.SortBy]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if p.Order == "desc" {
		direction = "DESC"
	}

	query := `
		SELECT id, name, shop_id, hours_worked, salary, motivation, total_salary, month
		FROM employees
		WHERE month=$1`
	args := []any{p.Month}
	if p.ShopID != nil {
		query += ` AND shop_id=$2`
		args = append(args, *p.ShopID)
	}
	query += fmt.Sprintf(` ORDER BY %s %s, id ASC`, column, direction)

	rows, err := r.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.ShopID, &e.HoursWorked, &e.Salary, &e.Motivation, &e.TotalSalary, &e.Month); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r EmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var e domain.Employee
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, shop_id, hours_worked, salary, motivation, total_salary, month
		FROM employees
		WHERE id=$1
	`, id).Scan(&e.ID, &e.Name, &e.ShopID, &e.HoursWorked, &e.Salary, &e.Motivation, &e.TotalSalary, &e.Month)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r EmployeeRepository) Create(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	err := r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO employees (name, shop_id, hours_worked, salary, motivation, total_salary, month)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
			RETURNING id
		`, e.Name, e.ShopID, e.HoursWorked, e.Salary, e.Motivation, e.TotalSalary, e.Month).Scan(&e.ID)
	})
	if err != nil {
		if IsMissingReference(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r EmployeeRepository) Update(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	err := r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE employees
			SET name=$1, shop_id=$2, hours_worked=$3, salary=$4, motivation=$5, total_salary=$6, month=$7
			WHERE id=$8
		`, e.Name, e.ShopID, e.HoursWorked, e.Salary, e.Motivation, e.TotalSalary, e.Month, e.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if IsMissingReference(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r EmployeeRepository) Delete(ctx context.Context, id int64) error {
	return r.DB.WithTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}
