package ports

import (
	"context"
	"time"

	"github.com/godofwar007/Store-income-control/internal/domain"
)

// HealthChecker is used to probe dependencies.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// IncomeStore persists itemized income records.
type IncomeStore interface {
	List(ctx context.Context, shopID *int64, from, to *time.Time) ([]domain.Income, error)
	Create(ctx context.Context, in domain.Income) (*domain.Income, error)
	DeleteOwned(ctx context.Context, shopID, id int64) error
}

// ReturnStore persists itemized return records.
type ReturnStore interface {
	List(ctx context.Context, shopID *int64, from, to *time.Time) ([]domain.Return, error)
	Create(ctx context.Context, in domain.Return) (*domain.Return, error)
	DeleteOwned(ctx context.Context, shopID, id int64) error
}

// ExpenseStore persists itemized expense records.
type ExpenseStore interface {
	List(ctx context.Context, shopID *int64, from, to *time.Time) ([]domain.Expense, error)
	Create(ctx context.Context, in domain.Expense) (*domain.Expense, error)
	DeleteOwned(ctx context.Context, shopID, id int64) error
}

// SalesSums holds one day's sales bucket totals.
type SalesSums struct {
	Retail    float64
	Wholesale float64
	Return    float64
}

// ExpenseSums holds one day's expense bucket totals.
type ExpenseSums struct {
	Purchase   float64
	StoreNeeds float64
	Salary     float64
	Rent       float64
	Repair     float64
	Marketing  float64
}

// ReportStore feeds the aggregation engine. Both maps are keyed by the
// YYYY-MM-DD date string; days without rows are simply absent.
type ReportStore interface {
	SalesSumsByDay(ctx context.Context, start, end time.Time, shopID *int64) (map[string]SalesSums, error)
	ExpenseSumsByDay(ctx context.Context, start, end time.Time, shopID *int64) (map[string]ExpenseSums, error)
	EmployeeSalaryTotal(ctx context.Context) (float64, error)
}

// WorkdayStore persists per-employee worked-day flags. Flag maps are keyed
// by the YYYY-MM-DD date string.
type WorkdayStore interface {
	MonthFlags(ctx context.Context, employeeID int64, year int, month time.Month) (map[string]bool, error)
	Reconcile(ctx context.Context, employeeID int64, flags map[string]bool) error
}
