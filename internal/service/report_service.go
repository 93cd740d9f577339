package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godofwar007/Store-income-control/internal/ports"
	"github.com/godofwar007/Store-income-control/internal/repository"
)

// ErrValidation marks caller input errors; handlers translate it to a 400.
var ErrValidation = errors.New("validation failed")

const dateLayout = "2006-01-02"

// ReportService is the aggregation engine: it reduces daily sales and
// expense buckets over a date range into per-day and grand totals.
type ReportService struct {
	Store ports.ReportStore
	Shops *ShopDirectory
}

type ReportParams struct {
	Start  time.Time
	End    time.Time
	ShopID *int64
}

type SalesTotals struct {
	Retail    float64
	Wholesale float64
	Return    float64
	NetSales  float64
	Margin    float64
}

type ExpenseTotals struct {
	Purchase   float64
	StoreNeeds float64
	Salary     float64
	Rent       float64
	Repair     float64
	Marketing  float64
	Total      float64
}

type DayTotals struct {
	Date     string
	Sales    SalesTotals
	Expenses ExpenseTotals
}

type Report struct {
	StartDate           string
	EndDate             string
	Days                []DayTotals
	Sales               SalesTotals
	Expenses            ExpenseTotals
	EmployeeSalaryTotal float64
	NetProfit           float64
}

// Build produces the report for [start, end] inclusive. Every calendar day
// in range appears on the day axis; days without stored rows count as zero,
// so the grand totals below are sums over the axis, not over raw rows.
func (s ReportService) Build(ctx context.Context, p ReportParams) (*Report, error) {
	start := midnight(p.Start)
	end := midnight(p.End)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date is before start_date", ErrValidation)
	}
	if p.ShopID != nil {
		if _, ok := s.Shops.Get(*p.ShopID); !ok {
			return nil, repository.ErrNotFound
		}
	}

	sales, err := s.Store.SalesSumsByDay(ctx, start, end, p.ShopID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.Store.ExpenseSumsByDay(ctx, start, end, p.ShopID)
	if err != nil {
		return nil, err
	}
	salaryTotal, err := s.Store.EmployeeSalaryTotal(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		StartDate:           start.Format(dateLayout),
		EndDate:             end.Format(dateLayout),
		EmployeeSalaryTotal: salaryTotal,
	}

	for _, day := range dayAxis(start, end) {
		key := day.Format(dateLayout)

		st := SalesTotals{}
		if sums, ok := sales[key]; ok {
			st.Retail = sums.Retail
			st.Wholesale = sums.Wholesale
			st.Return = sums.Return
		}
		st.NetSales = st.Retail - st.Return
		st.Margin = st.Retail - st.Wholesale

		et := ExpenseTotals{}
		if sums, ok := expenses[key]; ok {
			et.Purchase = sums.Purchase
			et.StoreNeeds = sums.StoreNeeds
			et.Salary = sums.Salary
			et.Rent = sums.Rent
			et.Repair = sums.Repair
			et.Marketing = sums.Marketing
		}
		et.Total = et.Purchase + et.StoreNeeds + et.Salary + et.Rent + et.Repair + et.Marketing

		report.Days = append(report.Days, DayTotals{Date: key, Sales: st, Expenses: et})

		report.Sales.Retail += st.Retail
		report.Sales.Wholesale += st.Wholesale
		report.Sales.Return += st.Return
		report.Sales.NetSales += st.NetSales
		report.Sales.Margin += st.Margin
		report.Expenses.Purchase += et.Purchase
		report.Expenses.StoreNeeds += et.StoreNeeds
		report.Expenses.Salary += et.Salary
		report.Expenses.Rent += et.Rent
		report.Expenses.Repair += et.Repair
		report.Expenses.Marketing += et.Marketing
		report.Expenses.Total += et.Total
	}

	report.NetProfit = report.Sales.NetSales - report.Expenses.Total
	return report, nil
}

// dayAxis enumerates every calendar day in [start, end] inclusive, ascending.
func dayAxis(start, end time.Time) []time.Time {
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
