package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/godofwar007/Store-income-control/internal/ports"
	"github.com/godofwar007/Store-income-control/internal/repository"
)

type fakeReportStore struct {
	sales       map[string]ports.SalesSums
	expenses    map[string]ports.ExpenseSums
	salaryTotal float64

	gotShopID *int64
}

func (f *fakeReportStore) SalesSumsByDay(ctx context.Context, start, end time.Time, shopID *int64) (map[string]ports.SalesSums, error) {
	f.gotShopID = shopID
	return f.sales, nil
}

func (f *fakeReportStore) ExpenseSumsByDay(ctx context.Context, start, end time.Time, shopID *int64) (map[string]ports.ExpenseSums, error) {
	return f.expenses, nil
}

func (f *fakeReportStore) EmployeeSalaryTotal(ctx context.Context) (float64, error) {
	return f.salaryTotal, nil
}

func testShops() *ShopDirectory {
	return NewShopDirectory([]domain.Shop{
		{ID: 1, Name: "Shop 1"},
		{ID: 2, Name: "Shop 2"},
	})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReportService_Build_Totals(t *testing.T) {
	store := &fakeReportStore{
		sales: map[string]ports.SalesSums{
			"2025-03-01": {Retail: 200, Wholesale: 120, Return: 20},
		},
		expenses: map[string]ports.ExpenseSums{
			"2025-03-01": {Purchase: 100, StoreNeeds: 0, Salary: 50},
		},
		salaryTotal: 2500,
	}
	svc := ReportService{Store: store, Shops: testShops()}

	report, err := svc.Build(context.Background(), ReportParams{
		Start: day(2025, time.March, 1),
		End:   day(2025, time.March, 1),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if report.Sales.NetSales != 180 {
		t.Errorf("NetSales = %v, want 180", report.Sales.NetSales)
	}
	if report.Sales.Margin != 80 {
		t.Errorf("Margin = %v, want 80", report.Sales.Margin)
	}
	if report.Expenses.Total != 150 {
		t.Errorf("expense Total = %v, want 150", report.Expenses.Total)
	}
	if report.EmployeeSalaryTotal != 2500 {
		t.Errorf("EmployeeSalaryTotal = %v, want 2500", report.EmployeeSalaryTotal)
	}
	if report.NetProfit != 30 {
		t.Errorf("NetProfit = %v, want 30", report.NetProfit)
	}
}

func TestReportService_Build_GapFill(t *testing.T) {
	store := &fakeReportStore{
		sales: map[string]ports.SalesSums{
			"2025-03-02": {Retail: 100, Wholesale: 60},
		},
		expenses: map[string]ports.ExpenseSums{},
	}
	svc := ReportService{Store: store, Shops: testShops()}

	report, err := svc.Build(context.Background(), ReportParams{
		Start: day(2025, time.March, 1),
		End:   day(2025, time.March, 3),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(report.Days) != 3 {
		t.Fatalf("len(Days) = %d, want 3", len(report.Days))
	}
	wantDates := []string{"2025-03-01", "2025-03-02", "2025-03-03"}
	for i, want := range wantDates {
		if report.Days[i].Date != want {
			t.Errorf("Days[%d].Date = %s, want %s", i, report.Days[i].Date, want)
		}
	}
	if report.Days[0].Sales.Retail != 0 || report.Days[2].Sales.Retail != 0 {
		t.Error("days without rows should be zero-filled")
	}
	if report.Days[1].Sales.Margin != 40 {
		t.Errorf("Days[1].Sales.Margin = %v, want 40", report.Days[1].Sales.Margin)
	}
	if report.Sales.Retail != 100 {
		t.Errorf("grand Retail = %v, want 100", report.Sales.Retail)
	}
}

func TestReportService_Build_RangeValidation(t *testing.T) {
	svc := ReportService{Store: &fakeReportStore{}, Shops: testShops()}

	_, err := svc.Build(context.Background(), ReportParams{
		Start: day(2025, time.March, 5),
		End:   day(2025, time.March, 1),
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Build() error = %v, want ErrValidation", err)
	}
}

func TestReportService_Build_SameDayAfterNormalization(t *testing.T) {
	store := &fakeReportStore{}
	svc := ReportService{Store: store, Shops: testShops()}

	// End is earlier in wall-clock time but the same calendar day.
	report, err := svc.Build(context.Background(), ReportParams{
		Start: time.Date(2025, time.March, 1, 23, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.March, 1, 1, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(report.Days) != 1 {
		t.Errorf("len(Days) = %d, want 1", len(report.Days))
	}
}

func TestReportService_Build_UnknownShop(t *testing.T) {
	svc := ReportService{Store: &fakeReportStore{}, Shops: testShops()}

	missing := int64(99)
	_, err := svc.Build(context.Background(), ReportParams{
		Start:  day(2025, time.March, 1),
		End:    day(2025, time.March, 1),
		ShopID: &missing,
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Build() error = %v, want ErrNotFound", err)
	}
}

func TestReportService_Build_ShopScopePassedToStore(t *testing.T) {
	store := &fakeReportStore{}
	svc := ReportService{Store: store, Shops: testShops()}

	shopID := int64(2)
	if _, err := svc.Build(context.Background(), ReportParams{
		Start:  day(2025, time.March, 1),
		End:    day(2025, time.March, 1),
		ShopID: &shopID,
	}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if store.gotShopID == nil || *store.gotShopID != shopID {
		t.Error("shop filter was not passed through to the store")
	}
}
