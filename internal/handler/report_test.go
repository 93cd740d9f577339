package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/godofwar007/Store-income-control/internal/ports"
	"github.com/godofwar007/Store-income-control/internal/server/authctx"
	"github.com/godofwar007/Store-income-control/internal/service"
	"github.com/go-chi/chi/v5"
)

type fakeReportStore struct {
	sales    map[string]ports.SalesSums
	expenses map[string]ports.ExpenseSums
	salary   float64

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
	return f.salary, nil
}

func reportRouter(store *fakeReportStore) chi.Router {
	shops := service.NewShopDirectory([]domain.Shop{
		{ID: 1, Name: "Shop 1"},
		{ID: 2, Name: "Shop 2"},
	})
	r := chi.NewRouter()
	ReportHandler{Service: service.ReportService{Store: store, Shops: shops}}.RegisterRoutes(r)
	return r
}

func reportRequest(target string, user *authctx.CurrentUser) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if user != nil {
		req = req.WithContext(authctx.WithCurrentUser(req.Context(), *user))
	}
	return req
}

func adminUser() *authctx.CurrentUser {
	return &authctx.CurrentUser{ID: 10, Access: domain.AccessAdmin, Scope: domain.Unrestricted()}
}

func managerOfShop(id int64) *authctx.CurrentUser {
	return &authctx.CurrentUser{ID: 11, Access: domain.AccessShopManager, Scope: domain.Restricted(id)}
}

func TestReportHandler_ShopScope(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		user       *authctx.CurrentUser
		want       int
		wantShopID *int64
	}{
		{
			name:   "admin unscoped",
			target: "/report",
			user:   adminUser(),
			want:   http.StatusOK,
		},
		{
			name:       "admin explicit shop",
			target:     "/report?shop_id=2",
			user:       adminUser(),
			want:       http.StatusOK,
			wantShopID: ptrInt64(2),
		},
		{
			name:       "manager defaults to own shop",
			target:     "/report",
			user:       managerOfShop(1),
			want:       http.StatusOK,
			wantShopID: ptrInt64(1),
		},
		{
			name:   "manager denied another shop",
			target: "/report?shop_id=2",
			user:   managerOfShop(1),
			want:   http.StatusForbidden,
		},
		{
			name:   "unknown shop",
			target: "/report?shop_id=99",
			user:   adminUser(),
			want:   http.StatusNotFound,
		},
		{
			name:   "invalid shop id",
			target: "/report?shop_id=abc",
			user:   adminUser(),
			want:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeReportStore{}
			r := reportRouter(store)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, reportRequest(tt.target, tt.user))

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
			if tt.want != http.StatusOK {
				return
			}
			switch {
			case tt.wantShopID == nil && store.gotShopID != nil:
				t.Error("report should be unscoped")
			case tt.wantShopID != nil && (store.gotShopID == nil || *store.gotShopID != *tt.wantShopID):
				t.Errorf("shop filter = %v, want %d", store.gotShopID, *tt.wantShopID)
			}
		})
	}
}

func TestReportHandler_RangeValidation(t *testing.T) {
	r := reportRouter(&fakeReportStore{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, reportRequest("/report?start_date=2025-03-05&end_date=2025-03-01", adminUser()))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestReportHandler_Payload(t *testing.T) {
	store := &fakeReportStore{
		sales: map[string]ports.SalesSums{
			"2025-03-01": {Retail: 200, Wholesale: 120, Return: 20},
		},
		expenses: map[string]ports.ExpenseSums{
			"2025-03-01": {Purchase: 100, Salary: 50},
		},
		salary: 2500,
	}
	r := reportRouter(store)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, reportRequest("/report?start_date=2025-03-01&end_date=2025-03-02", adminUser()))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Days []struct {
				Date string `json:"date"`
			} `json:"days"`
			Sales struct {
				NetSales float64 `json:"netSales"`
				Margin   float64 `json:"margin"`
			} `json:"sales"`
			Expenses struct {
				Total float64 `json:"total"`
			} `json:"expenses"`
			EmployeeSalaryTotal float64 `json:"employeeSalaryTotal"`
			NetProfit           float64 `json:"netProfit"`
		} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(resp.Data.Days) != 2 {
		t.Errorf("days = %d, want 2 (gap filled)", len(resp.Data.Days))
	}
	if resp.Data.Sales.NetSales != 180 || resp.Data.Sales.Margin != 80 {
		t.Errorf("sales = %+v", resp.Data.Sales)
	}
	if resp.Data.Expenses.Total != 150 {
		t.Errorf("expense total = %v, want 150", resp.Data.Expenses.Total)
	}
	if resp.Data.NetProfit != 30 {
		t.Errorf("net profit = %v, want 30", resp.Data.NetProfit)
	}
}

func TestReportHandler_ExportCSV(t *testing.T) {
	store := &fakeReportStore{
		sales: map[string]ports.SalesSums{
			"2025-03-01": {Retail: 200, Wholesale: 120, Return: 20},
		},
	}
	r := reportRouter(store)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, reportRequest("/report/export?start_date=2025-03-01&end_date=2025-03-01", adminUser()))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "report_20250301_20250301.csv") {
		t.Errorf("Content-Disposition = %s", cd)
	}
	body := w.Body.String()
	if !strings.Contains(body, "net_sales") {
		t.Error("missing header row")
	}
	if !strings.Contains(body, "180.00") || !strings.Contains(body, "80.00") {
		t.Errorf("missing derived columns in body:\n%s", body)
	}
}

func TestReportHandler_ExportBadFormat(t *testing.T) {
	r := reportRouter(&fakeReportStore{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, reportRequest("/report/export?format=pdf", adminUser()))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func ptrInt64(v int64) *int64 { return &v }
