package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/godofwar007/Store-income-control/internal/repository"
	"github.com/go-chi/chi/v5"
)

type fakeIncomeStore struct {
	items     []domain.Income
	deleteErr error

	gotFrom, gotTo *time.Time
	gotShopID      *int64
}

func (f *fakeIncomeStore) List(ctx context.Context, shopID *int64, from, to *time.Time) ([]domain.Income, error) {
	f.gotShopID = shopID
	f.gotFrom, f.gotTo = from, to
	return f.items, nil
}

func (f *fakeIncomeStore) Create(ctx context.Context, in domain.Income) (*domain.Income, error) {
	in.ID = 1
	return &in, nil
}

func (f *fakeIncomeStore) DeleteOwned(ctx context.Context, shopID, id int64) error {
	return f.deleteErr
}

func incomeRouter(store *fakeIncomeStore) chi.Router {
	r := chi.NewRouter()
	h := IncomeHandler{Store: store}
	r.Route("/shop/{shopID}", h.RegisterShopRoutes)
	h.RegisterAdminRoutes(r)
	return r
}

func TestIncomeHandler_ListHasNoDefaultRange(t *testing.T) {
	store := &fakeIncomeStore{}
	r := incomeRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shop/1/incomes", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if store.gotFrom != nil || store.gotTo != nil {
		t.Error("income listing should not apply a default date range")
	}
	if store.gotShopID == nil || *store.gotShopID != 1 {
		t.Error("shop filter not passed to store")
	}
}

func TestIncomeHandler_GlobalListUnscoped(t *testing.T) {
	store := &fakeIncomeStore{}
	r := incomeRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/incomes?start_date=2025-03-01&end_date=2025-03-31", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if store.gotShopID != nil {
		t.Error("global listing should not be shop scoped")
	}
	if store.gotFrom == nil || store.gotFrom.Format(dateLayout) != "2025-03-01" {
		t.Error("explicit start_date not passed through")
	}
}

func TestIncomeHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "missing amount",
			body: `{"operationType":"sale","itemName":"socks","employeeId":5}`,
			want: http.StatusBadRequest,
		},
		{
			name: "missing item name",
			body: `{"operationType":"sale","employeeId":5,"amount":10}`,
			want: http.StatusBadRequest,
		},
		{
			name: "missing employee",
			body: `{"operationType":"sale","itemName":"socks","amount":10}`,
			want: http.StatusBadRequest,
		},
		{
			name: "bad date",
			body: `{"operationType":"sale","itemName":"socks","employeeId":5,"amount":10,"date":"03/01/2025"}`,
			want: http.StatusBadRequest,
		},
		{
			name: "negative amount accepted",
			body: `{"operationType":"correction","itemName":"socks","employeeId":5,"amount":-10}`,
			want: http.StatusCreated,
		},
		{
			name: "zero amount accepted",
			body: `{"operationType":"sale","itemName":"socks","employeeId":5,"amount":0}`,
			want: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := incomeRouter(&fakeIncomeStore{})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/shop/1/incomes", strings.NewReader(tt.body))
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestIncomeHandler_Delete(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		want      int
	}{
		{name: "owned record", deleteErr: nil, want: http.StatusOK},
		{name: "missing record", deleteErr: repository.ErrNotFound, want: http.StatusNotFound},
		{name: "another shop's record", deleteErr: repository.ErrForbidden, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := incomeRouter(&fakeIncomeStore{deleteErr: tt.deleteErr})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/shop/1/incomes/7", nil))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
