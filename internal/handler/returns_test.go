package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/go-chi/chi/v5"
)

type fakeReturnStore struct {
	gotFrom, gotTo *time.Time
}

func (f *fakeReturnStore) List(ctx context.Context, shopID *int64, from, to *time.Time) ([]domain.Return, error) {
	f.gotFrom, f.gotTo = from, to
	return nil, nil
}

func (f *fakeReturnStore) Create(ctx context.Context, in domain.Return) (*domain.Return, error) {
	in.ID = 1
	return &in, nil
}

func (f *fakeReturnStore) DeleteOwned(ctx context.Context, shopID, id int64) error {
	return nil
}

func TestReturnHandler_ListDefaultsToCurrentMonth(t *testing.T) {
	store := &fakeReturnStore{}
	r := chi.NewRouter()
	r.Route("/shop/{shopID}", ReturnHandler{Store: store}.RegisterShopRoutes)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shop/2/returns", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if store.gotFrom == nil || store.gotTo == nil {
		t.Fatal("default range was not applied")
	}
	if store.gotFrom.Day() != 1 {
		t.Errorf("default range should start on the 1st, got day %d", store.gotFrom.Day())
	}
	now := time.Now()
	if store.gotFrom.Month() != now.Month() || store.gotFrom.Year() != now.Year() {
		t.Error("default range should cover the current month")
	}
	if store.gotTo.Before(*store.gotFrom) {
		t.Error("range end precedes its start")
	}
}

func TestReturnHandler_ListExplicitRangeWins(t *testing.T) {
	store := &fakeReturnStore{}
	r := chi.NewRouter()
	r.Route("/shop/{shopID}", ReturnHandler{Store: store}.RegisterShopRoutes)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shop/2/returns?start_date=2025-01-10&end_date=2025-01-20", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if store.gotFrom == nil || store.gotFrom.Format(dateLayout) != "2025-01-10" {
		t.Error("explicit start_date not passed through")
	}
	if store.gotTo == nil || store.gotTo.Format(dateLayout) != "2025-01-20" {
		t.Error("explicit end_date not passed through")
	}
}
