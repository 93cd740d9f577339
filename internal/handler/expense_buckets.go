package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/godofwar007/Store-income-control/internal/repository"
	"github.com/go-chi/chi/v5"
)

type ShopExpenseHandler struct {
	Repo repository.ShopExpenseRepository
}

func (h ShopExpenseHandler) RegisterShopRoutes(r chi.Router) {
	r.Get("/expense-buckets", h.list)
	r.Put("/expense-buckets", h.upsert)
}

func (h ShopExpenseHandler) list(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	from, to, ok := bucketRange(w, r)
	if !ok {
		return
	}

	items, err := h.Repo.ListRange(r.Context(), shopID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var total float64
	totals := map[string]float64{}
	resp := make([]map[string]any, 0, len(items))
	for _, se := range items {
		totals["purchase"] += se.Purchase
		totals["storeNeeds"] += se.StoreNeeds
		totals["salary"] += se.Salary
		totals["rent"] += se.Rent
		totals["repair"] += se.Repair
		totals["marketing"] += se.Marketing
		total += se.Purchase + se.StoreNeeds + se.Salary + se.Rent + se.Repair + se.Marketing
		resp = append(resp, shopExpensePayload(se))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"expenseBuckets": resp,
		"totals":         totals,
		"totalAmount":    total,
	})
}

func (h ShopExpenseHandler) upsert(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	var req struct {
		Days []struct {
			Date           string  `json:"date"`
			Purchase       float64 `json:"purchase"`
			PurchaseNote   string  `json:"purchaseNote"`
			StoreNeeds     float64 `json:"storeNeeds"`
			StoreNeedsNote string  `json:"storeNeedsNote"`
			Salary         float64 `json:"salary"`
			SalaryNote     string  `json:"salaryNote"`
			Rent           float64 `json:"rent"`
			RentNote       string  `json:"rentNote"`
			Repair         float64 `json:"repair"`
			RepairNote     string  `json:"repairNote"`
			Marketing      float64 `json:"marketing"`
			MarketingNote  string  `json:"marketingNote"`
		} `json:"days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if len(req.Days) == 0 {
		writeError(w, http.StatusBadRequest, "days is required")
		return
	}

	days := make([]domain.ShopExpense, 0, len(req.Days))
	for _, d := range req.Days {
		date, err := time.Parse(dateLayout, d.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		days = append(days, domain.ShopExpense{
			ShopID:         shopID,
			Date:           date,
			Purchase:       d.Purchase,
			PurchaseNote:   d.PurchaseNote,
			StoreNeeds:     d.StoreNeeds,
			StoreNeedsNote: d.StoreNeedsNote,
			Salary:         d.Salary,
			SalaryNote:     d.SalaryNote,
			Rent:           d.Rent,
			RentNote:       d.RentNote,
			Repair:         d.Repair,
			RepairNote:     d.RepairNote,
			Marketing:      d.Marketing,
			MarketingNote:  d.MarketingNote,
		})
	}

	if err := h.Repo.UpsertDays(r.Context(), shopID, days); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "saved": len(days)})
}

func shopExpensePayload(se domain.ShopExpense) map[string]any {
	return map[string]any{
		"id":             se.ID,
		"shopId":         se.ShopID,
		"date":           se.Date.Format(dateLayout),
		"purchase":       se.Purchase,
		"purchaseNote":   se.PurchaseNote,
		"storeNeeds":     se.StoreNeeds,
		"storeNeedsNote": se.StoreNeedsNote,
		"salary":         se.Salary,
		"salaryNote":     se.SalaryNote,
		"rent":           se.Rent,
		"rentNote":       se.RentNote,
		"repair":         se.Repair,
		"repairNote":     se.RepairNote,
		"marketing":      se.Marketing,
		"marketingNote":  se.MarketingNote,
	}
}
