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

type SalesReturnHandler struct {
	Repo repository.SalesReturnRepository
}

func (h SalesReturnHandler) RegisterShopRoutes(r chi.Router) {
	r.Get("/sales-returns", h.list)
	r.Put("/sales-returns", h.upsert)
}

func (h SalesReturnHandler) list(w http.ResponseWriter, r *http.Request) {
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

	totals := map[string]float64{"retail": 0, "wholesale": 0, "return": 0}
	resp := make([]map[string]any, 0, len(items))
	for _, sr := range items {
		totals["retail"] += sr.RetailSaleAmount
		totals["wholesale"] += sr.WholesaleSaleAmount
		totals["return"] += sr.ReturnAmount
		resp = append(resp, salesReturnPayload(sr))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"salesReturns": resp,
		"totals":       totals,
	})
}

func (h SalesReturnHandler) upsert(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	var req struct {
		Days []struct {
			Date                string  `json:"date"`
			RetailSaleAmount    float64 `json:"retailSaleAmount"`
			RetailSaleNote      string  `json:"retailSaleNote"`
			WholesaleSaleAmount float64 `json:"wholesaleSaleAmount"`
			WholesaleSaleNote   string  `json:"wholesaleSaleNote"`
			ReturnAmount        float64 `json:"returnAmount"`
			ReturnNote          string  `json:"returnNote"`
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

	days := make([]domain.SalesReturn, 0, len(req.Days))
	for _, d := range req.Days {
		date, err := time.Parse(dateLayout, d.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		days = append(days, domain.SalesReturn{
			ShopID:              shopID,
			Date:                date,
			RetailSaleAmount:    d.RetailSaleAmount,
			RetailSaleNote:      d.RetailSaleNote,
			WholesaleSaleAmount: d.WholesaleSaleAmount,
			WholesaleSaleNote:   d.WholesaleSaleNote,
			ReturnAmount:        d.ReturnAmount,
			ReturnNote:          d.ReturnNote,
		})
	}

	if err := h.Repo.UpsertDays(r.Context(), shopID, days); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "saved": len(days)})
}

// bucketRange resolves the listing window: explicit start/end when given,
// current month so far otherwise.
func bucketRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	from, err := parseDateQuery(r, "start_date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date")
		return time.Time{}, time.Time{}, false
	}
	to, err := parseDateQuery(r, "end_date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date")
		return time.Time{}, time.Time{}, false
	}
	defFrom, defTo := currentMonthSoFar()
	if from == nil {
		from = &defFrom
	}
	if to == nil {
		to = &defTo
	}
	return *from, *to, true
}

func salesReturnPayload(sr domain.SalesReturn) map[string]any {
	return map[string]any{
		"id":                  sr.ID,
		"shopId":              sr.ShopID,
		"date":                sr.Date.Format(dateLayout),
		"retailSaleAmount":    sr.RetailSaleAmount,
		"retailSaleNote":      sr.RetailSaleNote,
		"wholesaleSaleAmount": sr.WholesaleSaleAmount,
		"wholesaleSaleNote":   sr.WholesaleSaleNote,
		"returnAmount":        sr.ReturnAmount,
		"returnNote":          sr.ReturnNote,
	}
}
