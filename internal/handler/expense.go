package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/godofwar007/Store-income-control/internal/ports"
	"github.com/go-chi/chi/v5"
)

type ExpenseHandler struct {
	Store ports.ExpenseStore
}

func (h ExpenseHandler) RegisterShopRoutes(r chi.Router) {
	r.Get("/expenses", h.listShop)
	r.Post("/expenses", h.create)
	r.Delete("/expenses/{expenseID}", h.delete)
}

func (h ExpenseHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/expenses", h.listAll)
}

func (h ExpenseHandler) listShop(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	h.list(w, r, &shopID)
}

func (h ExpenseHandler) listAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, nil)
}

func (h ExpenseHandler) list(w http.ResponseWriter, r *http.Request, shopID *int64) {
	from, err := parseDateQuery(r, "start_date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	to, err := parseDateQuery(r, "end_date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date")
		return
	}
	if from == nil && to == nil {
		defFrom, defTo := currentMonthSoFar()
		from, to = &defFrom, &defTo
	}

	items, err := h.Store.List(r.Context(), shopID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var total float64
	resp := make([]map[string]any, 0, len(items))
	for _, ex := range items {
		total += ex.Amount
		resp = append(resp, expensePayload(ex))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"expenses":    resp,
		"totalAmount": total,
	})
}

func (h ExpenseHandler) create(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	var req struct {
		Date     string   `json:"date"`
		Category string   `json:"category"`
		Amount   *float64 `json:"amount"`
		Notes    string   `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Category == "" {
		writeError(w, http.StatusBadRequest, "category is required")
		return
	}
	if req.Amount == nil {
		writeError(w, http.StatusBadRequest, "amount is required")
		return
	}
	date := today()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		date = parsed
	}

	created, err := h.Store.Create(r.Context(), domain.Expense{
		ShopID:   shopID,
		Date:     date,
		Category: req.Category,
		Amount:   *req.Amount,
		Notes:    req.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expensePayload(*created))
}

func (h ExpenseHandler) delete(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	expenseID, err := strconv.ParseInt(chi.URLParam(r, "expenseID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense id")
		return
	}
	if err := h.Store.DeleteOwned(r.Context(), shopID, expenseID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func expensePayload(ex domain.Expense) map[string]any {
	return map[string]any{
		"id":       ex.ID,
		"shopId":   ex.ShopID,
		"date":     ex.Date.Format(dateLayout),
		"category": ex.Category,
		"amount":   ex.Amount,
		"notes":    ex.Notes,
	}
}
