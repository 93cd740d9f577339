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

type IncomeHandler struct {
	Store ports.IncomeStore
}

// RegisterShopRoutes mounts under /shop/{shopID}.
func (h IncomeHandler) RegisterShopRoutes(r chi.Router) {
	r.Get("/incomes", h.listShop)
	r.Post("/incomes", h.create)
	r.Delete("/incomes/{incomeID}", h.delete)
}

// RegisterAdminRoutes holds the cross-shop listing.
func (h IncomeHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/incomes", h.listAll)
}

func (h IncomeHandler) listShop(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	h.list(w, r, &shopID)
}

func (h IncomeHandler) listAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, nil)
}

// list applies independently optional date bounds; with neither bound the
// result is the full (shop-scoped) set.
func (h IncomeHandler) list(w http.ResponseWriter, r *http.Request, shopID *int64) {
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

	items, err := h.Store.List(r.Context(), shopID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var total float64
	resp := make([]map[string]any, 0, len(items))
	for _, in := range items {
		total += in.Amount
		resp = append(resp, incomePayload(in))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"incomes":     resp,
		"totalAmount": total,
	})
}

func (h IncomeHandler) create(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	var req struct {
		Date          string   `json:"date"`
		OperationType string   `json:"operationType"`
		ItemName      string   `json:"itemName"`
		EmployeeID    int64    `json:"employeeId"`
		Amount        *float64 `json:"amount"`
		Notes         string   `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.OperationType == "" {
		writeError(w, http.StatusBadRequest, "operationType is required")
		return
	}
	if req.ItemName == "" {
		writeError(w, http.StatusBadRequest, "itemName is required")
		return
	}
	if req.EmployeeID == 0 {
		writeError(w, http.StatusBadRequest, "employeeId is required")
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

	created, err := h.Store.Create(r.Context(), domain.Income{
		ShopID:        shopID,
		Date:          date,
		OperationType: req.OperationType,
		ItemName:      req.ItemName,
		EmployeeID:    req.EmployeeID,
		Amount:        *req.Amount,
		Notes:         req.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, incomePayload(*created))
}

func (h IncomeHandler) delete(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	incomeID, err := strconv.ParseInt(chi.URLParam(r, "incomeID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid income id")
		return
	}
	if err := h.Store.DeleteOwned(r.Context(), shopID, incomeID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func incomePayload(in domain.Income) map[string]any {
	return map[string]any{
		"id":            in.ID,
		"shopId":        in.ShopID,
		"date":          in.Date.Format(dateLayout),
		"operationType": in.OperationType,
		"itemName":      in.ItemName,
		"employeeId":    in.EmployeeID,
		"amount":        in.Amount,
		"notes":         in.Notes,
	}
}
