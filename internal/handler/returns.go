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

type ReturnHandler struct {
	Store ports.ReturnStore
}

func (h ReturnHandler) RegisterShopRoutes(r chi.Router) {
	r.Get("/returns", h.listShop)
	r.Post("/returns", h.create)
	r.Delete("/returns/{returnID}", h.delete)
}

func (h ReturnHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/returns", h.listAll)
}

func (h ReturnHandler) listShop(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	h.list(w, r, &shopID)
}

func (h ReturnHandler) listAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, nil)
}

// Return listings default to the current month so far when no bounds are
// given.
func (h ReturnHandler) list(w http.ResponseWriter, r *http.Request, shopID *int64) {
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
	for _, ret := range items {
		total += ret.Amount
		resp = append(resp, returnPayload(ret))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"returns":     resp,
		"totalAmount": total,
	})
}

func (h ReturnHandler) create(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	var req struct {
		Date       string   `json:"date"`
		ItemName   string   `json:"itemName"`
		EmployeeID int64    `json:"employeeId"`
		Amount     *float64 `json:"amount"`
		Notes      string   `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
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

	created, err := h.Store.Create(r.Context(), domain.Return{
		ShopID:     shopID,
		Date:       date,
		ItemName:   req.ItemName,
		EmployeeID: req.EmployeeID,
		Amount:     *req.Amount,
		Notes:      req.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, returnPayload(*created))
}

func (h ReturnHandler) delete(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	returnID, err := strconv.ParseInt(chi.URLParam(r, "returnID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid return id")
		return
	}
	if err := h.Store.DeleteOwned(r.Context(), shopID, returnID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func returnPayload(ret domain.Return) map[string]any {
	return map[string]any{
		"id":         ret.ID,
		"shopId":     ret.ShopID,
		"date":       ret.Date.Format(dateLayout),
		"itemName":   ret.ItemName,
		"employeeId": ret.EmployeeID,
		"amount":     ret.Amount,
		"notes":      ret.Notes,
	}
}
