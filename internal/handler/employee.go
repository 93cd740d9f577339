package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/godofwar007/Store-income-control/internal/repository"
	"github.com/godofwar007/Store-income-control/internal/server/authctx"
	"github.com/godofwar007/Store-income-control/internal/service"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler struct {
	Repo  repository.EmployeeRepository
	Shops *service.ShopDirectory
}

func (h EmployeeHandler) RegisterRoutes(r chi.Router) {
	r.Post("/employees", h.create)
	r.Put("/employees/{employeeID}", h.update)
	r.Delete("/employees/{employeeID}", h.delete)
}

// RegisterAdminRoutes holds the cross-shop listing.
func (h EmployeeHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/employees", h.list)
}

// RegisterShopRoutes mounts under /shop/{shopID}.
func (h EmployeeHandler) RegisterShopRoutes(r chi.Router) {
	r.Get("/employees", h.listShop)
}

func (h EmployeeHandler) list(w http.ResponseWriter, r *http.Request) {
	month, err := monthQueryOrCurrent(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month format")
		return
	}
	items, err := h.Repo.List(r.Context(), repository.ListEmployeesParams{
		Month:  month,
		SortBy: r.URL.Query().Get("sort_by"),
		Order:  r.URL.Query().Get("order"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, employeeListPayload(month, items))
}

func (h EmployeeHandler) listShop(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop id")
		return
	}
	month, err := monthQueryOrCurrent(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month format")
		return
	}
	items, err := h.Repo.List(r.Context(), repository.ListEmployeesParams{
		ShopID: &shopID,
		Month:  month,
		SortBy: r.URL.Query().Get("sort_by"),
		Order:  r.URL.Query().Get("order"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, employeeListPayload(month, items))
}

func employeeListPayload(month string, items []domain.Employee) map[string]any {
	var totalSalary float64
	resp := make([]map[string]any, 0, len(items))
	for _, e := range items {
		totalSalary += e.TotalSalary
		resp = append(resp, employeePayload(e))
	}
	return map[string]any{
		"month":       month,
		"employees":   resp,
		"totalSalary": totalSalary,
	}
}

func employeePayload(e domain.Employee) map[string]any {
	return map[string]any{
		"id":          e.ID,
		"name":        e.Name,
		"shopId":      e.ShopID,
		"hoursWorked": e.HoursWorked,
		"salary":      e.Salary,
		"motivation":  e.Motivation,
		"totalSalary": e.TotalSalary,
		"month":       e.Month,
	}
}

type employeeRequest struct {
	Name        string  `json:"name"`
	ShopID      int64   `json:"shopId"`
	HoursWorked int     `json:"hoursWorked"`
	Salary      float64 `json:"salary"`
	Motivation  float64 `json:"motivation"`
	TotalSalary float64 `json:"totalSalary"`
	Month       string  `json:"month"`
}

func (h EmployeeHandler) create(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if _, ok := h.Shops.Get(req.ShopID); !ok {
		writeError(w, http.StatusNotFound, "shop not found")
		return
	}
	if !user.Scope.Allows(req.ShopID) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	if req.Month == "" {
		month, _ := monthQueryOrCurrent(r)
		req.Month = month
	} else if !validMonth(req.Month) {
		writeError(w, http.StatusBadRequest, "invalid month format")
		return
	}

	created, err := h.Repo.Create(r.Context(), domain.Employee{
		Name:        req.Name,
		ShopID:      req.ShopID,
		HoursWorked: req.HoursWorked,
		Salary:      req.Salary,
		Motivation:  req.Motivation,
		TotalSalary: req.TotalSalary,
		Month:       req.Month,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, employeePayload(*created))
}

func (h EmployeeHandler) update(w http.ResponseWriter, r *http.Request) {
	existing, user, ok := h.loadGuarded(w, r)
	if !ok {
		return
	}
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" {
		req.Name = existing.Name
	}
	if req.ShopID == 0 {
		req.ShopID = existing.ShopID
	}
	if req.Month == "" {
		req.Month = existing.Month
	} else if !validMonth(req.Month) {
		writeError(w, http.StatusBadRequest, "invalid month format")
		return
	}
	if _, found := h.Shops.Get(req.ShopID); !found {
		writeError(w, http.StatusNotFound, "shop not found")
		return
	}
	// Moving an employee into a shop outside the caller's scope is refused.
	if !user.Scope.Allows(req.ShopID) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	updated, err := h.Repo.Update(r.Context(), domain.Employee{
		ID:          existing.ID,
		Name:        req.Name,
		ShopID:      req.ShopID,
		HoursWorked: req.HoursWorked,
		Salary:      req.Salary,
		Motivation:  req.Motivation,
		TotalSalary: req.TotalSalary,
		Month:       req.Month,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employeePayload(*updated))
}

func (h EmployeeHandler) delete(w http.ResponseWriter, r *http.Request) {
	existing, _, ok := h.loadGuarded(w, r)
	if !ok {
		return
	}
	if err := h.Repo.Delete(r.Context(), existing.ID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// loadGuarded fetches the target employee and verifies the caller's scope
// covers the employee's shop before any mutation happens.
func (h EmployeeHandler) loadGuarded(w http.ResponseWriter, r *http.Request) (*domain.Employee, *authctx.CurrentUser, bool) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil, nil, false
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return nil, nil, false
	}
	existing, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return nil, nil, false
	}
	if !user.Scope.Allows(existing.ShopID) {
		writeError(w, http.StatusForbidden, "forbidden")
		return nil, nil, false
	}
	return existing, user, true
}

func validMonth(month string) bool {
	_, err := parseMonth(month)
	return err == nil
}
