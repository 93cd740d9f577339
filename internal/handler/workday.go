package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/godofwar007/Store-income-control/internal/repository"
	"github.com/godofwar007/Store-income-control/internal/server/authctx"
	"github.com/godofwar007/Store-income-control/internal/service"
	"github.com/go-chi/chi/v5"
)

type WorkdayHandler struct {
	Service   service.WorkdayService
	Employees repository.EmployeeRepository
}

func (h WorkdayHandler) RegisterRoutes(r chi.Router) {
	r.Get("/employees/{employeeID}/workdays", h.calendar)
	r.Post("/employees/{employeeID}/workdays", h.submit)
}

func (h WorkdayHandler) calendar(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, ok := h.resolveTarget(w, r)
	if !ok {
		return
	}
	days, err := h.Service.MonthCalendar(r.Context(), employeeID, year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(days))
	for _, d := range days {
		resp = append(resp, map[string]any{
			"date":   d.Date,
			"worked": d.Worked,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"employeeId": employeeID,
		"month":      time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(monthLayout),
		"days":       resp,
	})
}

func (h WorkdayHandler) submit(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, ok := h.resolveTarget(w, r)
	if !ok {
		return
	}
	var req struct {
		WorkedDays []string `json:"workedDays"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := h.Service.SetWorkedDays(r.Context(), employeeID, year, month, req.WorkedDays); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.calendar(w, r)
}

// resolveTarget parses the employee and month, checks the caller's shop
// scope against the employee's shop, and writes the failure response itself.
func (h WorkdayHandler) resolveTarget(w http.ResponseWriter, r *http.Request) (int64, int, time.Month, bool) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return 0, 0, 0, false
	}
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return 0, 0, 0, false
	}
	monthStr, err := monthQueryOrCurrent(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month format")
		return 0, 0, 0, false
	}
	monthStart, _ := parseMonth(monthStr)

	employee, err := h.Employees.GetByID(r.Context(), employeeID)
	if err != nil {
		writeDomainError(w, err)
		return 0, 0, 0, false
	}
	if !user.Scope.Allows(employee.ShopID) {
		writeError(w, http.StatusForbidden, "forbidden")
		return 0, 0, 0, false
	}
	return employeeID, monthStart.Year(), monthStart.Month(), true
}
