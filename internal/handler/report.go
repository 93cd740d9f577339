package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/godofwar007/Store-income-control/internal/server/authctx"
	"github.com/godofwar007/Store-income-control/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

type ReportHandler struct {
	Service service.ReportService
}

func (h ReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.report)
	r.Get("/report", h.report)
	r.Get("/report/export", h.export)
}

// reportParams resolves the requested range (default: current month so far)
// and shop scope. A restricted manager without an explicit shop_id gets
// their own shop; an explicit shop_id outside the principal's scope is
// refused.
func reportParams(r *http.Request) (service.ReportParams, error) {
	var p service.ReportParams

	start, err := parseDateQuery(r, "start_date")
	if err != nil {
		return p, fmt.Errorf("%w: invalid start_date", service.ErrValidation)
	}
	end, err := parseDateQuery(r, "end_date")
	if err != nil {
		return p, fmt.Errorf("%w: invalid end_date", service.ErrValidation)
	}
	defStart, defEnd := currentMonthSoFar()
	p.Start, p.End = defStart, defEnd
	if start != nil {
		p.Start = *start
	}
	if end != nil {
		p.End = *end
	}

	user := authctx.FromContext(r.Context())
	if raw := r.URL.Query().Get("shop_id"); raw != "" {
		shopID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return p, fmt.Errorf("%w: invalid shop_id", service.ErrValidation)
		}
		if user != nil && !user.Scope.Allows(shopID) {
			return p, errForbiddenShop
		}
		p.ShopID = &shopID
	} else if user != nil {
		if shopID, restricted := user.Scope.ShopID(); restricted {
			p.ShopID = &shopID
		}
	}
	return p, nil
}

var errForbiddenShop = fmt.Errorf("shop access denied")

func (h ReportHandler) report(w http.ResponseWriter, r *http.Request) {
	params, err := reportParams(r)
	if err != nil {
		if err == errForbiddenShop {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		writeDomainError(w, err)
		return
	}

	report, err := h.Service.Build(r.Context(), params)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reportPayload(report))
}

func reportPayload(report *service.Report) map[string]any {
	days := make([]map[string]any, 0, len(report.Days))
	for _, d := range report.Days {
		days = append(days, map[string]any{
			"date":     d.Date,
			"sales":    salesPayload(d.Sales),
			"expenses": expensesPayload(d.Expenses),
		})
	}
	return map[string]any{
		"startDate":           report.StartDate,
		"endDate":             report.EndDate,
		"days":                days,
		"sales":               salesPayload(report.Sales),
		"expenses":            expensesPayload(report.Expenses),
		"employeeSalaryTotal": report.EmployeeSalaryTotal,
		"netProfit":           report.NetProfit,
	}
}

func salesPayload(s service.SalesTotals) map[string]any {
	return map[string]any{
		"retail":    s.Retail,
		"wholesale": s.Wholesale,
		"returns":   s.Return,
		"netSales":  s.NetSales,
		"margin":    s.Margin,
	}
}

func expensesPayload(e service.ExpenseTotals) map[string]any {
	return map[string]any{
		"purchase":   e.Purchase,
		"storeNeeds": e.StoreNeeds,
		"salary":     e.Salary,
		"rent":       e.Rent,
		"repair":     e.Repair,
		"marketing":  e.Marketing,
		"total":      e.Total,
	}
}

func (h ReportHandler) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	params, err := reportParams(r)
	if err != nil {
		if err == errForbiddenShop {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		writeDomainError(w, err)
		return
	}
	report, err := h.Service.Build(r.Context(), params)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	suffix := fmt.Sprintf("%s_%s",
		mustCompactDate(report.StartDate), mustCompactDate(report.EndDate))

	switch format {
	case "csv":
		data, err := exportReportCSV(report)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"report_%s.csv\"", suffix))
		_, _ = w.Write(data)
	case "xlsx", "excel":
		data, err := exportReportXLSX(report)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"report_%s.xlsx\"", suffix))
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "invalid format (use csv or xlsx)")
	}
}

var reportColumns = []string{
	"date", "retail_sales", "wholesale_sales", "returns", "net_sales", "margin",
	"purchase", "store_needs", "salary", "rent", "repair", "marketing", "total_expenses",
}

func reportRow(d service.DayTotals) []string {
	return []string{
		d.Date,
		formatAmount(d.Sales.Retail),
		formatAmount(d.Sales.Wholesale),
		formatAmount(d.Sales.Return),
		formatAmount(d.Sales.NetSales),
		formatAmount(d.Sales.Margin),
		formatAmount(d.Expenses.Purchase),
		formatAmount(d.Expenses.StoreNeeds),
		formatAmount(d.Expenses.Salary),
		formatAmount(d.Expenses.Rent),
		formatAmount(d.Expenses.Repair),
		formatAmount(d.Expenses.Marketing),
		formatAmount(d.Expenses.Total),
	}
}

func exportReportCSV(report *service.Report) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write(reportColumns)
	for _, d := range report.Days {
		_ = w.Write(reportRow(d))
	}
	_ = w.Write([]string{
		"total",
		formatAmount(report.Sales.Retail),
		formatAmount(report.Sales.Wholesale),
		formatAmount(report.Sales.Return),
		formatAmount(report.Sales.NetSales),
		formatAmount(report.Sales.Margin),
		formatAmount(report.Expenses.Purchase),
		formatAmount(report.Expenses.StoreNeeds),
		formatAmount(report.Expenses.Salary),
		formatAmount(report.Expenses.Rent),
		formatAmount(report.Expenses.Repair),
		formatAmount(report.Expenses.Marketing),
		formatAmount(report.Expenses.Total),
	})
	w.Flush()
	return buf.Bytes(), w.Error()
}

func exportReportXLSX(report *service.Report) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{
		"Date", "Retail", "Wholesale", "Returns", "Net Sales", "Margin",
		"Purchase", "Store Needs", "Salary", "Rent", "Repair", "Marketing", "Total Expenses",
	}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for rIdx, d := range report.Days {
		row := rIdx + 2
		values := []any{
			d.Date,
			d.Sales.Retail, d.Sales.Wholesale, d.Sales.Return, d.Sales.NetSales, d.Sales.Margin,
			d.Expenses.Purchase, d.Expenses.StoreNeeds, d.Expenses.Salary,
			d.Expenses.Rent, d.Expenses.Repair, d.Expenses.Marketing, d.Expenses.Total,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	totalRow := len(report.Days) + 2
	totals := []any{
		"Total",
		report.Sales.Retail, report.Sales.Wholesale, report.Sales.Return,
		report.Sales.NetSales, report.Sales.Margin,
		report.Expenses.Purchase, report.Expenses.StoreNeeds, report.Expenses.Salary,
		report.Expenses.Rent, report.Expenses.Repair, report.Expenses.Marketing,
		report.Expenses.Total,
	}
	for c, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(c+1, totalRow)
		_ = f.SetCellValue(sheet, cell, v)
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	_ = f.SetCellStyle(sheet, "A1", "M1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func mustCompactDate(day string) string {
	t, err := time.Parse(dateLayout, day)
	if err != nil {
		return day
	}
	return t.Format("20060102")
}
