package server

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/orayew2002/rast-payroll/app"
	"github.com/orayew2002/rast-payroll/config"
	"github.com/orayew2002/rast-payroll/domain"
	"github.com/orayew2002/rast-payroll/layout"
	"github.com/orayew2002/rast-payroll/processor"
	"github.com/orayew2002/rast-payroll/report"
	"github.com/orayew2002/rast-payroll/roster"
	"github.com/shopspring/decimal"
)

type handler struct {
	app     *app.App
	payment config.PaymentConfig
	now     func() time.Time
}

func (h handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "up"})
}

type employeeRequest struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Mobile        string          `json:"mobile"`
	Designation   string          `json:"designation"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	IFSC          string          `json:"ifsc"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

func (req employeeRequest) input() roster.Input {
	return roster.Input{
		Name:          req.Name,
		Email:         req.Email,
		Mobile:        req.Mobile,
		Designation:   req.Designation,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSC:          req.IFSC,
		MonthlySalary: req.MonthlySalary,
	}
}

func (h handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		writeJSON(w, http.StatusOK, h.app.Search(q))
		return
	}
	writeJSON(w, http.StatusOK, h.app.Employees())
}

func (h handler) addEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	emp, err := h.app.AddEmployee(r.Context(), req.input())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, emp)
}

func (h handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	emp, err := h.app.UpdateEmployee(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

func (h handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.app.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type processResponse struct {
	Month       string   `json:"month_year"`
	WindowStart string   `json:"window_start"`
	WindowEnd   string   `json:"window_end"`
	Processed   int      `json:"processed"`
	Employees   int      `json:"employees"`
	Warnings    []string `json:"warnings"`
}

// process accepts the exports as multipart files under the format tags
// ("altius", "monthinout"); each tag may repeat.
func (h handler) process(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var uploads []processor.Upload
	for _, format := range layout.Formats {
		for _, fh := range r.MultipartForm.File[format.String()] {
			data, err := readUpload(fh)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			uploads = append(uploads, processor.Upload{Name: fh.Filename, Format: format, Data: data})
		}
	}
	if len(uploads) == 0 {
		writeError(w, http.StatusBadRequest, "no attendance files uploaded")
		return
	}

	res, err := h.app.Process(r.Context(), uploads)
	if err != nil {
		writeAppError(w, err)
		return
	}

	resp := processResponse{
		Month:       res.Book.Month,
		WindowStart: res.Window.Start.Format(domain.DateLayout),
		WindowEnd:   res.Window.End.Format(domain.DateLayout),
		Processed:   res.Processed,
		Employees:   len(res.Book.Employees),
		Warnings:    make([]string, 0, len(res.Warnings)),
	}
	for _, warn := range res.Warnings {
		resp.Warnings = append(resp.Warnings, warn.String())
	}
	writeJSON(w, http.StatusOK, resp)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("unable to open %s", fh.Filename)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s", fh.Filename)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty", fh.Filename)
	}
	return data, nil
}

func (h handler) attendance(w http.ResponseWriter, r *http.Request) {
	view, err := h.app.Attendance(chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type statusRequest struct {
	Status string `json:"status"`
	Remark string `json:"remark"`
}

func (h handler) setStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		writeAppError(w, err)
		return
	}

	rec, err := h.app.SetStatus(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "date"), status, req.Remark)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h handler) ledger(w http.ResponseWriter, _ *http.Request) {
	data, err := h.app.Ledger()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeXLSX(w, report.LedgerFilename, data)
}

type paymentRequest struct {
	TransactionType string `json:"transaction_type"`
	DebitAccount    string `json:"debit_account"`
	TransactionDate string `json:"transaction_date"` // DD/MM/YYYY, today when empty
	Remark          string `json:"remark"`
}

func (h handler) payment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	opts := report.PaymentOptions{
		TransactionType: strings.ToUpper(strings.TrimSpace(req.TransactionType)),
		DebitAccount:    req.DebitAccount,
		Date:            h.now(),
		Remark:          req.Remark,
	}
	if opts.TransactionType == "" {
		opts.TransactionType = h.payment.TransactionType
	}
	if strings.TrimSpace(opts.DebitAccount) == "" {
		opts.DebitAccount = h.payment.DebitAccount
	}
	if req.TransactionDate != "" {
		date, err := report.ParseTransactionDate(req.TransactionDate)
		if err != nil {
			writeAppError(w, err)
			return
		}
		opts.Date = date
	}

	data, err := h.app.Payment(opts)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeXLSX(w, report.PaymentFilename(h.now()), data)
}
