package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/orayew2002/rast-payroll/app"
	"github.com/orayew2002/rast-payroll/domain"
	"github.com/orayew2002/rast-payroll/report"
	"github.com/orayew2002/rast-payroll/roster"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type apiError struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
}

type apiResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Data    any       `json:"data"`
	Error   *apiError `json:"error,omitempty"`
}

func writeRawJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	writeRawJSON(w, status, apiResponse{Status: "ok", Data: payload})
}

func writeError(w http.ResponseWriter, status int, message string) {
	if status < 400 {
		status = http.StatusInternalServerError
	}
	writeRawJSON(w, status, apiResponse{
		Status:  "error",
		Message: message,
		Error: &apiError{
			Code:   status,
			Status: http.StatusText(status),
		},
	})
}

// writeAppError maps domain errors onto HTTP statuses.
func writeAppError(w http.ResponseWriter, err error) {
	writeError(w, statusOf(err), err.Error())
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, roster.ErrEmployeeNotFound),
		errors.Is(err, app.ErrNoAttendance),
		errors.Is(err, domain.ErrDayNotFound):
		return http.StatusNotFound
	case errors.Is(err, roster.ErrDuplicateName),
		errors.Is(err, app.ErrEmptyBook):
		return http.StatusConflict
	case errors.Is(err, roster.ErrInvalidName),
		errors.Is(err, roster.ErrNegativeSalary),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrRemarkRequired),
		errors.Is(err, domain.ErrNegativeSalary),
		errors.Is(err, report.ErrDebitAccountRequired),
		errors.Is(err, report.ErrInvalidTransactionDate),
		errors.Is(err, report.ErrInvalidTransactionType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeXLSX(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	_, _ = w.Write(data)
}
