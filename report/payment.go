package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/xuri/excelize/v2"
)

var (
	ErrDebitAccountRequired   = errors.New("payment: debit account number required")
	ErrInvalidTransactionDate = errors.New("payment: invalid date format (DD/MM/YYYY)")
	ErrInvalidTransactionType = errors.New("payment: transaction type must be NEFT or RTGS")
)

// TransactionDateLayout is the DD/MM/YYYY layout the bank import expects.
const TransactionDateLayout = "02/01/2006"

// Currency is the only currency paid out.
const Currency = "INR"

// TransactionTypes lists the accepted transfer types.
var TransactionTypes = []string{"NEFT", "RTGS"}

// paymentHeaders is the bank bulk-upload column layout.
var paymentHeaders = []string{
	"Beneficiary Name", "Beneficiary Account Number", "IFSC", "Transaction Type",
	"Debit Account Number", "Transaction Date", "Amount", "Currency",
	"Beneficiary Email ID", "Remarks", "Custom Header – 1", "Custom Header – 2",
	"Custom Header – 3", "Custom Header – 4", "Custom Header – 5",
}

// paymentNotes is the instruction row the bank template carries under the header.
var paymentNotes = []string{
	"Enter beneficiary name. MANDATORY", "Enter beneficiary account number. MANDATORY",
	"Enter beneficiary bank IFSC code.", "Enter payment type: IFT/NEFT/RTGS",
	"Enter debit account number.", "Enter transaction value date. DD/MM/YYYY",
	"Enter payment amount. MANDATORY", "Enter transaction currency. INR",
	"Enter beneficiary email id OPTIONAL", "Enter remarks OPTIONAL",
	"Credit Advice: Custom Info -1", "Credit Advice: Custom Info -2",
	"Credit Advice: Custom Info -3", "Credit Advice: Custom Info -4",
	"Credit Advice: Custom Info -5",
}

var paymentWidths = []float64{28, 26, 14, 12, 22, 14, 12, 9, 28, 24, 14, 14, 14, 14, 14}

const colAmount = 6

// PaymentOptions are the operator inputs of a payment file.
type PaymentOptions struct {
	TransactionType string
	DebitAccount    string
	Date            time.Time
	Remark          string
}

// Validate checks the options before anything is generated.
func (o PaymentOptions) Validate() error {
	if strings.TrimSpace(o.DebitAccount) == "" {
		return ErrDebitAccountRequired
	}
	for _, t := range TransactionTypes {
		if o.TransactionType == t {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidTransactionType, o.TransactionType)
}

// ParseTransactionDate reads a DD/MM/YYYY date.
func ParseTransactionDate(s string) (time.Time, error) {
	t, err := time.Parse(TransactionDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTransactionDate, s)
	}
	return t, nil
}

// PaymentFilename names a payment file generated at t.
func PaymentFilename(t time.Time) string {
	return fmt.Sprintf("BLKPAY_%s.xlsx", t.Format("20060102"))
}

// PaymentBytes builds the bulk-payment file: one row per employee of the book
// paying the employee's total salary. Bank details come from the roster and
// are left blank for employees no longer on it.
func PaymentBytes(book *domain.Book, roster *domain.Roster, opts PaymentOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writePayment(f, book, roster, opts); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func writePayment(f *excelize.File, book *domain.Book, roster *domain.Roster, opts PaymentOptions) error {
	sm := newStyleManager(f)

	if err := writeHeaders(f, sm, paymentHeaders); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	if err := setRow(f, 1, paymentNotes); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	noteStyle, err := sm.note()
	if err != nil {
		return fmt.Errorf("note style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A2", "O2", noteStyle); err != nil {
		return fmt.Errorf("note style: %w", err)
	}

	date := opts.Date.Format(TransactionDateLayout)
	row := 2
	for _, id := range book.IDs() {
		att := book.Employees[id]
		emp, _ := roster.ByID(id)

		values := []string{
			att.Name, emp.AccountNumber, emp.IFSC, opts.TransactionType,
			strings.TrimSpace(opts.DebitAccount), date, "", Currency,
			emp.Email, opts.Remark, id,
		}
		if err := setRow(f, row, values); err != nil {
			return fmt.Errorf("employee %s: %w", id, err)
		}
		if err := setMoney(f, sm.money, row, colAmount, att.TotalSalary); err != nil {
			return fmt.Errorf("employee %s amount: %w", id, err)
		}
		row++
	}

	if err := setWidths(f, paymentWidths); err != nil {
		return fmt.Errorf("set widths: %w", err)
	}
	return nil
}
