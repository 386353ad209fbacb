package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/orayew2002/rast-payroll/domain"
	"github.com/orayew2002/rast-payroll/layout"
	"github.com/orayew2002/rast-payroll/processor"
	"github.com/orayew2002/rast-payroll/report"
	"github.com/orayew2002/rast-payroll/roster"
	"github.com/orayew2002/rast-payroll/server"
	"github.com/shopspring/decimal"
)

var errUsage = errors.New("invalid arguments, see -h")

// runProcess reads format=path pairs, e.g. altius=gc_july.xls monthinout=merlin.xlsx.
func runProcess(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	var uploads []processor.Upload
	for _, arg := range args {
		tag, path, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%q: expected FORMAT=FILE", arg)
		}
		format, err := layout.ParseFormat(tag)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		uploads = append(uploads, processor.Upload{Name: filepath.Base(path), Format: format, Data: data})
	}

	res, err := e.app.Process(ctx, uploads)
	for _, w := range res.Warnings {
		e.log.Warn("skipped", "file", w.File, "employee", w.Employee, "err", w.Err)
	}
	if err != nil {
		return err
	}

	fmt.Printf("processed %d of %d files for %s (%s to %s), %d employees\n",
		res.Processed, len(uploads), res.Book.Month,
		res.Window.Start.Format(domain.DateLayout), res.Window.End.Format(domain.DateLayout),
		len(res.Book.Employees))
	return nil
}

func runEmployees(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		printEmployees(e.app.Employees())
		return nil
	case "add":
		fs := flag.NewFlagSet("employees add", flag.ContinueOnError)
		f := employeeFlags(fs)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		in, err := f.apply(fs, roster.Input{})
		if err != nil {
			return err
		}
		emp, err := e.app.AddEmployee(ctx, in)
		if err != nil {
			return err
		}
		fmt.Println("added:", emp.ID, emp.Name)
		return nil
	case "edit":
		fs := flag.NewFlagSet("employees edit", flag.ContinueOnError)
		id := fs.String("id", "", "employee ID")
		f := employeeFlags(fs)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		current, err := e.app.Employee(*id)
		if err != nil {
			return err
		}
		in, err := f.apply(fs, roster.InputFrom(current))
		if err != nil {
			return err
		}
		emp, err := e.app.UpdateEmployee(ctx, *id, in)
		if err != nil {
			return err
		}
		fmt.Println("updated:", emp.ID, emp.Name)
		return nil
	case "delete":
		fs := flag.NewFlagSet("employees delete", flag.ContinueOnError)
		id := fs.String("id", "", "employee ID")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := e.app.DeleteEmployee(ctx, *id); err != nil {
			return err
		}
		fmt.Println("deleted:", *id)
		return nil
	default:
		return fmt.Errorf("unknown employees command %q", sub)
	}
}

type employeeFlagSet struct {
	name, email, mobile, designation, bank, account, ifsc, salary *string
}

func employeeFlags(fs *flag.FlagSet) employeeFlagSet {
	return employeeFlagSet{
		name:        fs.String("name", "", "employee name"),
		email:       fs.String("email", "", "email address"),
		mobile:      fs.String("mobile", "", "mobile number"),
		designation: fs.String("designation", "", "designation"),
		bank:        fs.String("bank", "", "bank name"),
		account:     fs.String("account", "", "bank account number"),
		ifsc:        fs.String("ifsc", "", "IFSC code"),
		salary:      fs.String("salary", "", "monthly salary"),
	}
}

// apply overlays the flags that were given on base.
func (f employeeFlagSet) apply(fs *flag.FlagSet, base roster.Input) (roster.Input, error) {
	var err error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			base.Name = *f.name
		case "email":
			base.Email = *f.email
		case "mobile":
			base.Mobile = *f.mobile
		case "designation":
			base.Designation = *f.designation
		case "bank":
			base.BankName = *f.bank
		case "account":
			base.AccountNumber = *f.account
		case "ifsc":
			base.IFSC = *f.ifsc
		case "salary":
			d, perr := decimal.NewFromString(strings.TrimSpace(*f.salary))
			if perr != nil {
				err = fmt.Errorf("salary %q: %w", *f.salary, perr)
				return
			}
			base.MonthlySalary = d
		}
	})
	return base, err
}

func printEmployees(employees []domain.Employee) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESIGNATION\tBANK\tACCOUNT\tIFSC\tMONTHLY SALARY")
	for _, emp := range employees {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			emp.ID, emp.Name, emp.Designation, emp.BankName, emp.AccountNumber, emp.IFSC, emp.MonthlySalary.StringFixed(2))
	}
	tw.Flush()
}

func runOverride(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("override", flag.ContinueOnError)
	id := fs.String("id", "", "employee ID")
	date := fs.String("date", "", "day to change, YYYY-MM-DD")
	status := fs.String("status", "", `new status: "Full day", "Half day", "Absent" or "WFH"`)
	remark := fs.String("remark", "", "reason for the change (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := domain.ParseStatus(*status)
	if err != nil {
		return err
	}
	rec, err := e.app.SetStatus(ctx, *id, *date, st, *remark)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s: %s, salary %s\n", *id, *date, rec.Status, rec.Salary.StringFixed(2))
	return nil
}

func runSearch(_ context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	q := fs.String("q", "", "text to match against employee ID or name")
	id := fs.String("id", "", "employee ID whose attendance to show")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == "" {
		printEmployees(e.app.Search(*q))
		return nil
	}

	view, err := e.app.Attendance(*id)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (%s)\n", view.ID, view.Name, view.Month)
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDAY\tIN\tOUT\tHOURS\tSTATUS\tSALARY\tREMARK")
	for _, d := range view.Days {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.Date, d.Day, orDash(d.InTime), orDash(d.OutTime), d.TotalHours, d.Status, d.Salary.StringFixed(2), d.Remark)
	}
	tw.Flush()
	fmt.Println("total salary:", view.TotalSalary)
	return nil
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func runReport(_ context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	out := fs.String("out", report.LedgerFilename, "path to the output Excel file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := e.app.Ledger()
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Println("done:", *out)
	return nil
}

func runPayment(_ context.Context, e *env, args []string) error {
	now := time.Now()

	fs := flag.NewFlagSet("payment", flag.ContinueOnError)
	txType := fs.String("type", e.cfg.Payment.TransactionType, "transaction type, NEFT or RTGS")
	debit := fs.String("debit", e.cfg.Payment.DebitAccount, "debit account number")
	date := fs.String("date", now.Format(report.TransactionDateLayout), "transaction date, DD/MM/YYYY")
	remark := fs.String("remark", "", "remark printed on every payment")
	out := fs.String("out", report.PaymentFilename(now), "path to the output Excel file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	txDate, err := report.ParseTransactionDate(*date)
	if err != nil {
		return err
	}
	data, err := e.app.Payment(report.PaymentOptions{
		TransactionType: strings.ToUpper(strings.TrimSpace(*txType)),
		DebitAccount:    *debit,
		Date:            txDate,
		Remark:          *remark,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Println("done:", *out)
	return nil
}

const defaultSeedCount = 25

func runSeed(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	n := fs.Int("n", defaultSeedCount, "number of employees to generate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n <= 0 {
		return errUsage
	}

	added, err := e.app.Seed(ctx, *n)
	if err != nil {
		return err
	}
	printEmployees(added)
	return nil
}

func runServe(ctx context.Context, e *env, _ []string) error {
	router := server.NewRouter(e.app, e.cfg.Payment, e.log)
	return server.Start(ctx, e.cfg.Server.ListenAddr, router, e.log)
}
