// Package store persists the roster and the attendance book in SQLite.
//
// Both are read whole at start-up and rewritten whole after every change,
// each rewrite inside one transaction. Nothing coordinates separate
// processes sharing a database file: the last writer wins.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/orayew2002/rast-payroll/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id             TEXT PRIMARY KEY,
	position       INTEGER NOT NULL,
	name           TEXT NOT NULL UNIQUE,
	email          TEXT NOT NULL DEFAULT '',
	mobile         TEXT NOT NULL DEFAULT '',
	designation    TEXT NOT NULL DEFAULT '',
	bank_name      TEXT NOT NULL DEFAULT '',
	account_number TEXT NOT NULL DEFAULT '',
	ifsc           TEXT NOT NULL DEFAULT '',
	monthly_salary TEXT NOT NULL DEFAULT '0'
);

CREATE TABLE IF NOT EXISTS attendance_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attendance (
	employee_id  TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	total_salary TEXT NOT NULL DEFAULT '0'
);

CREATE TABLE IF NOT EXISTS day_records (
	employee_id TEXT NOT NULL REFERENCES attendance(employee_id) ON DELETE CASCADE,
	date        TEXT NOT NULL,
	in_time     TEXT,
	out_time    TEXT,
	total_hours TEXT NOT NULL DEFAULT '00:00',
	status      TEXT NOT NULL,
	salary      TEXT NOT NULL DEFAULT '0',
	remark      TEXT NOT NULL DEFAULT '',
	day         TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (employee_id, date)
);
`

const monthKey = "month_year"

// Store is a SQLite-backed roster and attendance store.
type Store struct {
	db *sql.DB
}

// Open opens (creating when needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// withTx runs fn in a transaction, committing when fn succeeds.
func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("store: rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

// LoadRoster reads every employee in roster order.
func (s *Store) LoadRoster(ctx context.Context) (*domain.Roster, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, email, mobile, designation, bank_name,
		account_number, ifsc, monthly_salary FROM employees ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("store: query employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Mobile, &e.Designation, &e.BankName,
			&e.AccountNumber, &e.IFSC, &e.MonthlySalary); err != nil {
			return nil, fmt.Errorf("store: scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate employees: %w", err)
	}

	return domain.NewRoster(employees), nil
}

// SaveRoster replaces the stored roster with r.
func (s *Store) SaveRoster(ctx context.Context, r *domain.Roster) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM employees`); err != nil {
			return fmt.Errorf("store: clear employees: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO employees (id, position, name, email, mobile,
			designation, bank_name, account_number, ifsc, monthly_salary)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("store: prepare employee insert: %w", err)
		}
		defer stmt.Close()

		for i, e := range r.Employees() {
			if _, err := stmt.ExecContext(ctx, e.ID, i, e.Name, e.Email, e.Mobile, e.Designation,
				e.BankName, e.AccountNumber, e.IFSC, e.MonthlySalary); err != nil {
				return fmt.Errorf("store: insert employee %s: %w", e.ID, err)
			}
		}
		return nil
	})
}
