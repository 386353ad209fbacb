package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/orayew2002/rast-payroll/domain"
)

// LoadBook reads the stored attendance book. An empty store yields an empty
// book with no month label.
func (s *Store) LoadBook(ctx context.Context) (*domain.Book, error) {
	var month string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM attendance_meta WHERE key = ?`, monthKey).Scan(&month)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: read month: %w", err)
	}
	book := domain.NewBook(month)

	if err := s.loadAttendance(ctx, book); err != nil {
		return nil, err
	}
	if err := s.loadDays(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *Store) loadAttendance(ctx context.Context, book *domain.Book) error {
	rows, err := s.db.QueryContext(ctx, `SELECT employee_id, name, total_salary FROM attendance`)
	if err != nil {
		return fmt.Errorf("store: query attendance: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		att := domain.NewEmployeeAttendance("")
		if err := rows.Scan(&id, &att.Name, &att.TotalSalary); err != nil {
			return fmt.Errorf("store: scan attendance: %w", err)
		}
		book.Employees[id] = att
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("store: iterate attendance: %w", err)
	}
	return nil
}

func (s *Store) loadDays(ctx context.Context, book *domain.Book) error {
	rows, err := s.db.QueryContext(ctx, `SELECT employee_id, date, in_time, out_time, total_hours,
		status, salary, remark, day FROM day_records`)
	if err != nil {
		return fmt.Errorf("store: query day records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, date string
			in, out  sql.NullString
			rec      domain.DayRecord
		)
		if err := rows.Scan(&id, &date, &in, &out, &rec.TotalHours, &rec.Status,
			&rec.Salary, &rec.Remark, &rec.Day); err != nil {
			return fmt.Errorf("store: scan day record: %w", err)
		}
		if in.Valid {
			rec.InTime = &in.String
		}
		if out.Valid {
			rec.OutTime = &out.String
		}

		att, ok := book.Employees[id]
		if !ok {
			return fmt.Errorf("store: day record %s for unknown attendance %s", date, id)
		}
		// The stored total is authoritative; records are attached without
		// moving it.
		att.Days[date] = &rec
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("store: iterate day records: %w", err)
	}
	return nil
}

// SaveBook replaces the stored attendance book with book.
func (s *Store) SaveBook(ctx context.Context, book *domain.Book) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, q := range []string{`DELETE FROM day_records`, `DELETE FROM attendance`} {
			if _, err := tx.ExecContext(ctx, q); err != nil {
				return fmt.Errorf("store: clear attendance: %w", err)
			}
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO attendance_meta (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, monthKey, book.Month); err != nil {
			return fmt.Errorf("store: write month: %w", err)
		}

		attStmt, err := tx.PrepareContext(ctx, `INSERT INTO attendance (employee_id, name, total_salary) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("store: prepare attendance insert: %w", err)
		}
		defer attStmt.Close()

		dayStmt, err := tx.PrepareContext(ctx, `INSERT INTO day_records (employee_id, date, in_time, out_time,
			total_hours, status, salary, remark, day) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("store: prepare day insert: %w", err)
		}
		defer dayStmt.Close()

		for _, id := range book.IDs() {
			att := book.Employees[id]
			if _, err := attStmt.ExecContext(ctx, id, att.Name, att.TotalSalary); err != nil {
				return fmt.Errorf("store: insert attendance %s: %w", id, err)
			}
			for _, date := range att.Dates() {
				rec := att.Days[date]
				if _, err := dayStmt.ExecContext(ctx, id, date, nullable(rec.InTime), nullable(rec.OutTime),
					rec.TotalHours, string(rec.Status), rec.Salary, rec.Remark, rec.Day); err != nil {
					return fmt.Errorf("store: insert day %s %s: %w", id, date, err)
				}
			}
		}
		return nil
	})
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
