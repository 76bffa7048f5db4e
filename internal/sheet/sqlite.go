// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDBFile is used when no path is given for SQLite output.
const DefaultDBFile = "people.db"

// SQLiteWriter keeps the latest rows in a SQLite table. Each Write
// replaces the table contents in one transaction and appends a row to the
// runs log.
type SQLiteWriter struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one entry of the runs log.
type Run struct {
	ID        string
	WrittenAt time.Time
	Header    []string
	Rows      int
}

// NewSQLiteWriter opens or creates the database at path and its schema.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	if path == "" {
		path = DefaultDBFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteWriter{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteWriter) Close() error {
	return s.db.Close()
}

func (s *SQLiteWriter) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS people (
			position INTEGER PRIMARY KEY,
			name TEXT,
			email TEXT,
			role TEXT,
			program TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			written_at TEXT NOT NULL,
			header TEXT NOT NULL,
			row_count INTEGER NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Write replaces all rows. Rows must have four columns in header order.
func (s *SQLiteWriter) Write(ctx context.Context, header []string, rows [][]string) error {
	for i, row := range rows {
		if len(row) != 4 {
			return fmt.Errorf("row %d has %d columns, want 4", i, len(row))
		}
	}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM people`); err != nil {
		return fmt.Errorf("clearing people: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO people (position, name, email, role, program) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, i, row[0], row[1], row[2], row[3]); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, written_at, header, row_count) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), s.now().UTC().Format(time.RFC3339Nano), string(headerJSON), len(rows),
	); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	return tx.Commit()
}

// Rows returns the stored rows in their written order.
func (s *SQLiteWriter) Rows(ctx context.Context) ([][]string, error) {
	rs, err := s.db.QueryContext(ctx,
		`SELECT name, email, role, program FROM people ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying people: %w", err)
	}
	defer rs.Close()

	var out [][]string
	for rs.Next() {
		var name, email, role, program sql.NullString
		if err := rs.Scan(&name, &email, &role, &program); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, []string{name.String, email.String, role.String, program.String})
	}
	return out, rs.Err()
}

// Runs returns the runs log, most recent first.
func (s *SQLiteWriter) Runs(ctx context.Context) ([]Run, error) {
	rs, err := s.db.QueryContext(ctx,
		`SELECT id, written_at, header, row_count FROM runs ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rs.Close()

	var out []Run
	for rs.Next() {
		var r Run
		var writtenAt, header string
		if err := rs.Scan(&r.ID, &writtenAt, &header, &r.Rows); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if r.WrittenAt, err = time.Parse(time.RFC3339Nano, writtenAt); err != nil {
			return nil, fmt.Errorf("parsing run time %q: %w", writtenAt, err)
		}
		if err := json.Unmarshal([]byte(header), &r.Header); err != nil {
			return nil, fmt.Errorf("parsing run header: %w", err)
		}
		out = append(out, r)
	}
	return out, rs.Err()
}
