// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps priced quotes in a local SQLite database so they can
// be listed, shown again and exported.
package history

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rotisserie/eris"

	"github.com/pdiddy/paintquote/pkg/types"
)

const (
	dbFile       = "quotes.db"
	defaultLimit = 20
)

// ErrNotFound is returned by Get for an unknown quote id.
var ErrNotFound = errors.New("history: quote not found")

// Record is one saved quote.
type Record struct {
	ID           string       `json:"id" yaml:"id"`
	CreatedAt    time.Time    `json:"createdAt" yaml:"createdAt"`
	CustomerName string       `json:"customerName,omitempty" yaml:"customerName,omitempty"`
	Address      string       `json:"address,omitempty" yaml:"address,omitempty"`
	ProjectType  string       `json:"projectType,omitempty" yaml:"projectType,omitempty"`
	GrandTotal   float64      `json:"grandTotal" yaml:"grandTotal"`
	InputText    string       `json:"inputText" yaml:"inputText"`
	Result       types.Result `json:"result" yaml:"result"`
}

// ListOptions filters List.
type ListOptions struct {
	// Customer matches customer names case-insensitively by substring.
	Customer string

	// Query matches the original input text by substring.
	Query string

	// Limit caps the number of records. Zero uses the store default.
	Limit int
}

// Store manages the history database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens or creates dir/quotes.db.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrap(err, "history: create directory")
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, eris.Wrap(err, "history: open database")
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			customer_name TEXT,
			address TEXT,
			project_type TEXT,
			grand_total REAL,
			input_text TEXT NOT NULL,
			result_json TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_created_at ON quotes(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_customer ON quotes(customer_name)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return eris.Wrap(err, "history: create schema")
		}
	}
	return nil
}

// QuoteID derives the stable id of an input text: the first 12 hex digits of
// its SHA-256.
func QuoteID(text string) string {
	h := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return hex.EncodeToString(h[:])[:12]
}

// Save stores result under the id of text. Saving the same text again
// replaces the earlier record.
func (s *Store) Save(ctx context.Context, text string, result types.Result) (string, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return "", eris.Wrap(err, "history: marshal result")
	}

	id := QuoteID(text)
	spec := result.Specification
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO quotes
			(id, created_at, customer_name, address, project_type, grand_total, input_text, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, s.now().UTC().Format(time.RFC3339Nano), spec.CustomerName, spec.Address,
		string(spec.ProjectType), result.Breakdown.GrandTotal, text, string(data))
	if err != nil {
		return "", eris.Wrapf(err, "history: save quote %s", id)
	}
	return id, nil
}

// Get loads one record.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, customer_name, address, project_type, grand_total, input_text, result_json
		FROM quotes WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, eris.Wrapf(err, "history: get quote %s", id)
	}
	return rec, nil
}

// List returns records newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Record, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT id, created_at, customer_name, address, project_type, grand_total, input_text, result_json
		FROM quotes WHERE 1=1`)
	if opts.Customer != "" {
		qb.WriteString(` AND lower(customer_name) LIKE ?`)
		args = append(args, "%"+strings.ToLower(opts.Customer)+"%")
	}
	if opts.Query != "" {
		qb.WriteString(` AND lower(input_text) LIKE ?`)
		args = append(args, "%"+strings.ToLower(opts.Query)+"%")
	}
	qb.WriteString(` ORDER BY created_at DESC, id LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, eris.Wrap(err, "history: list quotes")
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, eris.Wrap(err, "history: scan quote")
		}
		out = append(out, rec)
	}
	return out, eris.Wrap(rows.Err(), "history: iterate quotes")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec                            Record
		created, data                  string
		customer, address, projectType sql.NullString
		total                          sql.NullFloat64
	)
	if err := sc.Scan(&rec.ID, &created, &customer, &address, &projectType, &total, &rec.InputText, &data); err != nil {
		return Record{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Record{}, err
	}
	rec.CreatedAt = t
	rec.CustomerName = customer.String
	rec.Address = address.String
	rec.ProjectType = projectType.String
	rec.GrandTotal = total.Float64
	if err := json.Unmarshal([]byte(data), &rec.Result); err != nil {
		return Record{}, err
	}
	return rec, nil
}
