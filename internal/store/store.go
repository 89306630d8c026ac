// SPDX-License-Identifier: MIT

// Package store persists named linear combinations in a SQLite file.
//
// Each combination is one row in combinations (UUID id, unique name,
// SHAKE-256 fingerprint) plus one row per term in terms. Reads go through
// the strict lincomb constructor, so a corrupted row surfaces as an error
// rather than as a Combination that breaks the sparse-zero invariant.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/nfaross/model-s4plus/lincomb"
	"github.com/nfaross/model-s4plus/tensor"
	"github.com/nfaross/model-s4plus/word"
)

// Sentinel errors.
var (
	// ErrNotFound indicates no combination is stored under the name.
	ErrNotFound = errors.New("store: combination not found")

	// ErrEmptyName indicates a blank name was passed to Put.
	ErrEmptyName = errors.New("store: name is empty")

	// ErrClosed indicates use of a Store after Close.
	ErrClosed = errors.New("store: closed")
)

// Record describes a stored combination without its terms.
type Record struct {
	ID          string
	Name        string
	Fingerprint string
	Terms       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store is a SQLite-backed catalogue of named combinations.
// It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	closed bool
	db     *sql.DB
	now    func() time.Time
}

// Open opens (creating if needed) the database at path and applies the schema.
// The special path ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// One connection keeps ":memory:" coherent and serialises writers.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: schema: %w", err)
		}
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database. Calling Close twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	return s.db.Close()
}

// Put stores c under name, replacing any previous value (the ID and
// CreatedAt of an existing record are kept).
func (s *Store) Put(ctx context.Context, name string, c lincomb.Combination) (Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Record{}, ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	now := s.now().UTC()
	rec := Record{
		Name:        name,
		Fingerprint: c.Fingerprint(),
		Terms:       c.Len(),
		UpdatedAt:   now,
	}

	var created string
	err = tx.QueryRowContext(ctx,
		`SELECT combination_id, created_at FROM combinations WHERE name = ?`, name,
	).Scan(&rec.ID, &created)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		rec.ID = uuid.New().String()
		rec.CreatedAt = now
		_, err = tx.ExecContext(ctx,
			`INSERT INTO combinations (combination_id, name, fingerprint, term_count, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.Name, rec.Fingerprint, rec.Terms, formatTime(now), formatTime(now))
		if err != nil {
			return Record{}, fmt.Errorf("store: insert %q: %w", name, err)
		}
	case err != nil:
		return Record{}, fmt.Errorf("store: lookup %q: %w", name, err)
	default:
		if rec.CreatedAt, err = parseTime(created); err != nil {
			return Record{}, err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE combinations SET fingerprint = ?, term_count = ?, updated_at = ? WHERE combination_id = ?`,
			rec.Fingerprint, rec.Terms, formatTime(now), rec.ID)
		if err != nil {
			return Record{}, fmt.Errorf("store: update %q: %w", name, err)
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM terms WHERE combination_id = ?`, rec.ID); err != nil {
			return Record{}, fmt.Errorf("store: clear terms %q: %w", name, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO terms (combination_id, left_word, middle_word, right_word, coeff) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return Record{}, fmt.Errorf("store: prepare terms: %w", err)
	}
	defer stmt.Close()
	for _, tm := range c.Terms() {
		t := tm.Tensor
		if _, err := stmt.ExecContext(ctx, rec.ID, t[0].String(), t[1].String(), t[2].String(), tm.Coeff); err != nil {
			return Record{}, fmt.Errorf("store: insert term %s: %w", t, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Record{}, fmt.Errorf("store: commit: %w", err)
	}

	return rec, nil
}

// Get loads the combination stored under name.
func (s *Store) Get(ctx context.Context, name string) (lincomb.Combination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return lincomb.Zero(), ErrClosed
	}

	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT combination_id FROM combinations WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return lincomb.Zero(), fmt.Errorf("Get(%q): %w", name, ErrNotFound)
	}
	if err != nil {
		return lincomb.Zero(), fmt.Errorf("store: lookup %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT left_word, middle_word, right_word, coeff FROM terms WHERE combination_id = ?`, id)
	if err != nil {
		return lincomb.Zero(), fmt.Errorf("store: query terms %q: %w", name, err)
	}
	defer rows.Close()

	var terms []lincomb.Term
	for rows.Next() {
		var l, m, r string
		var k int64
		if err := rows.Scan(&l, &m, &r, &k); err != nil {
			return lincomb.Zero(), fmt.Errorf("store: scan term: %w", err)
		}
		t, err := parseFactors(l, m, r)
		if err != nil {
			return lincomb.Zero(), fmt.Errorf("store: term of %q: %w", name, err)
		}
		terms = append(terms, lincomb.Term{Tensor: t, Coeff: k})
	}
	if err := rows.Err(); err != nil {
		return lincomb.Zero(), fmt.Errorf("store: iterate terms: %w", err)
	}

	return lincomb.FromTerms(terms)
}

// List returns all records ordered by name.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	return s.queryRecords(ctx,
		`SELECT combination_id, name, fingerprint, term_count, created_at, updated_at
		 FROM combinations ORDER BY name`)
}

// FindByFingerprint returns the records whose value has fingerprint fp.
func (s *Store) FindByFingerprint(ctx context.Context, fp string) ([]Record, error) {
	return s.queryRecords(ctx,
		`SELECT combination_id, name, fingerprint, term_count, created_at, updated_at
		 FROM combinations WHERE fingerprint = ? ORDER BY name`, fp)
}

// Delete removes the combination stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT combination_id FROM combinations WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("Delete(%q): %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("store: lookup %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM terms WHERE combination_id = ?`, id); err != nil {
		return fmt.Errorf("store: delete terms %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM combinations WHERE combination_id = ?`, id); err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}

	return tx.Commit()
}

// queryRecords runs a combinations query and scans every row into a Record.
func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var created, updated string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Fingerprint, &rec.Terms, &created, &updated); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		if rec.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if rec.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

// parseFactors rebuilds a triple from its three stored words.
func parseFactors(l, m, r string) (tensor.Triple, error) {
	var t tensor.Triple
	for i, s := range []string{l, m, r} {
		w, err := word.Parse(s)
		if err != nil {
			return t, err
		}
		t[i] = w
	}

	return t, nil
}

func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("store: parse time %q: %w", s, err)
	}

	return t, nil
}
