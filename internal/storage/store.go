// Package storage provides the data persistence layer: named JSON
// collections stored wholesale in a local SQLite database.
//
// Each persisted key holds one serialized collection (accounts,
// transactions, budgets, categories, settings). A save replaces the key's
// value in full; there is no merge and no per-record versioning. The single
// database connection serializes all key access, and BeginTx lets the
// ledger commit multi-key read-modify-write sequences atomically.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Persisted collection keys.
const (
	KeyAccounts     = "accounts"
	KeyTransactions = "transactions"
	KeyBudgets      = "budgets"
	KeyCategories   = "categories"
	KeySettings     = "settings"
)

// Keys lists every persisted collection key.
var Keys = []string{KeyAccounts, KeyTransactions, KeyBudgets, KeyCategories, KeySettings}

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is a SQLite-backed store of named JSON collections.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (or creates) the store at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: all reads and writes against a key are serialized, the
	// same guarantee the original single-threaded store gave implicitly.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginTx starts a database transaction. Collection accessors on the
// returned Tx see and write uncommitted state; Commit publishes every
// touched key at once, Rollback discards all of them.
func (s *Store) BeginTx(ctx context.Context) (*Tx, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return &Tx{tx: tx}, nil
}

// Tx is an in-flight multi-key transaction.
type Tx struct {
	tx *sql.Tx
}

// Commit publishes the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback discards the transaction. Safe to call after Commit.
func (t *Tx) Rollback() error {
	err := t.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

// load reads the JSON value stored under key into out. It reports false
// with no error when the key is absent, leaving out untouched so the
// caller's default survives.
func load(ctx context.Context, q querier, key string, out any) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	var raw []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM collections WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return true, nil
}

// save serializes value and stores it under key, replacing any prior value
// in full.
func save(ctx context.Context, q querier, key string, value any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO collections (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`,
		key, raw)
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}
