package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/demobank/fraudcall/internal/common"
	"github.com/demobank/fraudcall/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements service.CaseStore using SQLite. It keeps the
// whole-collection read/rewrite semantics of the JSON store so the
// dialogue layer is indifferent to the backend; a position column
// preserves collection order across rewrites.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

const schema = `
CREATE TABLE IF NOT EXISTS fraud_cases (
	position             INTEGER PRIMARY KEY,
	id                   TEXT NOT NULL UNIQUE,
	user_name            TEXT NOT NULL,
	security_identifier  TEXT NOT NULL DEFAULT '',
	card_ending          TEXT NOT NULL DEFAULT '',
	transaction_amount   REAL NOT NULL DEFAULT 0,
	transaction_currency TEXT NOT NULL DEFAULT 'USD',
	transaction_name     TEXT NOT NULL DEFAULT '',
	transaction_category TEXT NOT NULL DEFAULT '',
	transaction_source   TEXT NOT NULL DEFAULT '',
	transaction_location TEXT NOT NULL DEFAULT '',
	transaction_time     TEXT NOT NULL DEFAULT '',
	security_question    TEXT NOT NULL DEFAULT '',
	security_answer      TEXT NOT NULL DEFAULT '',
	status               TEXT NOT NULL DEFAULT 'pending_review',
	outcome_note         TEXT NOT NULL DEFAULT ''
)`

// NewSQLiteStore creates a SQLite-backed case store at dbPath and runs
// schema migration. Pass ":memory:" for an ephemeral store in tests.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Load reads the full case collection in stored order, seeding the
// table with the sample cases when it is empty. Row-level read failures
// fall back to the in-memory seed set, matching the JSON store.
func (s *SQLiteStore) Load(ctx context.Context) ([]model.FraudCase, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_name, security_identifier, card_ending,
			transaction_amount, transaction_currency, transaction_name,
			transaction_category, transaction_source, transaction_location,
			transaction_time, security_question, security_answer,
			status, outcome_note
		FROM fraud_cases ORDER BY position`)
	if err != nil {
		common.LogError(err, "failed to query case store, using seed data", common.Fields{"db": s.dbPath})
		return SeedCases(), nil
	}
	defer func() { _ = rows.Close() }()

	var cases []model.FraudCase
	for rows.Next() {
		var c model.FraudCase
		if err := rows.Scan(
			&c.ID, &c.UserName, &c.SecurityIdentifier, &c.CardEnding,
			&c.TransactionAmount, &c.TransactionCurrency, &c.TransactionName,
			&c.TransactionCategory, &c.TransactionSource, &c.TransactionLocation,
			&c.TransactionTime, &c.SecurityQuestion, &c.SecurityAnswer,
			&c.Status, &c.OutcomeNote,
		); err != nil {
			common.LogError(err, "failed to scan case row, using seed data", common.Fields{"db": s.dbPath})
			return SeedCases(), nil
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		common.LogError(err, "failed to read case store, using seed data", common.Fields{"db": s.dbPath})
		return SeedCases(), nil
	}

	if len(cases) == 0 {
		seeded := SeedCases()
		if err := s.Save(ctx, seeded); err != nil {
			common.LogError(err, "failed to seed case store", common.Fields{"db": s.dbPath})
		}
		return seeded, nil
	}

	return cases, nil
}

// Save rewrites the entire collection inside one transaction.
func (s *SQLiteStore) Save(ctx context.Context, cases []model.FraudCase) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCases(cases); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fraud_cases`); err != nil {
		return fmt.Errorf("failed to clear case table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO fraud_cases (
			position, id, user_name, security_identifier, card_ending,
			transaction_amount, transaction_currency, transaction_name,
			transaction_category, transaction_source, transaction_location,
			transaction_time, security_question, security_answer,
			status, outcome_note
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, c := range cases {
		if _, err := stmt.ExecContext(ctx,
			i, c.ID, c.UserName, c.SecurityIdentifier, c.CardEnding,
			c.TransactionAmount, c.TransactionCurrency, c.TransactionName,
			c.TransactionCategory, c.TransactionSource, c.TransactionLocation,
			c.TransactionTime, c.SecurityQuestion, c.SecurityAnswer,
			string(c.Status), c.OutcomeNote,
		); err != nil {
			return fmt.Errorf("failed to insert case %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
