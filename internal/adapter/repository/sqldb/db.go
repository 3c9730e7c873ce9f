package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// timeLayout is fixed width so stored timestamps sort lexically
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// DB wraps the database connection
type DB struct {
	*sql.DB
	driver string
}

// NewDB creates a new database connection
// For postgres the dsn looks like "host=localhost port=5432 user=postgres password=postgres dbname=networth sslmode=disable";
// for sqlite it is a file path or ":memory:"
func NewDB(driver, dsn string) (*DB, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if driver == DriverSQLite {
		// Single writer; also keeps an in-memory database alive across calls
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: driver}, nil
}

// Driver returns the name of the driver the connection was opened with
func (db *DB) Driver() string {
	return db.driver
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Migrate creates every table the repositories need
func (db *DB) Migrate(ctx context.Context) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}
	return nil
}

// rebind rewrites ? placeholders into $n for postgres
func (db *DB) rebind(query string) string {
	if db.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// Decimals, ids and timestamps are stored as TEXT so the schema runs unchanged on both drivers
var schema = []string{
	`CREATE TABLE IF NOT EXISTS assets (
		id TEXT PRIMARY KEY,
		symbol TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		currency TEXT NOT NULL,
		quantity TEXT NOT NULL,
		average_cost TEXT NOT NULL,
		current_price TEXT NOT NULL,
		target_allocation TEXT NOT NULL,
		group_name TEXT NOT NULL DEFAULT '',
		pension_base_amount TEXT,
		pension_monthly_contribution TEXT,
		pension_start_date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS loans (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		loan_type TEXT NOT NULL,
		principal_amount TEXT NOT NULL,
		interest_rate_percent TEXT NOT NULL,
		monthly_payment TEXT NOT NULL,
		start_date TEXT NOT NULL,
		tenure_months INTEGER NOT NULL,
		note TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY,
		exchange_rate TEXT NOT NULL,
		fire_target TEXT NOT NULL,
		fire_target_liquid TEXT NOT NULL,
		saving_target TEXT NOT NULL,
		rebalance_threshold TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS price_history (
		id TEXT PRIMARY KEY,
		asset_id TEXT NOT NULL,
		date TEXT NOT NULL,
		price TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_price_history_asset_date ON price_history (asset_id, date)`,
	`CREATE TABLE IF NOT EXISTS yearly_records (
		id TEXT PRIMARY KEY,
		year INTEGER NOT NULL UNIQUE,
		net_worth TEXT NOT NULL,
		invested TEXT NOT NULL,
		saved TEXT NOT NULL,
		pension TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS dividends (
		id TEXT PRIMARY KEY,
		asset_id TEXT NOT NULL,
		symbol TEXT NOT NULL,
		date TEXT NOT NULL,
		amount TEXT NOT NULL,
		currency TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS investment_transactions (
		id TEXT PRIMARY KEY,
		asset_id TEXT NOT NULL,
		symbol TEXT NOT NULL,
		tx_type TEXT NOT NULL,
		date TEXT NOT NULL,
		quantity TEXT NOT NULL,
		price TEXT NOT NULL,
		fee TEXT NOT NULL,
		currency TEXT NOT NULL
	)`,
}
