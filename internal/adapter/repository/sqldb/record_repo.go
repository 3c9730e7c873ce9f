package sqldb

import (
	"context"
	"fmt"

	"github.com/simaogato/networth-backend/internal/domain"
)

// recordRepository implements domain.RecordRepository
type recordRepository struct {
	db *DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *DB) domain.RecordRepository {
	return &recordRepository{db: db}
}

// ListYearly retrieves all yearly records, oldest first
func (r *recordRepository) ListYearly(ctx context.Context) ([]*domain.YearlyRecord, error) {
	query := `
		SELECT id, year, net_worth, invested, saved, pension, note
		FROM yearly_records
		ORDER BY year
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly records: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.YearlyRecord, 0)
	for rows.Next() {
		var rec domain.YearlyRecord
		if err := rows.Scan(&rec.ID, &rec.Year, &rec.NetWorth, &rec.Invested, &rec.Saved, &rec.Pension, &rec.Note); err != nil {
			return nil, fmt.Errorf("failed to scan yearly record: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating yearly records: %w", err)
	}

	return records, nil
}

// SaveYearly stores a yearly record, replacing any record for the same year in one database transaction
func (r *recordRepository) SaveYearly(ctx context.Context, record *domain.YearlyRecord) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, r.db.rebind(`DELETE FROM yearly_records WHERE year = ? OR id = ?`), record.Year, record.ID); err != nil {
		return fmt.Errorf("failed to replace yearly record: %w", err)
	}

	insertQuery := r.db.rebind(`
		INSERT INTO yearly_records (id, year, net_worth, invested, saved, pension, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err = dbTx.ExecContext(ctx, insertQuery,
		record.ID,
		record.Year,
		record.NetWorth.String(),
		record.Invested.String(),
		record.Saved.String(),
		record.Pension.String(),
		record.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert yearly record: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListDividends retrieves all dividends ordered by date
func (r *recordRepository) ListDividends(ctx context.Context) ([]*domain.DividendRecord, error) {
	query := `
		SELECT id, asset_id, symbol, date, amount, currency
		FROM dividends
		ORDER BY date, symbol
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividends: %w", err)
	}
	defer rows.Close()

	dividends := make([]*domain.DividendRecord, 0)
	for rows.Next() {
		var d domain.DividendRecord
		var date string
		if err := rows.Scan(&d.ID, &d.AssetID, &d.Symbol, &date, &d.Amount, &d.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan dividend: %w", err)
		}
		if d.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		dividends = append(dividends, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividends: %w", err)
	}

	return dividends, nil
}

// AddDividend creates a new dividend record
func (r *recordRepository) AddDividend(ctx context.Context, record *domain.DividendRecord) error {
	query := r.db.rebind(`
		INSERT INTO dividends (id, asset_id, symbol, date, amount, currency)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.AssetID,
		record.Symbol,
		formatTime(record.Date),
		record.Amount.String(),
		string(record.Currency),
	)
	if err != nil {
		return fmt.Errorf("failed to insert dividend: %w", err)
	}
	return nil
}

// ListTransactions retrieves all investment transactions ordered by date
func (r *recordRepository) ListTransactions(ctx context.Context) ([]*domain.InvestmentTransaction, error) {
	query := `
		SELECT id, asset_id, symbol, tx_type, date, quantity, price, fee, currency
		FROM investment_transactions
		ORDER BY date, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.InvestmentTransaction, 0)
	for rows.Next() {
		var tx domain.InvestmentTransaction
		var date string
		if err := rows.Scan(&tx.ID, &tx.AssetID, &tx.Symbol, &tx.Type, &date, &tx.Quantity, &tx.Price, &tx.Fee, &tx.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if tx.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

// AddTransaction creates a new investment transaction
func (r *recordRepository) AddTransaction(ctx context.Context, tx *domain.InvestmentTransaction) error {
	query := r.db.rebind(`
		INSERT INTO investment_transactions (id, asset_id, symbol, tx_type, date, quantity, price, fee, currency)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.AssetID,
		tx.Symbol,
		string(tx.Type),
		formatTime(tx.Date),
		tx.Quantity.String(),
		tx.Price.String(),
		tx.Fee.String(),
		string(tx.Currency),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}
