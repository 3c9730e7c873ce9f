package sqldb

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/networth-backend/internal/domain"
)

// loanRepository implements domain.LoanRepository
type loanRepository struct {
	db *DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *DB) domain.LoanRepository {
	return &loanRepository{db: db}
}

// List retrieves all loans ordered by start date
func (r *loanRepository) List(ctx context.Context) ([]*domain.Loan, error) {
	query := `
		SELECT id, name, loan_type, principal_amount, interest_rate_percent, monthly_payment,
			start_date, tenure_months, note
		FROM loans
		ORDER BY start_date, name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	loans := make([]*domain.Loan, 0)
	for rows.Next() {
		var loan domain.Loan
		var start string
		if err := rows.Scan(
			&loan.ID,
			&loan.Name,
			&loan.Type,
			&loan.PrincipalAmount,
			&loan.InterestRatePercent,
			&loan.MonthlyPayment,
			&start,
			&loan.TenureMonths,
			&loan.Note,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		if loan.StartDate, err = parseTime(start); err != nil {
			return nil, err
		}
		loans = append(loans, &loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loans: %w", err)
	}

	return loans, nil
}

// Save creates the loan or replaces an existing one with the same ID
func (r *loanRepository) Save(ctx context.Context, loan *domain.Loan) error {
	query := r.db.rebind(`
		INSERT INTO loans (id, name, loan_type, principal_amount, interest_rate_percent, monthly_payment,
			start_date, tenure_months, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			loan_type = excluded.loan_type,
			principal_amount = excluded.principal_amount,
			interest_rate_percent = excluded.interest_rate_percent,
			monthly_payment = excluded.monthly_payment,
			start_date = excluded.start_date,
			tenure_months = excluded.tenure_months,
			note = excluded.note
	`)

	_, err := r.db.ExecContext(ctx, query,
		loan.ID,
		loan.Name,
		string(loan.Type),
		loan.PrincipalAmount.String(),
		loan.InterestRatePercent.String(),
		loan.MonthlyPayment.String(),
		formatTime(loan.StartDate),
		loan.TenureMonths,
		loan.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to save loan: %w", err)
	}
	return nil
}

// Delete removes a loan, returning ErrNotFound if it did not exist
func (r *loanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "loans", id)
}
