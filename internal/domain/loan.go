package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanType represents the kind of debt instrument
type LoanType string

const (
	LoanTypeMortgage  LoanType = "MORTGAGE"
	LoanTypeCar       LoanType = "CAR"
	LoanTypePersonal  LoanType = "PERSONAL"
	LoanTypeEducation LoanType = "EDUCATION"
	LoanTypeOther     LoanType = "OTHER"
)

// Valid reports whether the loan type is a known value
func (t LoanType) Valid() bool {
	switch t {
	case LoanTypeMortgage, LoanTypeCar, LoanTypePersonal, LoanTypeEducation, LoanTypeOther:
		return true
	default:
		return false
	}
}

// Loan represents a debt instrument with a fixed monthly payment
type Loan struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Type                LoanType        `json:"type"`
	PrincipalAmount     decimal.Decimal `json:"principal_amount"`
	InterestRatePercent decimal.Decimal `json:"interest_rate_percent"` // annual, flat
	MonthlyPayment      decimal.Decimal `json:"monthly_payment"`
	StartDate           time.Time       `json:"start_date"`
	TenureMonths        int             `json:"tenure_months"`
	Note                string          `json:"note,omitempty"`
}

// Validate ensures the loan adheres to domain rules
func (l *Loan) Validate() error {
	if l.Name == "" {
		return NewValidationError("loan name cannot be empty")
	}
	if !l.Type.Valid() {
		return NewValidationError("invalid loan type: " + string(l.Type))
	}
	if l.PrincipalAmount.IsNegative() {
		return NewValidationError("loan principal cannot be negative")
	}
	if l.InterestRatePercent.IsNegative() {
		return NewValidationError("loan interest rate cannot be negative")
	}
	if l.MonthlyPayment.IsNegative() {
		return NewValidationError("loan monthly payment cannot be negative")
	}
	if l.TenureMonths < 0 {
		return NewValidationError("loan tenure cannot be negative")
	}
	if l.StartDate.IsZero() {
		return NewValidationError("loan start date is required")
	}
	return nil
}

// ComputedLoan is the payoff state of a Loan at an evaluation time
type ComputedLoan struct {
	Loan

	MonthsPaid       int             `json:"months_paid"`
	MonthsRemaining  int             `json:"months_remaining"`
	IsCompleted      bool            `json:"is_completed"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
	TotalPayable     decimal.Decimal `json:"total_payable"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	ProgressPercent  decimal.Decimal `json:"progress_percent"`
}
