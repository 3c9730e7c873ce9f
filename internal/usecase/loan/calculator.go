package loan

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/networth-backend/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// ComputeLoan derives the payoff state of a loan at the given time.
// Interest is flat over the original tenure, not amortized on the declining balance.
//
// Logic:
//   - monthsPaid = min(whole months since StartDate, TenureMonths)
//   - totalInterest = principal * rate / 100 / 12 * TenureMonths
//   - remainingBalance = max(0, principal + totalInterest - monthsPaid * MonthlyPayment)
//   - progressPercent = monthsPaid / TenureMonths * 100, or 100 for a zero tenure
func ComputeLoan(loan domain.Loan, at time.Time) domain.ComputedLoan {
	monthsPaid := domain.MonthsBetween(loan.StartDate, at)
	if monthsPaid > loan.TenureMonths {
		monthsPaid = loan.TenureMonths
	}
	if monthsPaid < 0 {
		monthsPaid = 0
	}
	monthsRemaining := loan.TenureMonths - monthsPaid
	tenure := decimal.NewFromInt(int64(loan.TenureMonths))

	totalPaid := decimal.NewFromInt(int64(monthsPaid)).Mul(loan.MonthlyPayment)
	monthlyRate := loan.InterestRatePercent.Div(hundred).Div(twelve)
	totalInterest := loan.PrincipalAmount.Mul(monthlyRate).Mul(tenure)
	totalPayable := loan.PrincipalAmount.Add(totalInterest)

	remaining := totalPayable.Sub(totalPaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	progress := hundred
	if loan.TenureMonths > 0 {
		progress = decimal.Min(hundred, decimal.NewFromInt(int64(monthsPaid)).Div(tenure).Mul(hundred))
	}

	return domain.ComputedLoan{
		Loan:             loan,
		MonthsPaid:       monthsPaid,
		MonthsRemaining:  monthsRemaining,
		IsCompleted:      monthsRemaining == 0,
		TotalPaid:        totalPaid,
		TotalInterest:    totalInterest,
		TotalPayable:     totalPayable,
		RemainingBalance: remaining,
		ProgressPercent:  progress,
	}
}

// ComputeAll computes every loan in order
func ComputeAll(loans []domain.Loan, at time.Time) []domain.ComputedLoan {
	result := make([]domain.ComputedLoan, 0, len(loans))
	for _, l := range loans {
		result = append(result, ComputeLoan(l, at))
	}
	return result
}

// TotalDebt sums the remaining balance of every loan
func TotalDebt(loans []domain.ComputedLoan) decimal.Decimal {
	total := decimal.Zero
	for _, l := range loans {
		total = total.Add(l.RemainingBalance)
	}
	return total
}
