package emi

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Mode selects how per-installment interest is computed.
type Mode string

const (
	// ModeFlat charges every installment interest against the original
	// principal. This mirrors the upstream behaviour this service replaces.
	ModeFlat Mode = "flat"
	// ModeDecliningBalance charges interest against the outstanding balance,
	// i.e. textbook amortization.
	ModeDecliningBalance Mode = "declining"
)

var ErrInvalidInput = errors.New("emi: invalid input")

// Installment is one period of a repayment schedule.
type Installment struct {
	DueDate   time.Time
	Principal decimal.Decimal
	Interest  decimal.Decimal
}

// ComputeInstallment returns the fixed monthly installment for a loan.
//
// The calculation uses:
//
//	monthlyRate = annualRatePercent / 100 / 12
//	emi         = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with a zero-rate fallback of P/n. The result is rounded half-up to two
// decimal places; callers must treat the rounded value as the contract.
func ComputeInstallment(principal decimal.Decimal, annualRatePercent float64, tenureMonths int) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}
	if tenureMonths <= 0 {
		return decimal.Zero, fmt.Errorf("%w: tenure must be positive", ErrInvalidInput)
	}
	if annualRatePercent < 0 {
		return decimal.Zero, fmt.Errorf("%w: rate must not be negative", ErrInvalidInput)
	}

	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(tenureMonths))).Round(2), nil
	}

	// float64 for the power term, decimal for the final rounding.
	factor := math.Pow(1+monthlyRate, float64(tenureMonths))
	raw := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(raw).Round(2), nil
}

// GenerateSchedule produces the full repayment schedule for a loan. It is a
// pure function: identical inputs yield an identical schedule.
//
// Exactly tenureMonths installments are returned, due on startDate and each
// calendar month after it (day-of-month clamped at short months). Every
// installment's interest and principal portions sum to the fixed EMI.
func GenerateSchedule(principal decimal.Decimal, annualRatePercent float64, tenureMonths int, startDate time.Time, mode Mode) ([]Installment, error) {
	installment, err := ComputeInstallment(principal, annualRatePercent, tenureMonths)
	if err != nil {
		return nil, err
	}

	monthlyRate := decimal.NewFromFloat(annualRatePercent / 100 / 12)
	schedule := make([]Installment, 0, tenureMonths)

	switch mode {
	case ModeDecliningBalance:
		remaining := principal
		for i := 0; i < tenureMonths; i++ {
			interest := remaining.Mul(monthlyRate).Round(2)
			principalPart := installment.Sub(interest)
			if i == tenureMonths-1 {
				// absorb rounding drift so the balance closes at zero
				principalPart = remaining
			}
			remaining = remaining.Sub(principalPart)
			schedule = append(schedule, Installment{
				DueDate:   AddMonths(startDate, i),
				Principal: principalPart,
				Interest:  interest,
			})
		}
	case ModeFlat, "":
		interest := principal.Mul(monthlyRate).Round(2)
		principalPart := installment.Sub(interest)
		for i := 0; i < tenureMonths; i++ {
			schedule = append(schedule, Installment{
				DueDate:   AddMonths(startDate, i),
				Principal: principalPart,
				Interest:  interest,
			})
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, mode)
	}

	return schedule, nil
}

// AddMonths steps t forward by whole calendar months, clamping the day to the
// last day of short target months (Jan 31 + 1 month = Feb 28/29). time.AddDate
// would normalize the overflow into the following month instead.
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}
