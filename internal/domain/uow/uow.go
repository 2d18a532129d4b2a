package uow

import (
	"context"

	"loanflow-backend/internal/domain/loan"
	"loanflow-backend/internal/domain/repayment"
	"loanflow-backend/internal/domain/user"
)

type Repos struct {
	Loans      loan.Repository
	Repayments repayment.Repository
	Users      user.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in. Serializes all
	// lifecycle transitions for a given loan.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
