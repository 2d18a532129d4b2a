package repayment

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("repayment not found")

type Repository interface {
	// CreateBatch inserts a full schedule in one go.
	CreateBatch(ctx context.Context, rs []Repayment) error
	// ListByLoanID returns installments ordered by due date ascending.
	ListByLoanID(ctx context.Context, loanID uint64) ([]Repayment, error)
	GetByRepaymentID(ctx context.Context, repaymentID string) (*Repayment, error)
	Save(ctx context.Context, r *Repayment) error
}
