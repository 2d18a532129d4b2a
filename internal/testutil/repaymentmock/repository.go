package repaymentmock

import (
	"context"

	domain "loanflow-backend/internal/domain/repayment"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies repayment.Repository.
type Repo struct {
	CreateBatchFn      func(ctx context.Context, rs []domain.Repayment) error
	ListByLoanIDFn     func(ctx context.Context, loanID uint64) ([]domain.Repayment, error)
	GetByRepaymentIDFn func(ctx context.Context, repaymentID string) (*domain.Repayment, error)
	SaveFn             func(ctx context.Context, r *domain.Repayment) error
}

func (m *Repo) CreateBatch(ctx context.Context, rs []domain.Repayment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, rs)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Repayment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) GetByRepaymentID(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
	if m.GetByRepaymentIDFn != nil {
		return m.GetByRepaymentIDFn(ctx, repaymentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, r *domain.Repayment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
