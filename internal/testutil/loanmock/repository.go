package loanmock

import (
	"context"

	domain "loanflow-backend/internal/domain/loan"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository. Fill in the
// function fields a test needs; unfilled lookups report ErrNotFound and
// unfilled writes succeed.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetActiveByOwnerIDFn   func(ctx context.Context, ownerID string) (*domain.Loan, error)
	ListByOwnerIDFn        func(ctx context.Context, ownerID string) ([]domain.Loan, error)
	ListAllFn              func(ctx context.Context) ([]domain.Loan, error)
	ListByStatusFn         func(ctx context.Context, s domain.Status) ([]domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	CountFn                func(ctx context.Context) (int64, error)
	CountByStatusFn        func(ctx context.Context, s domain.Status) (int64, error)
	SumAmountByStatusFn    func(ctx context.Context, s domain.Status) (float64, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetActiveByOwnerID(ctx context.Context, ownerID string) (*domain.Loan, error) {
	if m.GetActiveByOwnerIDFn != nil {
		return m.GetActiveByOwnerIDFn(ctx, ownerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByOwnerID(ctx context.Context, ownerID string) ([]domain.Loan, error) {
	if m.ListByOwnerIDFn != nil {
		return m.ListByOwnerIDFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountByStatus(ctx context.Context, s domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, s)
	}
	return 0, nil
}

func (m *Repo) SumAmountByStatus(ctx context.Context, s domain.Status) (float64, error) {
	if m.SumAmountByStatusFn != nil {
		return m.SumAmountByStatusFn(ctx, s)
	}
	return 0, nil
}
