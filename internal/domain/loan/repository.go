package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate takes a row lock; only meaningful inside a tx.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// GetActiveByOwnerID returns the owner's PENDING or APPROVED loan, if any.
	GetActiveByOwnerID(ctx context.Context, ownerID string) (*Loan, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]Loan, error)
	ListAll(ctx context.Context) ([]Loan, error)
	ListByStatus(ctx context.Context, s Status) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, s Status) (int64, error)
	SumAmountByStatus(ctx context.Context, s Status) (float64, error)
}
