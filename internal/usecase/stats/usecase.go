package stats

import (
	"context"

	domain "loanflow-backend/internal/domain/loan"
)

type Usecase struct{ loans domain.Repository }

func NewUsecase(loans domain.Repository) *Usecase { return &Usecase{loans: loans} }

type StatsDTO struct {
	TotalApplications    int64   `json:"total_applications"`
	PendingApplications  int64   `json:"pending_applications"`
	ApprovedApplications int64   `json:"approved_applications"`
	TotalDisbursed       float64 `json:"total_disbursed"`
}

// Stats aggregates the admin dashboard counters. TotalDisbursed sums the
// principal of APPROVED loans only.
func (u *Usecase) Stats(ctx context.Context) (*StatsDTO, error) {
	total, err := u.loans.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := u.loans.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	approved, err := u.loans.CountByStatus(ctx, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	disbursed, err := u.loans.SumAmountByStatus(ctx, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	return &StatsDTO{
		TotalApplications:    total,
		PendingApplications:  pending,
		ApprovedApplications: approved,
		TotalDisbursed:       disbursed,
	}, nil
}
