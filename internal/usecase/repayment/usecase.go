package repayment

import (
	"context"
	"time"

	loanDomain "loanflow-backend/internal/domain/loan"
	domain "loanflow-backend/internal/domain/repayment"
)

type Usecase struct {
	loans loanDomain.Repository
	repo  domain.Repository
}

func NewUsecase(loans loanDomain.Repository, repo domain.Repository) *Usecase {
	return &Usecase{loans: loans, repo: repo}
}

type RepaymentDTO struct {
	RepaymentID string    `json:"repayment_id"`
	DueDate     time.Time `json:"due_date"`
	Principal   float64   `json:"principal"`
	Interest    float64   `json:"interest"`
	Status      string    `json:"status"`
}

func ToDTO(r *domain.Repayment) *RepaymentDTO {
	return &RepaymentDTO{
		RepaymentID: r.RepaymentID,
		DueDate:     r.DueDate,
		Principal:   r.Principal,
		Interest:    r.Interest,
		Status:      string(r.Status),
	}
}

func ToDTOs(rs []domain.Repayment) []RepaymentDTO {
	out := make([]RepaymentDTO, 0, len(rs))
	for i := range rs {
		out = append(out, *ToDTO(&rs[i]))
	}
	return out
}

// ListByLoan returns the loan's schedule ordered by due date. An approved
// loan has exactly tenure-months entries; pending and rejected loans have
// none.
func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]RepaymentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	rs, err := u.repo.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return ToDTOs(rs), nil
}

// MarkPaid transitions an installment PENDING -> PAID. Marking an installment
// that is already PAID is a no-op success.
func (u *Usecase) MarkPaid(ctx context.Context, repaymentID string) (*RepaymentDTO, error) {
	r, err := u.repo.GetByRepaymentID(ctx, repaymentID)
	if err != nil {
		return nil, err
	}
	if r.Status == domain.StatusPaid {
		return ToDTO(r), nil
	}
	r.Status = domain.StatusPaid
	if err := u.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	return ToDTO(r), nil
}
