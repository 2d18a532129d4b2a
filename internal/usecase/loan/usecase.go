package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "loanflow-backend/internal/domain/loan"
	repaymentDomain "loanflow-backend/internal/domain/repayment"
	"loanflow-backend/internal/domain/uow"
	userDomain "loanflow-backend/internal/domain/user"
	"loanflow-backend/pkg/id"
)

type Usecase struct {
	repo       domain.Repository
	repayments repaymentDomain.Repository
	users      userDomain.Repository
	tx         uow.UnitOfWork
	policyRate float64
}

// NewUsecase wires the loan lifecycle manager. policyRate is the fixed annual
// interest rate (percent) applied to every new application; applicants never
// choose their rate.
func NewUsecase(repo domain.Repository, repayments repaymentDomain.Repository, users userDomain.Repository, tx uow.UnitOfWork, policyRate float64) *Usecase {
	return &Usecase{repo: repo, repayments: repayments, users: users, tx: tx, policyRate: policyRate}
}

// Submit creates a new PENDING application for the owner. At most one
// PENDING or APPROVED loan may exist per owner; rejected loans do not count,
// so reapplying after a rejection is allowed. The duplicate check and the
// insert run in one transaction.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*LoanDTO, error) {
	if in.OwnerID == "" {
		return nil, fmt.Errorf("%w: missing owner", domain.ErrInvalidArgument)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidArgument)
	}
	if in.TenureMonths <= 0 {
		return nil, fmt.Errorf("%w: tenure must be positive", domain.ErrInvalidArgument)
	}
	if in.AnnualIncome <= 0 {
		return nil, fmt.Errorf("%w: annual income must be positive", domain.ErrInvalidArgument)
	}
	if in.LoanType == "" || in.Purpose == "" {
		return nil, fmt.Errorf("%w: loan type and purpose are required", domain.ErrInvalidArgument)
	}

	var dto *LoanDTO
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		// Locking the owner's user row serializes submissions per owner, so
		// the active-loan check below cannot race a concurrent insert.
		owner, err := r.Users.GetByUserIDForUpdate(ctx, in.OwnerID)
		if err != nil {
			return err
		}

		_, err = r.Loans.GetActiveByOwnerID(ctx, in.OwnerID)
		switch {
		case err == nil:
			return domain.ErrDuplicateActiveApplication
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		l := &domain.Loan{
			LoanID:             id.New(),
			OwnerID:            in.OwnerID,
			Amount:             in.Amount,
			LoanType:           in.LoanType,
			TenureMonths:       in.TenureMonths,
			Purpose:            in.Purpose,
			AnnualIncome:       in.AnnualIncome,
			AnnualInterestRate: u.policyRate,
			Status:             domain.StatusPending,
			// informational until approval re-anchors the schedule
			StartDate: time.Now().UTC(),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		dto = ToDTO(l, owner, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// GetByID returns a loan with its schedule and owner display fields.
func (u *Usecase) GetByID(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	reps, err := u.repayments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	owner, err := u.owner(ctx, l.OwnerID)
	if err != nil {
		return nil, err
	}
	return ToDTO(l, owner, reps), nil
}

// ListByOwner returns the owner's loans, newest first, without schedules.
func (u *Usecase) ListByOwner(ctx context.Context, ownerID string) ([]LoanDTO, error) {
	ls, err := u.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	owner, err := u.owner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *ToDTO(&ls[i], owner, nil))
	}
	return out, nil
}

// ListAll returns every loan, optionally filtered by status.
func (u *Usecase) ListAll(ctx context.Context, status domain.Status) ([]LoanDTO, error) {
	var (
		ls  []domain.Loan
		err error
	)
	if status == "" {
		ls, err = u.repo.ListAll(ctx)
	} else {
		ls, err = u.repo.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*userDomain.User)
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		owner, ok := owners[ls[i].OwnerID]
		if !ok {
			if owner, err = u.owner(ctx, ls[i].OwnerID); err != nil {
				return nil, err
			}
			owners[ls[i].OwnerID] = owner
		}
		out = append(out, *ToDTO(&ls[i], owner, nil))
	}
	return out, nil
}

// owner resolves display fields; a missing user record is tolerated rather
// than failing the whole read.
func (u *Usecase) owner(ctx context.Context, ownerID string) (*userDomain.User, error) {
	owner, err := u.users.GetByUserID(ctx, ownerID)
	if errors.Is(err, userDomain.ErrNotFound) {
		return nil, nil
	}
	return owner, err
}
