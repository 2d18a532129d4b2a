package approval

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "loanflow-backend/internal/domain/loan"
	repaymentDomain "loanflow-backend/internal/domain/repayment"
	"loanflow-backend/internal/domain/uow"
	userDomain "loanflow-backend/internal/domain/user"
	loanUC "loanflow-backend/internal/usecase/loan"
	"loanflow-backend/pkg/emi"
	"loanflow-backend/pkg/id"

	"github.com/shopspring/decimal"
)

// Usecase owns the PENDING -> APPROVED/REJECTED transitions. Both run inside
// a per-loan row-lock transaction, so two concurrent decisions on the same
// loan cannot both succeed and a schedule is generated at most once.
type Usecase struct {
	tx   uow.UnitOfWork
	mode emi.Mode
}

func NewUsecase(tx uow.UnitOfWork, mode emi.Mode) *Usecase {
	return &Usecase{tx: tx, mode: mode}
}

// Approve moves a pending loan to APPROVED: sets the remark, anchors the
// schedule at today's date, computes the EMI and generates the repayment
// schedule if one does not exist yet. An existing schedule is reused
// unchanged.
func (u *Usecase) Approve(ctx context.Context, loanID, remark string) (*loanUC.LoanDTO, error) {
	var dto *loanUC.LoanDTO

	err := u.tx.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return fmt.Errorf("%w: cannot approve a loan in status %s", domain.ErrInvalidTransition, l.Status)
		}

		l.Status = domain.StatusApproved
		l.AdminRemark = remark
		l.StartDate = today()

		installment, err := emi.ComputeInstallment(decimal.NewFromFloat(l.Amount), l.AnnualInterestRate, l.TenureMonths)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
		}
		amount := installment.InexactFloat64()
		l.EMI = &amount

		reps, err := r.Repayments.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if len(reps) == 0 {
			schedule, err := emi.GenerateSchedule(decimal.NewFromFloat(l.Amount), l.AnnualInterestRate, l.TenureMonths, l.StartDate, u.mode)
			if err != nil {
				return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
			}
			reps = make([]repaymentDomain.Repayment, 0, len(schedule))
			for _, in := range schedule {
				reps = append(reps, repaymentDomain.Repayment{
					RepaymentID: id.New(),
					LoanID:      l.ID,
					DueDate:     in.DueDate,
					Principal:   in.Principal.InexactFloat64(),
					Interest:    in.Interest.InexactFloat64(),
					Status:      repaymentDomain.StatusPending,
				})
			}
			if err := r.Repayments.CreateBatch(ctx, reps); err != nil {
				return err
			}
		}

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		owner, err := ownerOf(ctx, r, l.OwnerID)
		if err != nil {
			return err
		}
		dto = loanUC.ToDTO(l, owner, reps)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Reject moves a pending loan to REJECTED. No schedule is generated and the
// EMI stays unset.
func (u *Usecase) Reject(ctx context.Context, loanID, remark string) (*loanUC.LoanDTO, error) {
	var dto *loanUC.LoanDTO

	err := u.tx.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return fmt.Errorf("%w: cannot reject a loan in status %s", domain.ErrInvalidTransition, l.Status)
		}

		l.Status = domain.StatusRejected
		l.AdminRemark = remark
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		owner, err := ownerOf(ctx, r, l.OwnerID)
		if err != nil {
			return err
		}
		dto = loanUC.ToDTO(l, owner, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ownerOf resolves display fields; a missing user record is tolerated rather
// than failing the decision.
func ownerOf(ctx context.Context, r uow.Repos, ownerID string) (*userDomain.User, error) {
	owner, err := r.Users.GetByUserID(ctx, ownerID)
	if errors.Is(err, userDomain.ErrNotFound) {
		return nil, nil
	}
	return owner, err
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
