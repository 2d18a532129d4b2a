package loan

import (
	"time"

	domain "loanflow-backend/internal/domain/loan"
	repaymentDomain "loanflow-backend/internal/domain/repayment"
	userDomain "loanflow-backend/internal/domain/user"
	repaymentUC "loanflow-backend/internal/usecase/repayment"
)

type SubmitInput struct {
	OwnerID      string  `json:"-"`
	Amount       float64 `json:"amount"`
	LoanType     string  `json:"loan_type"`
	TenureMonths int     `json:"tenure_months"`
	Purpose      string  `json:"purpose"`
	AnnualIncome float64 `json:"annual_income"`
}

// LoanDTO is the response shape for every loan read. Owner display fields are
// always present, resolved at read time; Repayments is attached only where a
// schedule is part of the response.
type LoanDTO struct {
	LoanID             string                     `json:"loan_id"`
	OwnerID            string                     `json:"-"`
	Amount             float64                    `json:"amount"`
	LoanType           string                     `json:"loan_type"`
	TenureMonths       int                        `json:"tenure_months"`
	Purpose            string                     `json:"purpose"`
	AnnualIncome       float64                    `json:"annual_income"`
	AnnualInterestRate float64                    `json:"annual_interest_rate"`
	Status             string                     `json:"status"`
	AdminRemark        string                     `json:"admin_remark,omitempty"`
	StartDate          time.Time                  `json:"start_date"`
	EMI                *float64                   `json:"emi,omitempty"`
	CustomerName       string                     `json:"customer_name,omitempty"`
	CustomerEmail      string                     `json:"customer_email,omitempty"`
	CreatedAt          time.Time                  `json:"created_at"`
	Repayments         []repaymentUC.RepaymentDTO `json:"repayments,omitempty"`
}

func ToDTO(l *domain.Loan, owner *userDomain.User, reps []repaymentDomain.Repayment) *LoanDTO {
	dto := &LoanDTO{
		LoanID:             l.LoanID,
		OwnerID:            l.OwnerID,
		Amount:             l.Amount,
		LoanType:           l.LoanType,
		TenureMonths:       l.TenureMonths,
		Purpose:            l.Purpose,
		AnnualIncome:       l.AnnualIncome,
		AnnualInterestRate: l.AnnualInterestRate,
		Status:             string(l.Status),
		AdminRemark:        l.AdminRemark,
		StartDate:          l.StartDate,
		EMI:                l.EMI,
		CreatedAt:          l.CreatedAt,
	}
	if owner != nil {
		dto.CustomerName = owner.Name
		dto.CustomerEmail = owner.Email
	}
	if reps != nil {
		dto.Repayments = repaymentUC.ToDTOs(reps)
	}
	return dto
}
