package loan

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Terminal reports whether no further lifecycle transitions are allowed.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

type Loan struct {
	ID                 uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID             string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	OwnerID            string         `gorm:"size:32;index:idx_loans_owner_status" json:"owner_id"`
	Amount             float64        `gorm:"type:decimal(18,2)" json:"amount"`
	LoanType           string         `gorm:"size:64" json:"loan_type"`
	TenureMonths       int            `json:"tenure_months"`
	Purpose            string         `gorm:"type:text" json:"purpose"`
	AnnualIncome       float64        `gorm:"type:decimal(18,2)" json:"annual_income"`
	AnnualInterestRate float64        `gorm:"type:decimal(6,3)" json:"annual_interest_rate"`
	Status             Status         `gorm:"type:enum('PENDING','APPROVED','REJECTED');default:'PENDING';index:idx_loans_owner_status" json:"status"`
	AdminRemark        string         `gorm:"type:text" json:"admin_remark,omitempty"`
	StartDate          time.Time      `gorm:"type:date" json:"start_date"`
	// EMI stays nil until the loan is approved.
	EMI       *float64       `gorm:"type:decimal(18,2)" json:"emi,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
