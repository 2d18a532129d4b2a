package repayment

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

// Repayment is one installment of an approved loan's schedule. The set of
// installments for a loan is written once, at approval; afterwards only
// Status may change, and only PENDING -> PAID.
type Repayment struct {
	ID          uint64         `gorm:"primaryKey;column:id" json:"-"`
	RepaymentID string         `gorm:"size:32;uniqueIndex:ux_repayments_repayment_id" json:"repayment_id"`
	// FK to loans.id (numeric).
	LoanID    uint64         `gorm:"not null;index:idx_repayments_loan" json:"-"`
	DueDate   time.Time      `gorm:"type:date;not null" json:"due_date"`
	Principal float64        `gorm:"type:decimal(18,2)" json:"principal"`
	Interest  float64        `gorm:"type:decimal(18,2)" json:"interest"`
	Status    Status         `gorm:"type:enum('PENDING','PAID');default:'PENDING'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Repayment) TableName() string { return "repayments" }
