package mysql

import (
	"context"
	"errors"

	repaymentDomain "loanflow-backend/internal/domain/repayment"

	"gorm.io/gorm"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository {
	return &RepaymentRepository{db: db}
}

func (r *RepaymentRepository) CreateBatch(ctx context.Context, rs []repaymentDomain.Repayment) error {
	if len(rs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rs).Error
}

func (r *RepaymentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]repaymentDomain.Repayment, error) {
	var out []repaymentDomain.Repayment
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *RepaymentRepository) GetByRepaymentID(ctx context.Context, repaymentID string) (*repaymentDomain.Repayment, error) {
	var out repaymentDomain.Repayment
	res := r.db.WithContext(ctx).Where("repayment_id = ?", repaymentID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, repaymentDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *RepaymentRepository) Save(ctx context.Context, rp *repaymentDomain.Repayment) error {
	return r.db.WithContext(ctx).Save(rp).Error
}
