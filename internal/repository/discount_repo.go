package repository

import (
	"context"

	"gorm.io/gorm"

	"agendamentos/internal/domain"
)

type DiscountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) *DiscountRepository {
	return &DiscountRepository{db: db}
}

func (r *DiscountRepository) GetActiveByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	var d domain.DiscountCode
	tx := r.db.WithContext(ctx).Where("code = ? AND is_active = ?", code, true).First(&d)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &d, nil
}

// Redeem increments the usage counter only while the cap has not been
// reached. A false return means a concurrent redemption exhausted the code
// first; the caller degrades to full price.
func (r *DiscountRepository) Redeem(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.DiscountCode{}).
		Where("id = ? AND (max_uses IS NULL OR current_uses < max_uses)", id).
		UpdateColumn("current_uses", gorm.Expr("current_uses + 1"))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *DiscountRepository) Create(ctx context.Context, d *domain.DiscountCode) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DiscountRepository) List(ctx context.Context) ([]domain.DiscountCode, error) {
	var out []domain.DiscountCode
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}
