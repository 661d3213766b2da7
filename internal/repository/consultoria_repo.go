package repository

import (
	"context"

	"gorm.io/gorm"

	"agendamentos/internal/domain"
)

type ConsultoriaRepository struct {
	db *gorm.DB
}

func NewConsultoriaRepository(db *gorm.DB) *ConsultoriaRepository {
	return &ConsultoriaRepository{db: db}
}

func (r *ConsultoriaRepository) GetActiveByID(ctx context.Context, id string) (*domain.ConsultoriaType, error) {
	var ct domain.ConsultoriaType
	tx := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&ct)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &ct, nil
}

func (r *ConsultoriaRepository) ListActive(ctx context.Context) ([]domain.ConsultoriaType, error) {
	var out []domain.ConsultoriaType
	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price_cents ASC").
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}
