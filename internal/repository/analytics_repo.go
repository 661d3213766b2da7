package repository

import (
	"context"

	"gorm.io/gorm"

	"agendamentos/internal/domain"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Insert(ctx context.Context, e *domain.AnalyticsEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AnalyticsRepository) ListRecent(ctx context.Context, limit int) ([]domain.AnalyticsEvent, error) {
	var out []domain.AnalyticsEvent
	tx := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}
