package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agendamentos/internal/domain"
)

// ErrSlotConflict is returned when the transactional re-check finds the
// requested slot already held by another booking.
var ErrSlotConflict = errors.New("slot already booked")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) SlotTaken(ctx context.Context, consultoriaTypeID, date, timeStr string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("consultoria_type_id = ? AND scheduled_date = ? AND scheduled_time = ? AND booking_status IN ?",
			consultoriaTypeID, date, timeStr, domain.ActiveStatuses).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// CreateWithQualification inserts the qualification response and the booking
// in one transaction, re-checking the slot inside it. Either both rows land
// or neither does, so a failed booking insert cannot orphan the
// qualification row.
func (r *BookingRepository) CreateWithQualification(ctx context.Context, q *domain.QualificationResponse, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&domain.Booking{}).
			Where("consultoria_type_id = ? AND scheduled_date = ? AND scheduled_time = ? AND booking_status IN ?",
				b.ConsultoriaTypeID, b.ScheduledDate, b.ScheduledTime, domain.ActiveStatuses).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrSlotConflict
		}

		if err := tx.Create(q).Error; err != nil {
			return err
		}

		b.QualificationResponseID = q.ID
		return tx.Create(b).Error
	})
}

func (r *BookingRepository) GetByIDForUser(ctx context.Context, id string, userID int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("ConsultoriaType").
		Where("id = ? AND user_id = ?", id, userID).
		First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, status string, limit, offset int) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("booking_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Booking
	tx := q.
		Preload("ConsultoriaType").
		Order("scheduled_date DESC").
		Order("scheduled_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&out)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}
	return out, total, nil
}
