package booking

import (
	"context"

	"agendamentos/internal/domain"
)

// BookingRepository defines the data access the booking service needs.
type BookingRepository interface {
	SlotTaken(ctx context.Context, consultoriaTypeID, date, timeStr string) (bool, error)
	CreateWithQualification(ctx context.Context, q *domain.QualificationResponse, b *domain.Booking) error
	GetByIDForUser(ctx context.Context, id string, userID int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, status string, limit, offset int) ([]domain.Booking, int64, error)
}

type ConsultoriaRepository interface {
	GetActiveByID(ctx context.Context, id string) (*domain.ConsultoriaType, error)
}

type DiscountRepository interface {
	GetActiveByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
	Redeem(ctx context.Context, id string) (bool, error)
}

// EventPublisher hands analytics events to a non-blocking dispatcher.
type EventPublisher interface {
	Publish(e domain.AnalyticsEvent)
}
