package domain

import "time"

type BookingStatus string

const (
	BookingPendingPayment BookingStatus = "pending_payment"
	BookingConfirmed      BookingStatus = "confirmed"
	BookingCompleted      BookingStatus = "completed"
	BookingCancelled      BookingStatus = "cancelled"
	BookingNoShow         BookingStatus = "no_show"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// Booking is the reservation record. Dates and times are kept as the wire
// strings ("2006-01-02", "15:04" or "15:04:05") so ordering matches the
// lexicographic column order used by list queries.
type Booking struct {
	ID                      string        `json:"id" gorm:"primaryKey;type:uuid"`
	UserID                  int64         `json:"user_id" gorm:"index;not null"`
	ConsultoriaTypeID       string        `json:"consultoria_type_id" gorm:"type:uuid;not null"`
	QualificationResponseID string        `json:"qualification_response_id" gorm:"type:uuid;not null"`
	ScheduledDate           string        `json:"scheduled_date" gorm:"not null"`
	ScheduledTime           string        `json:"scheduled_time" gorm:"not null"`
	Timezone                string        `json:"timezone" gorm:"default:America/Sao_Paulo"`
	DurationMinutes         int           `json:"duration_minutes"`
	BookingStatus           BookingStatus `json:"booking_status" gorm:"index;not null"`
	PaymentStatus           PaymentStatus `json:"payment_status" gorm:"not null"`
	AmountCents             int64         `json:"amount_cents"`
	DiscountCode            *string       `json:"discount_code,omitempty"`
	DiscountAmountCents     int64         `json:"discount_amount_cents"`
	FinalAmountCents        int64         `json:"final_amount_cents"`
	ParticipantName         string        `json:"participant_name" gorm:"not null"`
	ParticipantEmail        string        `json:"participant_email" gorm:"not null"`
	ParticipantPhone        *string       `json:"participant_phone,omitempty"`
	ParticipantCompany      *string       `json:"participant_company,omitempty"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`

	ConsultoriaType *ConsultoriaType `json:"consultoria_type,omitempty" gorm:"foreignKey:ConsultoriaTypeID"`
}

func (Booking) TableName() string { return "consultoria_bookings" }

// ActiveStatuses are the booking statuses that hold a slot.
var ActiveStatuses = []BookingStatus{BookingConfirmed, BookingPendingPayment}

func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPendingPayment, BookingConfirmed, BookingCompleted, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}
