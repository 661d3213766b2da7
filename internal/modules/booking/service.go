package booking

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"agendamentos/internal/domain"
	"agendamentos/internal/modules/discount"
	"agendamentos/internal/pkg/validator"
	"agendamentos/internal/repository"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

type Service struct {
	bookings     BookingRepository
	consultorias ConsultoriaRepository
	discounts    DiscountRepository
	events       EventPublisher
	timezone     string
}

func NewService(
	bookings BookingRepository,
	consultorias ConsultoriaRepository,
	discounts DiscountRepository,
	events EventPublisher,
	timezone string,
) *Service {
	return &Service{
		bookings:     bookings,
		consultorias: consultorias,
		discounts:    discounts,
		events:       events,
		timezone:     timezone,
	}
}

// CreateBooking runs the whole booking workflow: validation, slot check,
// consultoria lookup, lead scoring, discount resolution, and the
// transactional qualification+booking insert. The analytics event at the end
// is fire-and-forget.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*BookingSummary, error) {
	if fields := validateCreateRequest(req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	// Cheap pre-check so the common conflict case answers without touching
	// the write path. The transactional re-check and the partial unique
	// index remain authoritative under concurrency.
	taken, err := s.bookings.SlotTaken(ctx, req.ConsultoriaTypeID, req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	consultoria, err := s.consultorias.GetActiveByID(ctx, req.ConsultoriaTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultoriaNotFound
		}
		return nil, err
	}

	score := LeadScore(req.QualificationData)

	amountCents := consultoria.PriceCents
	var discountAmountCents int64
	var applied *domain.DiscountCode

	// Invalid, expired, or exhausted codes never fail the booking; the
	// request just proceeds at full price.
	if req.DiscountCode != "" {
		applied, discountAmountCents = s.resolveDiscount(ctx, req.DiscountCode, req.ConsultoriaTypeID, amountCents)
	}
	finalCents := amountCents - discountAmountCents

	q := &domain.QualificationResponse{
		ID:                       uuid.NewString(),
		UserID:                   userID,
		SessionID:                uuid.NewString(),
		PrimaryChallenge:         req.QualificationData.Challenge,
		MonthlyBudgetRange:       req.QualificationData.Budget,
		Urgency:                  req.QualificationData.Urgency,
		HasExistingSite:          req.QualificationData.HasWebsite,
		HasActiveCampaigns:       req.QualificationData.HasActiveCampaigns,
		CompanyName:              optional(req.QualificationData.CompanyName),
		CompanySize:              optional(req.QualificationData.CompanySize),
		AdditionalInfo:           optional(req.QualificationData.AdditionalNotes),
		LeadQualityScore:         score,
		RecommendedConsultoriaID: req.ConsultoriaTypeID,
		Status:                   domain.QualificationCompleted,
	}

	b := &domain.Booking{
		ID:                  uuid.NewString(),
		UserID:              userID,
		ConsultoriaTypeID:   req.ConsultoriaTypeID,
		ScheduledDate:       req.ScheduledDate,
		ScheduledTime:       req.ScheduledTime,
		Timezone:            s.timezone,
		DurationMinutes:     consultoria.DurationMinutes,
		BookingStatus:       domain.BookingPendingPayment,
		PaymentStatus:       domain.PaymentPending,
		AmountCents:         amountCents,
		DiscountAmountCents: discountAmountCents,
		FinalAmountCents:    finalCents,
		ParticipantName:     req.ParticipantInfo.Name,
		ParticipantEmail:    req.ParticipantInfo.Email,
		ParticipantPhone:    optional(req.ParticipantInfo.Phone),
		ParticipantCompany:  optional(req.ParticipantInfo.Company),
	}
	if applied != nil {
		code := applied.Code
		b.DiscountCode = &code
	}

	if err := s.bookings.CreateWithQualification(ctx, q, b); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			return nil, ErrSlotTaken
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking" {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if s.events != nil {
		s.events.Publish(domain.AnalyticsEvent{
			EventType: domain.EventBookingCreated,
			UserID:    userID,
			EventData: domain.JSONMap{
				"booking_id":       b.ID,
				"consultoria_type": consultoria.Slug,
				"price_cents":      finalCents,
				"lead_score":       score,
				"has_discount":     applied != nil,
			},
		})
	}

	summary := &BookingSummary{
		ID: b.ID,
		Consultoria: ConsultoriaSummary{
			Name:          consultoria.Name,
			Duration:      consultoria.DurationMinutes,
			OriginalPrice: float64(amountCents) / 100,
			FinalPrice:    float64(finalCents) / 100,
		},
		Schedule: ScheduleSummary{
			Date: b.ScheduledDate,
			Time: b.ScheduledTime,
		},
		Status: string(b.BookingStatus),
	}
	if applied != nil {
		summary.Discount = &DiscountSummary{
			Code:  applied.Code,
			Type:  string(applied.DiscountType),
			Saved: float64(discountAmountCents) / 100,
		}
	}
	return summary, nil
}

// resolveDiscount looks the code up, validates it, and redeems one use via
// an atomic conditional increment. Every failure path degrades to no
// discount.
func (s *Service) resolveDiscount(ctx context.Context, code, consultoriaID string, priceCents int64) (*domain.DiscountCode, int64) {
	d, err := s.discounts.GetActiveByCode(ctx, normalizeCode(code))
	if err != nil || d == nil {
		return nil, 0
	}
	if !discount.Applies(d, consultoriaID, priceCents, time.Now()) {
		return nil, 0
	}

	redeemed, err := s.discounts.Redeem(ctx, d.ID)
	if err != nil || !redeemed {
		return nil, 0
	}
	return d, discount.Amount(d, priceCents)
}

func (s *Service) ListBookings(ctx context.Context, userID int64, f ListFilters) (*BookingList, error) {
	status := ""
	if domain.IsValidBookingStatus(f.Status) {
		status = f.Status
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	rows, total, err := s.bookings.ListByUser(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]BookingListItem, 0, len(rows))
	for _, b := range rows {
		items = append(items, toListItem(b))
	}

	return &BookingList{
		Bookings: items,
		Pagination: Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: total > int64(offset+limit),
		},
	}, nil
}

func (s *Service) GetBooking(ctx context.Context, userID int64, bookingID string) (*BookingListItem, error) {
	b, err := s.bookings.GetByIDForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	item := toListItem(*b)
	return &item, nil
}

func toListItem(b domain.Booking) BookingListItem {
	item := BookingListItem{
		ID:                  b.ID,
		ScheduledDate:       b.ScheduledDate,
		ScheduledTime:       b.ScheduledTime,
		Timezone:            b.Timezone,
		DurationMinutes:     b.DurationMinutes,
		BookingStatus:       string(b.BookingStatus),
		PaymentStatus:       string(b.PaymentStatus),
		AmountCents:         b.AmountCents,
		DiscountCode:        b.DiscountCode,
		DiscountAmountCents: b.DiscountAmountCents,
		FinalAmountCents:    b.FinalAmountCents,
	}
	if b.ConsultoriaType != nil {
		item.Consultoria = &ConsultoriaInfo{
			Name:            b.ConsultoriaType.Name,
			Description:     b.ConsultoriaType.Description,
			DurationMinutes: b.ConsultoriaType.DurationMinutes,
			PriceCents:      b.ConsultoriaType.PriceCents,
		}
	}
	return item
}

func validateCreateRequest(req CreateBookingRequest) map[string]string {
	fields := validator.Validate(req)
	if fields == nil {
		fields = make(map[string]string)
	}

	if req.ScheduledDate != "" {
		if !dateRe.MatchString(req.ScheduledDate) {
			fields["ScheduledDate"] = "date"
		} else if _, err := time.Parse("2006-01-02", req.ScheduledDate); err != nil {
			fields["ScheduledDate"] = "date"
		}
	}
	if req.ScheduledTime != "" && !timeRe.MatchString(req.ScheduledTime) {
		fields["ScheduledTime"] = "time"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
