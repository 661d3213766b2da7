package discount

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"agendamentos/internal/domain"
)

type DiscountRepository interface {
	Create(ctx context.Context, d *domain.DiscountCode) error
	List(ctx context.Context) ([]domain.DiscountCode, error)
	GetActiveByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
}

type ConsultoriaRepository interface {
	GetActiveByID(ctx context.Context, id string) (*domain.ConsultoriaType, error)
}

type Service struct {
	codes        DiscountRepository
	consultorias ConsultoriaRepository
}

func NewService(codes DiscountRepository, consultorias ConsultoriaRepository) *Service {
	return &Service{codes: codes, consultorias: consultorias}
}

func (s *Service) CreateCode(ctx context.Context, req CreateCodeRequest) (*domain.DiscountCode, error) {
	kind := domain.DiscountType(req.DiscountType)
	if kind == domain.DiscountPercentage && (req.DiscountValue < 1 || req.DiscountValue > 100) {
		return nil, ErrInvalidValue
	}

	validFrom := time.Now()
	if req.ValidFrom != nil {
		validFrom = *req.ValidFrom
	}

	d := &domain.DiscountCode{
		ID:                       uuid.NewString(),
		Code:                     strings.ToUpper(strings.TrimSpace(req.Code)),
		IsActive:                 true,
		ValidFrom:                validFrom,
		ValidUntil:               req.ValidUntil,
		MaxUses:                  req.MaxUses,
		ApplicableConsultoriaIDs: req.ApplicableConsultoriaIDs,
		MinimumPurchaseCents:     req.MinimumPurchaseCents,
		DiscountType:             kind,
		DiscountValue:            req.DiscountValue,
	}

	if err := s.codes.Create(ctx, d); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrCodeExists
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) ListCodes(ctx context.Context) ([]domain.DiscountCode, error) {
	return s.codes.List(ctx)
}

// Preview runs the same checks a booking would, without redeeming a use.
// An unusable code is not an error: the response just carries the full
// price, mirroring the booking flow's silent degradation.
func (s *Service) Preview(ctx context.Context, req PreviewRequest) (*PreviewResponse, error) {
	consultoria, err := s.consultorias.GetActiveByID(ctx, req.ConsultoriaTypeID)
	if err != nil {
		return nil, err
	}
	price := consultoria.PriceCents

	out := &PreviewResponse{
		Valid:           false,
		FinalPriceCents: price,
		FinalPrice:      float64(price) / 100,
	}

	d, err := s.codes.GetActiveByCode(ctx, strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil || d == nil {
		return out, nil
	}
	if !Applies(d, req.ConsultoriaTypeID, price, time.Now()) {
		return out, nil
	}

	amount := Amount(d, price)
	out.Valid = true
	out.Code = d.Code
	out.DiscountType = string(d.DiscountType)
	out.DiscountAmountCents = amount
	out.FinalPriceCents = price - amount
	out.FinalPrice = float64(price-amount) / 100
	return out, nil
}
