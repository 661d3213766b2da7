package catalog

import (
	"context"

	"agendamentos/internal/domain"
)

type ConsultoriaRepository interface {
	GetActiveByID(ctx context.Context, id string) (*domain.ConsultoriaType, error)
	ListActive(ctx context.Context) ([]domain.ConsultoriaType, error)
}

type Service struct {
	consultorias ConsultoriaRepository
}

func NewService(consultorias ConsultoriaRepository) *Service {
	return &Service{consultorias: consultorias}
}

func (s *Service) ListConsultorias(ctx context.Context) ([]domain.ConsultoriaType, error) {
	return s.consultorias.ListActive(ctx)
}

func (s *Service) GetConsultoria(ctx context.Context, id string) (*domain.ConsultoriaType, error) {
	return s.consultorias.GetActiveByID(ctx, id)
}
