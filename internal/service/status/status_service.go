package status

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siliguripickdrop/backend/internal/domain"
	"github.com/siliguripickdrop/backend/internal/repository"
)

type StatusUseCase interface {
	Create(ctx context.Context, clientName string) (*domain.StatusCheck, error)
	List(ctx context.Context) ([]domain.StatusCheck, error)
}

type StatusService struct {
	checks repository.StatusCheckRepository
}

func NewStatusService(checks repository.StatusCheckRepository) *StatusService {
	return &StatusService{checks: checks}
}

func (s *StatusService) Create(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	if clientName == "" {
		return nil, domain.ValidationError{Field: "client_name", Msg: "is required"}
	}

	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.checks.Insert(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]domain.StatusCheck, error) {
	return s.checks.FindAll(ctx)
}

var _ StatusUseCase = (*StatusService)(nil)
