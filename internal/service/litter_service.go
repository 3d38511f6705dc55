package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ErrInvalidBornDate is returned when born_date is not a YYYY-MM-DD date.
var ErrInvalidBornDate = errors.New("born_date must be YYYY-MM-DD")

type LitterService interface {
	ListLitters(ctx context.Context) ([]model.Litter, error)
	CreateLitter(ctx context.Context, req model.LitterRequest) (int, error)
	UpdateLitter(ctx context.Context, req model.UpdateLitterRequest) error
	DeleteLitter(ctx context.Context, id int) error
}

type litterService struct {
	litterRepo repository.LitterRepository
	log        zerolog.Logger
}

func NewLitterService(litterRepo repository.LitterRepository, log zerolog.Logger) LitterService {
	return &litterService{
		litterRepo: litterRepo,
		log:        log.With().Str("component", "litter_service").Logger(),
	}
}

func (s *litterService) ListLitters(ctx context.Context) ([]model.Litter, error) {
	litters, err := s.litterRepo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list litters")
		return nil, fmt.Errorf("list litters: %w", err)
	}
	return litters, nil
}

func (s *litterService) CreateLitter(ctx context.Context, req model.LitterRequest) (int, error) {
	litter, err := req.ToLitter()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBornDate, err)
	}
	if err := s.litterRepo.Create(ctx, litter); err != nil {
		s.log.Error().Err(err).Msg("failed to create litter")
		return 0, fmt.Errorf("create litter: %w", err)
	}
	return litter.ID, nil
}

func (s *litterService) UpdateLitter(ctx context.Context, req model.UpdateLitterRequest) error {
	litter, err := req.ToLitter()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBornDate, err)
	}
	litter.ID = req.ID
	if err := s.litterRepo.Update(ctx, litter); err != nil {
		s.log.Error().Err(err).Int("litter_id", req.ID).Msg("failed to update litter")
		return fmt.Errorf("update litter: %w", err)
	}
	return nil
}

func (s *litterService) DeleteLitter(ctx context.Context, id int) error {
	if err := s.litterRepo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int("litter_id", id).Msg("failed to delete litter")
		return fmt.Errorf("delete litter: %w", err)
	}
	return nil
}
