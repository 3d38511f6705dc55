package service

import (
	"context"
	"fmt"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
	"github.com/rs/zerolog"
)

type DogService interface {
	ListDogs(ctx context.Context) ([]model.Dog, error)
	CreateDog(ctx context.Context, req model.DogRequest) (int, error)
	UpdateDog(ctx context.Context, req model.UpdateDogRequest) error
	DeleteDog(ctx context.Context, id int) error
}

type dogService struct {
	dogRepo repository.DogRepository
	log     zerolog.Logger
}

func NewDogService(dogRepo repository.DogRepository, log zerolog.Logger) DogService {
	return &dogService{
		dogRepo: dogRepo,
		log:     log.With().Str("component", "dog_service").Logger(),
	}
}

func (s *dogService) ListDogs(ctx context.Context) ([]model.Dog, error) {
	dogs, err := s.dogRepo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list dogs")
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	return dogs, nil
}

func (s *dogService) CreateDog(ctx context.Context, req model.DogRequest) (int, error) {
	dog := req.ToDog()
	if err := s.dogRepo.Create(ctx, dog); err != nil {
		s.log.Error().Err(err).Msg("failed to create dog")
		return 0, fmt.Errorf("create dog: %w", err)
	}
	return dog.ID, nil
}

// UpdateDog overwrites the whole row; there is no existence check.
func (s *dogService) UpdateDog(ctx context.Context, req model.UpdateDogRequest) error {
	dog := req.ToDog()
	dog.ID = req.ID
	if err := s.dogRepo.Update(ctx, dog); err != nil {
		s.log.Error().Err(err).Int("dog_id", req.ID).Msg("failed to update dog")
		return fmt.Errorf("update dog: %w", err)
	}
	return nil
}

func (s *dogService) DeleteDog(ctx context.Context, id int) error {
	if err := s.dogRepo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int("dog_id", id).Msg("failed to delete dog")
		return fmt.Errorf("delete dog: %w", err)
	}
	return nil
}
