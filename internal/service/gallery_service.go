package service

import (
	"context"
	"fmt"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
	"github.com/rs/zerolog"
)

type GalleryService interface {
	ListPhotos(ctx context.Context) ([]model.Photo, error)
	AddPhoto(ctx context.Context, req model.PhotoRequest) (int, error)
	DeletePhoto(ctx context.Context, id int) error
}

type galleryService struct {
	galleryRepo repository.GalleryRepository
	log         zerolog.Logger
}

func NewGalleryService(galleryRepo repository.GalleryRepository, log zerolog.Logger) GalleryService {
	return &galleryService{
		galleryRepo: galleryRepo,
		log:         log.With().Str("component", "gallery_service").Logger(),
	}
}

func (s *galleryService) ListPhotos(ctx context.Context) ([]model.Photo, error) {
	photos, err := s.galleryRepo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list photos")
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}

func (s *galleryService) AddPhoto(ctx context.Context, req model.PhotoRequest) (int, error) {
	photo := &model.Photo{
		ImageURL:    req.ImageURL,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.galleryRepo.Create(ctx, photo); err != nil {
		s.log.Error().Err(err).Msg("failed to add photo")
		return 0, fmt.Errorf("add photo: %w", err)
	}
	return photo.ID, nil
}

func (s *galleryService) DeletePhoto(ctx context.Context, id int) error {
	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int("photo_id", id).Msg("failed to delete photo")
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
