package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
)

type galleryRepo struct {
	mu     sync.RWMutex
	now    Clock
	nextID int
	byID   map[int]model.Photo
}

func NewGalleryRepository(now Clock) repository.GalleryRepository {
	return &galleryRepo{now: now, byID: make(map[int]model.Photo)}
}

func (r *galleryRepo) List(_ context.Context) ([]model.Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	photos := make([]model.Photo, 0, len(r.byID))
	for _, p := range r.byID {
		photos = append(photos, p)
	}
	sort.Slice(photos, func(i, j int) bool {
		return newerFirst(photos[i].CreatedAt, photos[j].CreatedAt, photos[i].ID, photos[j].ID)
	})
	return photos, nil
}

func (r *galleryRepo) Create(_ context.Context, photo *model.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := r.now()
	photo.ID = r.nextID
	photo.CreatedAt = &created
	r.byID[photo.ID] = model.Photo{
		ID:          photo.ID,
		ImageURL:    clone(photo.ImageURL),
		Title:       clone(photo.Title),
		Description: clone(photo.Description),
		CreatedAt:   &created,
	}
	return nil
}

func (r *galleryRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}
