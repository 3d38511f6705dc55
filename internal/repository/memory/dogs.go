package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
)

type dogRepo struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]model.Dog
}

func NewDogRepository() repository.DogRepository {
	return &dogRepo{byID: make(map[int]model.Dog)}
}

func (r *dogRepo) List(_ context.Context) ([]model.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dogs := make([]model.Dog, 0, len(r.byID))
	for _, d := range r.byID {
		dogs = append(dogs, copyDog(d))
	}
	sort.Slice(dogs, func(i, j int) bool { return dogs[i].ID < dogs[j].ID })
	return dogs, nil
}

func (r *dogRepo) Create(_ context.Context, dog *model.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	dog.ID = r.nextID
	r.byID[dog.ID] = copyDog(*dog)
	return nil
}

func (r *dogRepo) Update(_ context.Context, dog *model.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[dog.ID]; ok {
		r.byID[dog.ID] = copyDog(*dog)
	}
	return nil
}

func (r *dogRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func copyDog(d model.Dog) model.Dog {
	out := d
	out.Name = clone(d.Name)
	out.Gender = clone(d.Gender)
	out.Breed = clone(d.Breed)
	out.Achievements = clone(d.Achievements)
	out.Parents = clone(d.Parents)
	out.ImageURL = clone(d.ImageURL)
	out.Titles = append([]string{}, d.Titles...)
	return out
}
