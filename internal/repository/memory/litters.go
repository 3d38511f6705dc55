package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
)

type litterRepo struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]model.Litter
}

func NewLitterRepository() repository.LitterRepository {
	return &litterRepo{byID: make(map[int]model.Litter)}
}

// List orders by born date, newest first. Litters without a date come first,
// matching PostgreSQL's NULLS FIRST default for descending sorts.
func (r *litterRepo) List(_ context.Context) ([]model.Litter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	litters := make([]model.Litter, 0, len(r.byID))
	for _, l := range r.byID {
		litters = append(litters, copyLitter(l))
	}
	sort.SliceStable(litters, func(i, j int) bool {
		a, b := litters[i].BornDate, litters[j].BornDate
		switch {
		case a == nil && b == nil:
			return litters[i].ID < litters[j].ID
		case a == nil:
			return true
		case b == nil:
			return false
		case a.Equal(*b):
			return litters[i].ID < litters[j].ID
		default:
			return a.After(*b)
		}
	})
	return litters, nil
}

func (r *litterRepo) Create(_ context.Context, litter *model.Litter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	litter.ID = r.nextID
	r.byID[litter.ID] = copyLitter(*litter)
	return nil
}

func (r *litterRepo) Update(_ context.Context, litter *model.Litter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[litter.ID]; ok {
		r.byID[litter.ID] = copyLitter(*litter)
	}
	return nil
}

func (r *litterRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func copyLitter(l model.Litter) model.Litter {
	out := l
	out.Name = clone(l.Name)
	out.BornDate = clone(l.BornDate)
	out.Available = clone(l.Available)
	out.Parents = clone(l.Parents)
	out.Description = clone(l.Description)
	out.ImageURL = clone(l.ImageURL)
	return out
}
