// Package memory provides in-process repositories for local runs without
// PostgreSQL and for handler tests. Ordering mirrors the SQL repositories.
package memory

import (
	"time"

	"github.com/kennelhouse/kennel-backend/internal/repository"
)

// Clock returns the current time; tests substitute a fixed sequence.
type Clock func() time.Time

// New returns a full set of empty in-memory repositories. A nil clock uses
// time.Now truncated to the microsecond, which is what PostgreSQL keeps.
func New(now Clock) *repository.Repositories {
	if now == nil {
		now = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
	}
	return &repository.Repositories{
		Users:    NewUserRepository(),
		Dogs:     NewDogRepository(),
		Litters:  NewLitterRepository(),
		Gallery:  NewGalleryRepository(now),
		Messages: NewMessageRepository(now),
	}
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
