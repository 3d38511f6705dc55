package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kennelhouse/kennel-backend/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// UserRepository reads site accounts.
type UserRepository interface {
	GetByCredentials(ctx context.Context, username, passwordHash string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// DogRepository persists dogs.
type DogRepository interface {
	List(ctx context.Context) ([]model.Dog, error)
	Create(ctx context.Context, dog *model.Dog) error
	Update(ctx context.Context, dog *model.Dog) error
	Delete(ctx context.Context, id int) error
}

// LitterRepository persists litters.
type LitterRepository interface {
	List(ctx context.Context) ([]model.Litter, error)
	Create(ctx context.Context, litter *model.Litter) error
	Update(ctx context.Context, litter *model.Litter) error
	Delete(ctx context.Context, id int) error
}

// GalleryRepository persists gallery photos.
type GalleryRepository interface {
	List(ctx context.Context) ([]model.Photo, error)
	Create(ctx context.Context, photo *model.Photo) error
	Delete(ctx context.Context, id int) error
}

// MessageRepository persists support messages.
type MessageRepository interface {
	List(ctx context.Context) ([]model.Message, error)
	Create(ctx context.Context, msg *model.Message) error
}

// Repositories bundles one repository per table.
type Repositories struct {
	Users    UserRepository
	Dogs     DogRepository
	Litters  LitterRepository
	Gallery  GalleryRepository
	Messages MessageRepository
}

// NewPostgres wires every repository to the given pool.
func NewPostgres(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(pool),
		Dogs:     NewDogRepository(pool),
		Litters:  NewLitterRepository(pool),
		Gallery:  NewGalleryRepository(pool),
		Messages: NewMessageRepository(pool),
	}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
