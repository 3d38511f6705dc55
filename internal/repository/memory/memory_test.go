package memory

import (
	"context"
	"testing"
	"time"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredRowsAreCopies(t *testing.T) {
	repo := NewDogRepository()
	ctx := context.Background()

	name := "Rex"
	dog := &model.Dog{Name: &name, Titles: []string{"CH RUS"}}
	require.NoError(t, repo.Create(ctx, dog))

	name = "Changed"
	dog.Titles[0] = "Changed"

	dogs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, dogs, 1)
	assert.Equal(t, "Rex", *dogs[0].Name)
	assert.Equal(t, []string{"CH RUS"}, dogs[0].Titles)

	*dogs[0].Name = "Mutated"
	dogs, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rex", *dogs[0].Name)
}

func TestUsersLookupByDigest(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "breeder", PasswordHash: "abc", Role: model.RoleAdmin}))
	assert.Error(t, repo.Create(ctx, &model.User{Username: "breeder", PasswordHash: "def"}))

	u, err := repo.GetByCredentials(ctx, "breeder", "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	_, err = repo.GetByCredentials(ctx, "breeder", "def")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNewerFirstTieBreaksOnID(t *testing.T) {
	fixed := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewGalleryRepository(func() time.Time { return fixed })
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &model.Photo{}))
	}

	photos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{photos[0].ID, photos[1].ID, photos[2].ID})
}
