package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kennelhouse/kennel-backend/internal/model"
)

type dogRepository struct {
	db *pgxpool.Pool
}

func NewDogRepository(db *pgxpool.Pool) DogRepository {
	return &dogRepository{db: db}
}

func (r *dogRepository) List(ctx context.Context) ([]model.Dog, error) {
	query := `SELECT id, name, gender, breed, titles, achievements, parents, image_url FROM dogs ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dogs := []model.Dog{}
	for rows.Next() {
		var d model.Dog
		if err := rows.Scan(&d.ID, &d.Name, &d.Gender, &d.Breed, &d.Titles, &d.Achievements, &d.Parents, &d.ImageURL); err != nil {
			return nil, err
		}
		if d.Titles == nil {
			d.Titles = []string{}
		}
		dogs = append(dogs, d)
	}
	return dogs, rows.Err()
}

func (r *dogRepository) Create(ctx context.Context, dog *model.Dog) error {
	query := `
		INSERT INTO dogs (name, gender, breed, titles, achievements, parents, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		dog.Name, dog.Gender, dog.Breed, titles(dog.Titles), dog.Achievements, dog.Parents, dog.ImageURL,
	).Scan(&dog.ID)
}

// Update overwrites every column. A missing id is not an error.
func (r *dogRepository) Update(ctx context.Context, dog *model.Dog) error {
	query := `
		UPDATE dogs
		SET name = $1, gender = $2, breed = $3, titles = $4,
		    achievements = $5, parents = $6, image_url = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query,
		dog.Name, dog.Gender, dog.Breed, titles(dog.Titles), dog.Achievements, dog.Parents, dog.ImageURL, dog.ID,
	)
	return err
}

func (r *dogRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	return err
}

// titles keeps a nil slice from being written as NULL.
func titles(t []string) []string {
	if t == nil {
		return []string{}
	}
	return t
}
