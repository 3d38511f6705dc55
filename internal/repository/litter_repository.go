package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kennelhouse/kennel-backend/internal/model"
)

type litterRepository struct {
	db *pgxpool.Pool
}

func NewLitterRepository(db *pgxpool.Pool) LitterRepository {
	return &litterRepository{db: db}
}

func (r *litterRepository) List(ctx context.Context) ([]model.Litter, error) {
	query := `
		SELECT id, name, born_date, available, parents, description, image_url
		FROM litters
		ORDER BY born_date DESC, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	litters := []model.Litter{}
	for rows.Next() {
		var l model.Litter
		if err := rows.Scan(&l.ID, &l.Name, &l.BornDate, &l.Available, &l.Parents, &l.Description, &l.ImageURL); err != nil {
			return nil, err
		}
		litters = append(litters, l)
	}
	return litters, rows.Err()
}

func (r *litterRepository) Create(ctx context.Context, litter *model.Litter) error {
	query := `
		INSERT INTO litters (name, born_date, available, parents, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		litter.Name, litter.BornDate, litter.Available, litter.Parents, litter.Description, litter.ImageURL,
	).Scan(&litter.ID)
}

func (r *litterRepository) Update(ctx context.Context, litter *model.Litter) error {
	query := `
		UPDATE litters
		SET name = $1, born_date = $2, available = $3, parents = $4,
		    description = $5, image_url = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query,
		litter.Name, litter.BornDate, litter.Available, litter.Parents, litter.Description, litter.ImageURL, litter.ID,
	)
	return err
}

func (r *litterRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM litters WHERE id = $1`, id)
	return err
}
