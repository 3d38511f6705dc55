package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kennelhouse/kennel-backend/internal/model"
)

type galleryRepository struct {
	db *pgxpool.Pool
}

func NewGalleryRepository(db *pgxpool.Pool) GalleryRepository {
	return &galleryRepository{db: db}
}

// List returns the newest photos first.
func (r *galleryRepository) List(ctx context.Context) ([]model.Photo, error) {
	query := `SELECT id, image_url, title, description, created_at FROM gallery ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := []model.Photo{}
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.ImageURL, &p.Title, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *galleryRepository) Create(ctx context.Context, photo *model.Photo) error {
	query := `
		INSERT INTO gallery (image_url, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, photo.ImageURL, photo.Title, photo.Description).Scan(&photo.ID, &photo.CreatedAt)
}

func (r *galleryRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	return err
}
