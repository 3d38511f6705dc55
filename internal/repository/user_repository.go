package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kennelhouse/kennel-backend/internal/model"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepository{db: db}
}

// GetByCredentials matches on username and stored digest in one statement.
func (r *userRepository) GetByCredentials(ctx context.Context, username, passwordHash string) (*model.User, error) {
	query := `SELECT id, username, role FROM users WHERE username = $1 AND password_hash = $2`
	u := &model.User{}
	err := r.db.QueryRow(ctx, query, username, passwordHash).Scan(&u.ID, &u.Username, &u.Role)
	if err != nil {
		return nil, notFound(err)
	}
	u.PasswordHash = passwordHash
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, user.Username, user.PasswordHash, user.Role).Scan(&user.ID)
}
