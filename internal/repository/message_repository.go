package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kennelhouse/kennel-backend/internal/model"
)

type messageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) List(ctx context.Context) ([]model.Message, error) {
	query := `
		SELECT id, name, email, phone, message, status, created_at
		FROM messages
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Create never sets status; the column keeps whatever default the schema gives it.
func (r *messageRepository) Create(ctx context.Context, msg *model.Message) error {
	query := `
		INSERT INTO messages (name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at
	`
	return r.db.QueryRow(ctx, query, msg.Name, msg.Email, msg.Phone, msg.Message).Scan(&msg.ID, &msg.Status, &msg.CreatedAt)
}
