package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
)

type messageRepo struct {
	mu     sync.RWMutex
	now    Clock
	nextID int
	byID   map[int]model.Message
}

func NewMessageRepository(now Clock) repository.MessageRepository {
	return &messageRepo{now: now, byID: make(map[int]model.Message)}
}

func (r *messageRepo) List(_ context.Context) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]model.Message, 0, len(r.byID))
	for _, m := range r.byID {
		messages = append(messages, m)
	}
	sort.Slice(messages, func(i, j int) bool {
		return newerFirst(messages[i].CreatedAt, messages[j].CreatedAt, messages[i].ID, messages[j].ID)
	})
	return messages, nil
}

func (r *messageRepo) Create(_ context.Context, msg *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := r.now()
	msg.ID = r.nextID
	status := model.MessageStatusNew
	msg.Status = &status
	msg.CreatedAt = &created
	r.byID[msg.ID] = model.Message{
		ID:        msg.ID,
		Status:    clone(&status),
		Name:      clone(msg.Name),
		Email:     clone(msg.Email),
		Phone:     clone(msg.Phone),
		Message:   clone(msg.Message),
		CreatedAt: &created,
	}
	return nil
}

// newerFirst orders by timestamp descending with NULLs first, then id descending.
func newerFirst(a, b *time.Time, idA, idB int) bool {
	switch {
	case a == nil && b == nil:
		return idA > idB
	case a == nil:
		return true
	case b == nil:
		return false
	case a.Equal(*b):
		return idA > idB
	default:
		return a.After(*b)
	}
}
