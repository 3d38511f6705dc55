package service

import (
	"context"
	"fmt"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
	"github.com/rs/zerolog"
)

type MessageService interface {
	ListMessages(ctx context.Context) ([]model.Message, error)
	SendMessage(ctx context.Context, req model.MessageRequest) (int, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	log         zerolog.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, log zerolog.Logger) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		log:         log.With().Str("component", "message_service").Logger(),
	}
}

func (s *messageService) ListMessages(ctx context.Context) ([]model.Message, error) {
	messages, err := s.messageRepo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list messages")
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (s *messageService) SendMessage(ctx context.Context, req model.MessageRequest) (int, error) {
	msg := &model.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		s.log.Error().Err(err).Msg("failed to store message")
		return 0, fmt.Errorf("send message: %w", err)
	}
	s.log.Info().Int("message_id", msg.ID).Msg("support message received")
	return msg.ID, nil
}
