package model

import "time"

// MessageStatusNew is the status the store assigns to fresh messages.
const MessageStatusNew = "new"

// Message is a support message left through the contact form. Status is
// maintained outside this service and is only ever read here.
type Message struct {
	ID        int
	Name      *string
	Email     *string
	Phone     *string
	Message   *string
	Status    *string
	CreatedAt *time.Time
}

// MessageView is the JSON rendering of a Message.
type MessageView struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Message   *string `json:"message"`
	Status    *string `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// View renders the message with created_at as DD.MM.YYYY HH:MM.
func (m Message) View() MessageView {
	return MessageView{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: FormatDateTime(m.CreatedAt),
	}
}

// MessageRequest is the payload for leaving a support message.
type MessageRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Email   *string `json:"email" binding:"omitempty,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Message *string `json:"message"`
}
