package model

import "time"

// Photo is a gallery photo.
type Photo struct {
	ID          int        `json:"id"`
	ImageURL    *string    `json:"image_url"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	CreatedAt   *time.Time `json:"-"`
}

// PhotoRequest is the payload for adding a gallery photo.
type PhotoRequest struct {
	ImageURL    *string `json:"image_url"`
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}
