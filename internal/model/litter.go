package model

import (
	"fmt"
	"time"
)

// Litter is a litter of puppies.
type Litter struct {
	ID          int
	Name        *string
	BornDate    *time.Time
	Available   *bool
	Parents     *string
	Description *string
	ImageURL    *string
}

// LitterView is the JSON rendering of a Litter.
type LitterView struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	BornDate    string  `json:"born_date"`
	Available   *bool   `json:"available"`
	Parents     *string `json:"parents"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// View renders the litter with its birth date as DD.MM.YYYY.
func (l Litter) View() LitterView {
	return LitterView{
		ID:          l.ID,
		Name:        l.Name,
		BornDate:    FormatDate(l.BornDate),
		Available:   l.Available,
		Parents:     l.Parents,
		Description: l.Description,
		ImageURL:    l.ImageURL,
	}
}

// LitterRequest is the payload for creating a litter. BornDate uses YYYY-MM-DD.
type LitterRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	BornDate    *string `json:"born_date" binding:"omitempty,datetime=2006-01-02"`
	Available   *bool   `json:"available"`
	Parents     *string `json:"parents"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// UpdateLitterRequest replaces every field of the litter identified by ID.
type UpdateLitterRequest struct {
	ID int `json:"id" binding:"required,gt=0"`
	LitterRequest
}

// ToLitter builds a Litter from the request. An empty born_date is stored as NULL.
func (r LitterRequest) ToLitter() (*Litter, error) {
	l := &Litter{
		Name:        r.Name,
		Available:   r.Available,
		Parents:     r.Parents,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
	if r.BornDate != nil && *r.BornDate != "" {
		t, err := time.Parse(InputDateLayout, *r.BornDate)
		if err != nil {
			return nil, fmt.Errorf("parse born_date: %w", err)
		}
		l.BornDate = &t
	}
	return l, nil
}
