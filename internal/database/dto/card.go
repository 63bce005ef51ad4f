package dto

import (
	"errors"
	"trakr/internal/database/models"
)

// CardInput carries a card create/update body. Pointer fields distinguish
// "field omitted" from "field set to empty": an omitted field is left
// untouched on update, an empty string clears the column.
type CardInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

var ErrTitleRequired = errors.New("title is required")

// ValidateCreate enforces the required fields for a new card.
func (in *CardInput) ValidateCreate() error {
	if in.Title == nil || *in.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

// Apply patches card with the fields present in the input. The title may be
// replaced but never cleared.
func (in *CardInput) Apply(card *models.Card) error {
	if in.Title != nil {
		if *in.Title == "" {
			return ErrTitleRequired
		}
		card.Title = *in.Title
	}
	if in.Description != nil {
		card.Description = emptyAsNull(in.Description)
	}
	if in.Status != nil {
		card.Status = emptyAsNull(in.Status)
	}
	if in.Priority != nil {
		card.Priority = emptyAsNull(in.Priority)
	}
	return nil
}

func emptyAsNull(s *string) *string {
	if *s == "" {
		return nil
	}
	return s
}
