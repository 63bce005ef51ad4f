package dto

import (
	"errors"
	"trakr/internal/database/models"
)

type CommentInput struct {
	Message *string `json:"message"`
}

var ErrMessageRequired = errors.New("message is required")

func (in *CommentInput) ValidateCreate() error {
	if in.Message == nil || *in.Message == "" {
		return ErrMessageRequired
	}
	return nil
}

func (in *CommentInput) Apply(comment *models.Comment) error {
	if in.Message != nil {
		if *in.Message == "" {
			return ErrMessageRequired
		}
		comment.Message = *in.Message
	}
	return nil
}
