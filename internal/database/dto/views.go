package dto

import (
	"time"
	"trakr/internal/database/models"
)

// Response views. Each entity has a summary form and a full form so nesting
// is bounded: a card embeds its comments, a comment embeds its card summary
// (which carries no comments), and users appear as name/email only.

const dateLayout = "2006-01-02"

type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CardSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

type CommentSummary struct {
	ID      int64       `json:"id"`
	Message string      `json:"message"`
	Date    string      `json:"date"`
	User    UserSummary `json:"user"`
}

type CardView struct {
	CardSummary
	User     UserSummary      `json:"user"`
	Comments []CommentSummary `json:"comments"`
}

type CommentView struct {
	CommentSummary
	Card CardSummary `json:"card"`
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func NewCardSummary(c models.Card) CardSummary {
	return CardSummary{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Date:        formatDate(c.Date),
		Status:      c.Status,
		Priority:    c.Priority,
	}
}

func NewCommentSummary(cm models.CommentDetail) CommentSummary {
	return CommentSummary{
		ID:      cm.ID,
		Message: cm.Message,
		Date:    formatDate(cm.Date),
		User:    UserSummary{Name: cm.AuthorName, Email: cm.AuthorEmail},
	}
}

func NewCardView(c models.CardDetail, comments []models.CommentDetail) CardView {
	view := CardView{
		CardSummary: NewCardSummary(c.Card),
		User:        UserSummary{Name: c.OwnerName, Email: c.OwnerEmail},
		Comments:    make([]CommentSummary, 0, len(comments)),
	}
	for _, cm := range comments {
		view.Comments = append(view.Comments, NewCommentSummary(cm))
	}
	return view
}

func NewCommentView(cm models.CommentDetail, card models.Card) CommentView {
	return CommentView{
		CommentSummary: NewCommentSummary(cm),
		Card:           NewCardSummary(card),
	}
}
