package models

import "time"

type Comment struct {
	ID      int64     `json:"id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	UserID  int64     `json:"user_id"`
	CardID  int64     `json:"card_id"`
}

// CommentDetail is a comment row joined with its author's public columns.
type CommentDetail struct {
	Comment
	AuthorName  string `json:"-"`
	AuthorEmail string `json:"-"`
}
