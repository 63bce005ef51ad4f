package models

import "time"

type Card struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	Status      *string   `json:"status"`
	Priority    *string   `json:"priority"`
	UserID      int64     `json:"user_id"`
}

// CardDetail is a card row joined with its owner's public columns.
type CardDetail struct {
	Card
	OwnerName  string `json:"-"`
	OwnerEmail string `json:"-"`
}
