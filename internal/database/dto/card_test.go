package dto

import (
	"encoding/json"
	"testing"
	"time"

	"trakr/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestCardInputValidateCreate(t *testing.T) {
	assert.ErrorIs(t, (&CardInput{}).ValidateCreate(), ErrTitleRequired)
	assert.ErrorIs(t, (&CardInput{Title: strptr("")}).ValidateCreate(), ErrTitleRequired)
	assert.NoError(t, (&CardInput{Title: strptr("T")}).ValidateCreate())
}

func TestCardInputApplyPartial(t *testing.T) {
	card := models.Card{
		Title:       "Write report",
		Description: strptr("quarterly numbers"),
		Status:      strptr("To Do"),
		Priority:    strptr("High"),
	}

	// Only status present: everything else untouched.
	input := CardInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Done"}`), &input))
	require.NoError(t, input.Apply(&card))
	assert.Equal(t, "Write report", card.Title)
	assert.Equal(t, "quarterly numbers", *card.Description)
	assert.Equal(t, "Done", *card.Status)
	assert.Equal(t, "High", *card.Priority)
}

func TestCardInputApplyClearsPresentEmptyField(t *testing.T) {
	card := models.Card{Title: "T", Description: strptr("old")}

	input := CardInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"description":""}`), &input))
	require.NoError(t, input.Apply(&card))
	assert.Nil(t, card.Description, "explicit empty description clears the field")
}

func TestCardInputApplyRejectsEmptyTitle(t *testing.T) {
	card := models.Card{Title: "keep"}

	input := CardInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":""}`), &input))
	assert.ErrorIs(t, input.Apply(&card), ErrTitleRequired)
	assert.Equal(t, "keep", card.Title)
}

func TestCommentInputApply(t *testing.T) {
	comment := models.Comment{Message: "first"}

	input := CommentInput{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &input))
	require.NoError(t, input.Apply(&comment))
	assert.Equal(t, "first", comment.Message)

	require.NoError(t, json.Unmarshal([]byte(`{"message":"edited"}`), &input))
	require.NoError(t, input.Apply(&comment))
	assert.Equal(t, "edited", comment.Message)

	require.NoError(t, json.Unmarshal([]byte(`{"message":""}`), &input))
	assert.ErrorIs(t, input.Apply(&comment), ErrMessageRequired)
}

func TestNewCardViewNesting(t *testing.T) {
	date := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	card := models.CardDetail{
		Card: models.Card{
			ID:     7,
			Title:  "Fix login",
			Date:   date,
			Status: strptr("To Do"),
			UserID: 3,
		},
		OwnerName:  "Ana",
		OwnerEmail: "ana@example.com",
	}
	comments := []models.CommentDetail{
		{
			Comment:     models.Comment{ID: 1, Message: "on it", Date: date, UserID: 4, CardID: 7},
			AuthorName:  "Bo",
			AuthorEmail: "bo@example.com",
		},
	}

	view := NewCardView(card, comments)
	assert.Equal(t, "2024-05-17", view.Date)
	assert.Equal(t, UserSummary{Name: "Ana", Email: "ana@example.com"}, view.User)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "on it", view.Comments[0].Message)
	assert.Equal(t, "bo@example.com", view.Comments[0].User.Email)

	// Comment view embeds the card without its comment list.
	commentView := NewCommentView(comments[0], card.Card)
	body, err := json.Marshal(commentView)
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"comments"`)
	assert.Contains(t, string(body), `"card"`)
}

func TestNewCardViewEmptyComments(t *testing.T) {
	view := NewCardView(models.CardDetail{}, nil)
	body, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"comments":[]`)
}
