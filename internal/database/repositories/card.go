package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"trakr/internal/database/models"
)

type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	GetByID(ctx context.Context, id int64) (*models.CardDetail, error)
	List(ctx context.Context) ([]models.CardDetail, error)
	Update(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id int64) error
}

type cardRepository struct {
	db *sql.DB
}

func NewCardRepository(db *sql.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	query := `
		INSERT INTO cards (title, description, date, status, priority, user_id)
		VALUES ($1, $2, CURRENT_DATE, $3, $4, $5)
		RETURNING id, date`
	err := r.db.QueryRowContext(ctx, query, card.Title, card.Description, card.Status, card.Priority, card.UserID).Scan(&card.ID, &card.Date)
	if err != nil {
		return fmt.Errorf("error creating card: %v", err)
	}
	return nil
}

func (r *cardRepository) GetByID(ctx context.Context, id int64) (*models.CardDetail, error) {
	card := models.CardDetail{}
	query := `
		SELECT c.id, c.title, c.description, c.date, c.status, c.priority, c.user_id, u.name, u.email
		FROM cards c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID,
		&card.Title,
		&card.Description,
		&card.Date,
		&card.Status,
		&card.Priority,
		&card.UserID,
		&card.OwnerName,
		&card.OwnerEmail,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting card: %v", err)
	}
	return &card, nil
}

func (r *cardRepository) List(ctx context.Context) ([]models.CardDetail, error) {
	// Newest first; id breaks ties within a date so the order is stable.
	query := `
		SELECT c.id, c.title, c.description, c.date, c.status, c.priority, c.user_id, u.name, u.email
		FROM cards c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.date DESC, c.id DESC`
	result, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying cards: %v", err)
	}
	defer result.Close()
	var cards []models.CardDetail
	for result.Next() {
		var card models.CardDetail
		err := result.Scan(
			&card.ID,
			&card.Title,
			&card.Description,
			&card.Date,
			&card.Status,
			&card.Priority,
			&card.UserID,
			&card.OwnerName,
			&card.OwnerEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning card: %v", err)
		}
		cards = append(cards, card)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cards: %v", err)
	}
	return cards, nil
}

func (r *cardRepository) Update(ctx context.Context, card *models.Card) error {
	query := `
		UPDATE cards
		SET title = $1, description = $2, status = $3, priority = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query, card.Title, card.Description, card.Status, card.Priority, card.ID)
	if err != nil {
		return fmt.Errorf("error updating card: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *cardRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM cards WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting card: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
