package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"trakr/internal/database/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.CommentDetail, error)
	ListForCard(ctx context.Context, cardID int64) ([]models.CommentDetail, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (message, date, user_id, card_id)
		VALUES ($1, CURRENT_DATE, $2, $3)
		RETURNING id, date`
	err := r.db.QueryRowContext(ctx, query, comment.Message, comment.UserID, comment.CardID).Scan(&comment.ID, &comment.Date)
	if err != nil {
		return fmt.Errorf("error creating comment: %v", err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*models.CommentDetail, error) {
	comment := models.CommentDetail{}
	query := `
		SELECT cm.id, cm.message, cm.date, cm.user_id, cm.card_id, u.name, u.email
		FROM comments cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.Message,
		&comment.Date,
		&comment.UserID,
		&comment.CardID,
		&comment.AuthorName,
		&comment.AuthorEmail,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting comment: %v", err)
	}
	return &comment, nil
}

func (r *commentRepository) ListForCard(ctx context.Context, cardID int64) ([]models.CommentDetail, error) {
	query := `
		SELECT cm.id, cm.message, cm.date, cm.user_id, cm.card_id, u.name, u.email
		FROM comments cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.card_id = $1
		ORDER BY cm.date ASC, cm.id ASC`
	result, err := r.db.QueryContext(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("error querying comments: %v", err)
	}
	defer result.Close()
	var comments []models.CommentDetail
	for result.Next() {
		var comment models.CommentDetail
		err := result.Scan(
			&comment.ID,
			&comment.Message,
			&comment.Date,
			&comment.UserID,
			&comment.CardID,
			&comment.AuthorName,
			&comment.AuthorEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment: %v", err)
		}
		comments = append(comments, comment)
	}
	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %v", err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := `UPDATE comments SET message = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, comment.Message, comment.ID)
	if err != nil {
		return fmt.Errorf("error updating comment: %v", err)
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

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM comments WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %v", err)
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
