package server

import (
	"fmt"

	"trakr/internal/database/dto"
	"trakr/internal/database/models"
	"trakr/internal/database/repositories"

	"github.com/gofiber/fiber/v2"
)

func commentNotFound(c *fiber.Ctx, id int64) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": fmt.Sprintf("Comment with id '%d' not found", id),
	})
}

// cardFromPath resolves the :card_id segment shared by all comment routes.
func (s *FiberServer) cardFromPath(c *fiber.Ctx) (*models.CardDetail, error) {
	id, err := c.ParamsInt("card_id")
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid card id"})
	}
	cardRepo := repositories.NewCardRepository(s.db.DB())
	card, err := cardRepo.GetByID(c.Context(), int64(id))
	if err == repositories.ErrNotFound {
		return nil, cardNotFound(c, int64(id))
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

// commentFromPath resolves :comment_id and checks it belongs to the card.
func (s *FiberServer) commentFromPath(c *fiber.Ctx, cardID int64) (*models.CommentDetail, error) {
	id, err := c.ParamsInt("comment_id")
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid comment id"})
	}
	commentRepo := repositories.NewCommentRepository(s.db.DB())
	comment, err := commentRepo.GetByID(c.Context(), int64(id))
	if err == repositories.ErrNotFound || (err == nil && comment.CardID != cardID) {
		return nil, commentNotFound(c, int64(id))
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *FiberServer) getCardComments(c *fiber.Ctx) error {
	card, err := s.cardFromPath(c)
	if card == nil {
		return err
	}
	comments, err := repositories.NewCommentRepository(s.db.DB()).ListForCard(c.Context(), card.ID)
	if err != nil {
		return err
	}
	views := make([]dto.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, dto.NewCommentView(comment, card.Card))
	}
	return c.JSON(views)
}

func (s *FiberServer) getSingleComment(c *fiber.Ctx) error {
	card, err := s.cardFromPath(c)
	if card == nil {
		return err
	}
	comment, err := s.commentFromPath(c, card.ID)
	if comment == nil {
		return err
	}
	return c.JSON(dto.NewCommentView(*comment, card.Card))
}

func (s *FiberServer) createComment(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	card, err := s.cardFromPath(c)
	if card == nil {
		return err
	}
	input := dto.CommentInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := input.ValidateCreate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	comment := models.Comment{UserID: user.ID, CardID: card.ID}
	if err := input.Apply(&comment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	commentRepo := repositories.NewCommentRepository(s.db.DB())
	if err := commentRepo.Create(c.Context(), &comment); err != nil {
		return err
	}
	detail := models.CommentDetail{Comment: comment, AuthorName: user.Name, AuthorEmail: user.Email}
	return c.JSON(dto.NewCommentView(detail, card.Card))
}

func (s *FiberServer) updateComment(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	card, err := s.cardFromPath(c)
	if card == nil {
		return err
	}
	comment, err := s.commentFromPath(c, card.ID)
	if comment == nil {
		return err
	}
	input := dto.CommentInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	decision := Authorize(user.IsAdmin, comment.UserID == user.ID, OperationUpdate)
	if !decision.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": decision.Reason})
	}
	if err := input.Apply(&comment.Comment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	commentRepo := repositories.NewCommentRepository(s.db.DB())
	if err := commentRepo.Update(c.Context(), &comment.Comment); err != nil {
		return err
	}
	return c.JSON(dto.NewCommentView(*comment, card.Card))
}

func (s *FiberServer) deleteComment(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	card, err := s.cardFromPath(c)
	if card == nil {
		return err
	}
	comment, err := s.commentFromPath(c, card.ID)
	if comment == nil {
		return err
	}
	decision := Authorize(user.IsAdmin, comment.UserID == user.ID, OperationDelete)
	if !decision.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": decision.Reason})
	}
	commentRepo := repositories.NewCommentRepository(s.db.DB())
	if err := commentRepo.Delete(c.Context(), comment.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Comment %d deleted successfully!", comment.ID),
	})
}
