package server

import (
	"fmt"

	"trakr/internal/database/dto"
	"trakr/internal/database/models"
	"trakr/internal/database/repositories"

	"github.com/gofiber/fiber/v2"
)

func cardNotFound(c *fiber.Ctx, id int64) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": fmt.Sprintf("Card with id '%d' not found", id),
	})
}

func (s *FiberServer) getAllCards(c *fiber.Ctx) error {
	cardRepo := repositories.NewCardRepository(s.db.DB())
	commentRepo := repositories.NewCommentRepository(s.db.DB())
	cards, err := cardRepo.List(c.Context())
	if err != nil {
		return err
	}
	views := make([]dto.CardView, 0, len(cards))
	for _, card := range cards {
		comments, err := commentRepo.ListForCard(c.Context(), card.ID)
		if err != nil {
			return err
		}
		views = append(views, dto.NewCardView(card, comments))
	}
	return c.JSON(views)
}

func (s *FiberServer) getSingleCard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid card id"})
	}
	cardRepo := repositories.NewCardRepository(s.db.DB())
	card, err := cardRepo.GetByID(c.Context(), int64(id))
	if err == repositories.ErrNotFound {
		return cardNotFound(c, int64(id))
	}
	if err != nil {
		return err
	}
	comments, err := repositories.NewCommentRepository(s.db.DB()).ListForCard(c.Context(), card.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCardView(*card, comments))
}

func (s *FiberServer) createCard(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	input := dto.CardInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := input.ValidateCreate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	card := models.Card{UserID: user.ID}
	if err := input.Apply(&card); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	cardRepo := repositories.NewCardRepository(s.db.DB())
	if err := cardRepo.Create(c.Context(), &card); err != nil {
		return err
	}
	detail := models.CardDetail{Card: card, OwnerName: user.Name, OwnerEmail: user.Email}
	return c.JSON(dto.NewCardView(detail, nil))
}

func (s *FiberServer) updateCard(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid card id"})
	}
	input := dto.CardInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	cardRepo := repositories.NewCardRepository(s.db.DB())
	card, err := cardRepo.GetByID(c.Context(), int64(id))
	if err == repositories.ErrNotFound {
		return cardNotFound(c, int64(id))
	}
	if err != nil {
		return err
	}
	decision := Authorize(user.IsAdmin, card.UserID == user.ID, OperationUpdate)
	if !decision.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": decision.Reason})
	}
	if err := input.Apply(&card.Card); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := cardRepo.Update(c.Context(), &card.Card); err != nil {
		return err
	}
	comments, err := repositories.NewCommentRepository(s.db.DB()).ListForCard(c.Context(), card.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCardView(*card, comments))
}

func (s *FiberServer) deleteCard(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid card id"})
	}
	cardRepo := repositories.NewCardRepository(s.db.DB())
	card, err := cardRepo.GetByID(c.Context(), int64(id))
	if err == repositories.ErrNotFound {
		return cardNotFound(c, int64(id))
	}
	if err != nil {
		return err
	}
	decision := Authorize(user.IsAdmin, card.UserID == user.ID, OperationDelete)
	if !decision.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": decision.Reason})
	}
	// Comments go with the card via the FK cascade.
	if err := cardRepo.Delete(c.Context(), card.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Card %s deleted successfully!", card.Title),
	})
}
