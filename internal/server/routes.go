package server

import (
	"strconv"
	"time"

	"trakr/internal/database/dto"
	"trakr/internal/database/models"
	"trakr/internal/database/repositories"
	"trakr/internal/utils"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func (s *FiberServer) RegisterFiberRoutes() {
	s.App.Post("/login", s.login)
	s.App.Post("/register", s.registerUser)
	s.App.Get("/health", s.healthHandler)

	// Reads are anonymous; routes registered before the JWT middleware skip it.
	s.App.Get("/cards", s.getAllCards)
	s.App.Get("/cards/:id<int>", s.getSingleCard)
	s.App.Get("/cards/:card_id<int>/comments", s.getCardComments)
	s.App.Get("/cards/:card_id<int>/comments/:comment_id<int>", s.getSingleComment)

	s.App.Use(jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: jwtSecret()},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing or invalid bearer token"})
		},
	}))

	s.App.Post("/cards", s.createCard)
	s.App.Put("/cards/:id<int>", s.updateCard)
	s.App.Patch("/cards/:id<int>", s.updateCard)
	s.App.Delete("/cards/:id<int>", s.deleteCard)

	s.App.Post("/cards/:card_id<int>/comments", s.createComment)
	s.App.Put("/cards/:card_id<int>/comments/:comment_id<int>", s.updateComment)
	s.App.Patch("/cards/:card_id<int>/comments/:comment_id<int>", s.updateComment)
	s.App.Delete("/cards/:card_id<int>/comments/:comment_id<int>", s.deleteComment)
}

func (s *FiberServer) healthHandler(c *fiber.Ctx) error {
	return c.JSON(s.db.Health())
}

func (s *FiberServer) login(c *fiber.Ctx) error {
	credentials := dto.LoginCredentials{}
	if err := c.BodyParser(&credentials); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	repo := repositories.NewUserRepository(s.db.DB())
	user, err := repo.GetByEmail(c.Context(), credentials.Email)
	if err != nil || !utils.CheckPasswordHash(credentials.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
	}

	// Identity travels as the subject claim, user id rendered as a string.
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(user.ID, 10),
		"jti": uuid.NewString(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour * 72).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(jwtSecret())
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"token": t})
}

func (s *FiberServer) registerUser(c *fiber.Ctx) error {
	user := models.User{}
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if user.Email == "" || user.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}
	var err error
	user.Password, err = utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	// Admins are provisioned out of band, never through this endpoint.
	user.IsAdmin = false
	repo := repositories.NewUserRepository(s.db.DB())
	if err := repo.Create(c.Context(), &user); err != nil {
		if err == repositories.ErrDuplicate {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email already registered"})
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "created user successfully"})
}

// currentUser resolves the JWT subject to a stored user row. The row is the
// authority for the admin flag; the token never carries it.
func (s *FiberServer) currentUser(c *fiber.Ctx) (*models.User, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, fiber.ErrUnauthorized
	}
	repo := repositories.NewUserRepository(s.db.DB())
	user, err := repo.GetByID(c.Context(), id)
	if err != nil {
		return nil, fiber.ErrUnauthorized
	}
	return user, nil
}
