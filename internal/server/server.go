package server

import (
	"errors"
	"os"

	"trakr/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

type FiberServer struct {
	*fiber.App

	db database.Service
}

func New(db database.Service) *FiberServer {
	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader: "trakr",
			AppName:      "trakr",
			ErrorHandler: errorHandler,
		}),
		db: db,
	}
	server.App.Use(favicon.New())
	server.App.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins(),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization,X-Requested-With",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		MaxAge:       3600,
	}))
	server.App.Use(logger.New())
	return server
}

func corsOrigins() string {
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		return v
	}
	return "*"
}

func jwtSecret() []byte {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return []byte(v)
	}
	return []byte("secret")
}

// errorHandler renders every uncaught error as an {"error": ...} body.
// Internal detail is never echoed back to the client.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		if code < fiber.StatusInternalServerError {
			message = e.Message
		}
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}
