package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trakr/internal/database"
	"trakr/internal/server"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	s := server.New(database.New())
	s.RegisterFiberRoutes()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.ShutdownWithContext(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := s.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("listen: %v", err)
	}
}
