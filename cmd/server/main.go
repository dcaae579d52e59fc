package main

import (
	"context"
	"log"

	_ "dailytodo/docs"
	"dailytodo/internal/config"
	"dailytodo/internal/server"
)

// @title           Daily To-Do API
// @version         1.0
// @description     Per-day task lists with priorities, scheduled times and PDF export.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
