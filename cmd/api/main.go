package main

import (
	"log"

	_ "barberapp/docs"
	"barberapp/internal/adapter/http/routes"
	"barberapp/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Barbershop API
// @version         1.0
// @description     Service catalog, bookings and admin panel of the barbershop.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	routes.Run(cfg)
}
