package main

import (
	"log"
	"net/http"
	"os"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/logger"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
	"github.com/memorylane634/RealEstateMarketplace/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8080"
	}

	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
