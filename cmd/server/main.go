package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/itemcompare/backend/config"
	httpDelivery "github.com/itemcompare/backend/internal/delivery/http"
	"github.com/itemcompare/backend/internal/infrastructure/storage"
	"github.com/itemcompare/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Item Comparison Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Storage Type: %s", cfg.Storage.Type)

	// Initialize infrastructure dependencies
	repo, closeRepo, err := storage.Open(context.Background(), storage.Options{
		Type:        cfg.Storage.Type,
		JSONPath:    cfg.Storage.JSONPath,
		DatabaseURL: cfg.Storage.DatabaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to open product storage: %v", err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			log.Printf("Failed to close product storage: %v", err)
		}
	}()

	if cfg.RateLimit.PerIP > 0 {
		log.Printf("Rate limit: %d requests/minute per IP", cfg.RateLimit.PerIP)
	} else {
		log.Printf("Rate limit: disabled")
	}

	// Initialize usecase layer
	productService := usecase.NewProductService(repo)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(productService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Printf("Failed to start server: %v", err)
		return
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
