package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"app/config"
	"app/middleware"
	"app/prediction"
	"app/routes"
	"app/store"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Set up the application configuration
	config.AppConfig = config.Config{
		DataPath:     envOr("DATA_PATH", config.DefaultDataPath),
		ModelPath:    envOr("MODEL_PATH", config.DefaultModelPath),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Port:         envOr("PORT", config.DefaultPort),
	}

	// Load the dataset and the model once; both are immutable afterwards and
	// a failure here halts startup.
	if config.AppConfig.DatabaseURL != "" {
		if _, err := store.LoadPostgres(context.Background(), config.AppConfig.DatabaseURL); err != nil {
			log.Fatalf("Dataset load failed: %v", err)
		}
	} else {
		if _, err := store.Load(config.AppConfig.DataPath); err != nil {
			log.Fatalf("Dataset load failed: %v", err)
		}
	}
	if _, err := prediction.Load(config.AppConfig.ModelPath); err != nil {
		log.Fatalf("Model load failed: %v", err)
	}

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())
	app.Use(middleware.RequestLogger)

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
