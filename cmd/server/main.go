package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/littlejoes/internal/config"
	"github.com/example/littlejoes/internal/database"
	"github.com/example/littlejoes/internal/routes"
	"github.com/example/littlejoes/internal/services"
	"github.com/example/littlejoes/internal/store"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)
	documents := database.ConnectDocuments(cfg.MongoURI, cfg.MongoDB)
	docs := store.NewDocumentStore(documents, cfg.StoreID)

	if cfg.SeedDemoData {
		orderService := services.NewOrderService(docs, cfg.StoreID)
		if err := database.SeedDemoData(context.Background(), docs, orderService); err != nil {
			log.Printf("demo seed failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName: "Little Joe's Back Office",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, docs, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
