package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/littlejoes/internal/config"
	"github.com/example/littlejoes/internal/handlers"
	"github.com/example/littlejoes/internal/report"
	"github.com/example/littlejoes/internal/services"
	"github.com/example/littlejoes/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, docs *store.DocumentStore, cfg *config.Config) {
	gateway := report.NewSummaryGateway(db)
	summaryService := services.NewSummaryService(docs, gateway)
	orderService := services.NewOrderService(docs, cfg.StoreID)

	driverHandler := handlers.NewDriverHandler(docs)
	customerHandler := handlers.NewCustomerHandler(docs)
	orderHandler := handlers.NewOrderHandler(orderService, docs)
	summaryHandler := handlers.NewSummaryHandler(summaryService, gateway)

	api := app.Group("/api")

	drivers := api.Group("/drivers")
	drivers.Get("/", driverHandler.ListDrivers)
	drivers.Post("/", driverHandler.SaveDriver)

	customers := api.Group("/customers")
	customers.Get("/", customerHandler.ListCustomers)
	customers.Post("/", customerHandler.SaveCustomer)

	orders := api.Group("/orders")
	orders.Get("/", orderHandler.ListOrders)
	orders.Post("/", orderHandler.CreateOrder)
	orders.Get("/:id/docket", orderHandler.GetDocket)

	summaries := api.Group("/summaries")
	summaries.Get("/", summaryHandler.List)
	summaries.Get("/:date", summaryHandler.GetByDate)
	summaries.Post("/:date", summaryHandler.Generate)
}
