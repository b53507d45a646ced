package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	Prefix       string
	AllowOrigins string
}

func NewApp(log *logrus.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "MoneyMitra",
		ErrorHandler: ErrorHandler(log),
	})
}

func SetupRouter(app *fiber.App, handler *CoachHandler, cfg RouterConfig) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowOrigins}))

	api := app.Group(cfg.Prefix)
	api.Get("/health", handler.HealthCheck)
	api.Post("/quick-chat", handler.QuickChat)
	api.Post("/financial-advice", handler.FinancialAdvice)
	api.Post("/analyze-spending", handler.AnalyzeSpending)
	api.Get("/test", handler.Diagnostics)
	api.Post("/test", handler.Diagnostics)
}
