package api

import (
	"duitku/docs"
	"duitku/internal/api/handlers"
	"duitku/pkg/auth"
	"duitku/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	dashboardHandler *handlers.DashboardHandler,
	txHandler *handlers.TransactionHandler,
	catHandler *handlers.CategoryHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"message": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))
	app.Use(logger.New())

	// Swagger - importing the docs package registers the spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Auth routes (public except /me)
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", middleware.AuthRequired(jwtManager, appLogger), authHandler.Me)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired(jwtManager, appLogger))

	protected.Get("/dashboard", dashboardHandler.Stats)

	protected.Get("/transactions", txHandler.List)
	protected.Post("/transactions", txHandler.Create)
	protected.Delete("/transactions/:id", txHandler.Delete)

	protected.Get("/categories", catHandler.List)
	protected.Post("/categories", catHandler.Create)
	protected.Delete("/categories/:id", catHandler.Delete)

	return app
}
