package routes

import (
	"time"

	"github.com/aris220/contact-management-api/internal/handlers"
	"github.com/aris220/contact-management-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	db *gorm.DB,
	userHandler *handlers.UserHandler,
	contactHandler *handlers.ContactHandler,
	addressHandler *handlers.AddressHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Registration and login get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/users", authLimiter, userHandler.Register)
	api.Post("/users/login", authLimiter, userHandler.Login)

	// Everything below requires a bearer token
	protected := middleware.Protected(db)

	api.Get("/users/current", protected, userHandler.Current)
	api.Patch("/users/current", protected, userHandler.Update)
	api.Delete("/users/logout", protected, userHandler.Logout)

	contacts := api.Group("/contacts", protected)
	contacts.Post("/", contactHandler.Create)
	contacts.Get("/", contactHandler.Search)
	contacts.Get("/:contactId", contactHandler.Get)
	contacts.Put("/:contactId", contactHandler.Update)
	contacts.Delete("/:contactId", contactHandler.Delete)

	contacts.Post("/:contactId/addresses", addressHandler.Create)
	contacts.Get("/:contactId/addresses", addressHandler.List)
	contacts.Get("/:contactId/addresses/:addressId", addressHandler.Get)
	contacts.Put("/:contactId/addresses/:addressId", addressHandler.Update)
	contacts.Delete("/:contactId/addresses/:addressId", addressHandler.Delete)
}
