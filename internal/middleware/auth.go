package middleware

import (
	"errors"
	"strings"

	"github.com/aris220/contact-management-api/internal/dto"
	"github.com/aris220/contact-management-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const userLocalsKey = "user"

// Protected resolves the bearer token to its user and stores the principal
// in context locals. A missing or malformed header and an unknown token are
// reported identically; nothing past this middleware runs without a principal.
func Protected(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if !ok || token == "" {
			return unauthorized(c)
		}

		var user models.User
		if err := db.Where("token = ?", token).First(&user).Error; err != nil {
			return unauthorized(c)
		}

		c.Locals(userLocalsKey, &user)
		return c.Next()
	}
}

// GetUser extracts the authenticated principal from Fiber context locals.
func GetUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(userLocalsKey).(*models.User)
	if !ok {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Errors: "Unauthorized",
	})
}
