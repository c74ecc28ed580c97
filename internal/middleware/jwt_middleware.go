package middleware

import (
	"github.com/gofiber/fiber/v2"

	"storehub/internal/models"
	"storehub/internal/services"
)

// LocalUser is the c.Locals key holding the authenticated *models.User.
const LocalUser = "user"

// AuthRequired is a Fiber middleware that resolves the bearer token to a user
// and stores it in the context for subsequent handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authService.ResolveToken(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(LocalUser).(*models.User)
	return user
}
