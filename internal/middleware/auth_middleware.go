package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/repository"
	jwtPkg "github.com/zahrirmdn/loreomah/pkg/jwt"
)

type AuthMiddleware struct {
	tokens   *jwtPkg.TokenManager
	userRepo *repository.UserRepository
}

func NewAuthMiddleware(tokens *jwtPkg.TokenManager, userRepo *repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// Protected validates the bearer token and resolves its subject against
// the user store. A valid token whose subject no longer exists is a 404.
func (m *AuthMiddleware) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Authorization header is required",
			})
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Invalid authorization header format",
			})
		}

		claims, err := m.tokens.Validate(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Invalid or expired token",
			})
		}

		user, err := m.userRepo.GetByEmail(claims.Subject)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"detail": "User not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"detail": "Internal server error",
			})
		}

		c.Locals("userEmail", user.Email)
		c.Locals("userRole", user.Role)
		return c.Next()
	}
}

// AdminOnly must run after Protected.
func (m *AuthMiddleware) AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)
		if role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"detail": "Admin privileges required",
			})
		}
		return c.Next()
	}
}
