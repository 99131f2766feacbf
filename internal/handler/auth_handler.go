package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/service"
	"github.com/zahrirmdn/loreomah/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return detail(c, fiber.StatusBadRequest, err.Error())
	}

	message, err := h.authService.RegisterUser(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": message,
		"email":   req.Email,
	})
}

func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return detail(c, fiber.StatusBadRequest, err.Error())
	}

	message, err := h.authService.RegisterAdmin(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": message,
		"email":   req.Email,
	})
}

func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req models.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return detail(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.authService.VerifyOTP(req.Email, req.OTPCode); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "✅ Email berhasil diverifikasi! Silakan login."})
}

func (h *AuthHandler) ResendOTP(c *fiber.Ctx) error {
	var req models.ResendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return detail(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResendOTP(req.Email); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "✅ Kode OTP baru telah dikirim ke email Anda."})
}

func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	return h.login(c, h.authService.LoginUser)
}

func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	return h.login(c, h.authService.LoginAdmin)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.login(c, h.authService.Login)
}

// login parses the OAuth2 password form shared by all three variants.
func (h *AuthHandler) login(c *fiber.Ctx, authenticate func(email, password string) (*models.TokenResponse, error)) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return detail(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := authenticate(req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// Me reports the identity the auth middleware resolved.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"email": c.Locals("userEmail"),
		"role":  c.Locals("userRole"),
	})
}
