package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/service"
	"github.com/zahrirmdn/loreomah/pkg/utils"
)

type StatusHandler struct {
	statusService *service.StatusService
	validator     *utils.Validator
}

func NewStatusHandler(statusService *service.StatusService, validator *utils.Validator) *StatusHandler {
	return &StatusHandler{statusService: statusService, validator: validator}
}

func (h *StatusHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "LoreOmah Backend API is running 🚀"})
}

func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var req models.StatusCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return detail(c, fiber.StatusBadRequest, err.Error())
	}

	check, err := h.statusService.Create(req.ClientName)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(check)
}

func (h *StatusHandler) List(c *fiber.Ctx) error {
	checks, err := h.statusService.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(checks)
}
