package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/service"
	"github.com/zahrirmdn/loreomah/pkg/utils"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
	validator       *utils.Validator
}

func NewSettingsHandler(settingsService *service.SettingsService, validator *utils.Validator) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, validator: validator}
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req models.SiteSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return detail(c, fiber.StatusBadRequest, err.Error())
	}

	settings, err := h.settingsService.Update(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) UpdateContact(c *fiber.Ctx) error {
	var contact models.ContactData
	if err := c.BodyParser(&contact); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	settings, err := h.settingsService.UpdateContact(contact)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) UpdateAbout(c *fiber.Ctx) error {
	var about models.AboutData
	if err := c.BodyParser(&about); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	settings, err := h.settingsService.UpdateAbout(about)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) UpdateStory(c *fiber.Ctx) error {
	var story models.StoryData
	if err := c.BodyParser(&story); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	settings, err := h.settingsService.UpdateStory(story)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(settings)
}
