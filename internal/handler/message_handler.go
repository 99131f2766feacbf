package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/service"
	"github.com/zahrirmdn/loreomah/pkg/utils"
)

type MessageHandler struct {
	messageService *service.MessageService
	validator      *utils.Validator
}

func NewMessageHandler(messageService *service.MessageService, validator *utils.Validator) *MessageHandler {
	return &MessageHandler{messageService: messageService, validator: validator}
}

func (h *MessageHandler) Create(c *fiber.Ctx) error {
	var req models.MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return detail(c, fiber.StatusBadRequest, err.Error())
	}

	message, err := h.messageService.Create(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pesan berhasil dikirim", "data": message})
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	list, err := h.messageService.List(c.QueryBool("unread_only", false))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	message, err := h.messageService.MarkRead(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pesan ditandai sebagai dibaca", "data": message})
}

func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	if err := h.messageService.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pesan berhasil dihapus"})
}
