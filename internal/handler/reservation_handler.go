package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/service"
	"github.com/zahrirmdn/loreomah/pkg/utils"
)

type ReservationHandler struct {
	reservationService *service.ReservationService
	validator          *utils.Validator
}

func NewReservationHandler(reservationService *service.ReservationService, validator *utils.Validator) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
		validator:          validator,
	}
}

func (h *ReservationHandler) List(c *fiber.Ctx) error {
	reservations, err := h.reservationService.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reservations)
}

func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var req models.ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return detail(c, fiber.StatusBadRequest, err.Error())
	}

	reservation, err := h.reservationService.Create(req, c.Locals("userEmail").(string))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reservation)
}

func (h *ReservationHandler) ListMine(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 10)
	status := models.ReservationStatus(c.Query("status"))

	result, err := h.reservationService.ListMine(c.Locals("userEmail").(string), page, size, status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}

func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	reservation, err := h.reservationService.Cancel(c.Params("id"), c.Locals("userEmail").(string))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reservation)
}

func (h *ReservationHandler) Confirm(c *fiber.Ctx) error {
	reservation, err := h.reservationService.Confirm(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reservation)
}

func (h *ReservationHandler) Decline(c *fiber.Ctx) error {
	reservation, err := h.reservationService.Decline(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reservation)
}

func (h *ReservationHandler) MarkRead(c *fiber.Ctx) error {
	reservation, err := h.reservationService.MarkRead(c.Params("id"), c.Locals("userEmail").(string))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reservation)
}

func (h *ReservationHandler) MarkAllRead(c *fiber.Ctx) error {
	count, err := h.reservationService.MarkAllRead(c.Locals("userEmail").(string))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"updated_count": count})
}

func (h *ReservationHandler) MarkAllReadByAdmin(c *fiber.Ctx) error {
	count, err := h.reservationService.MarkAllReadByAdmin()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"updated_count": count})
}

func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	reservation, err := h.reservationService.Update(c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reservation)
}

func (h *ReservationHandler) Delete(c *fiber.Ctx) error {
	if err := h.reservationService.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"detail": "Deleted"})
}
