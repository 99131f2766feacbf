package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zahrirmdn/loreomah/internal/service"
)

type SliderHandler struct {
	sliderService *service.SliderService
}

func NewSliderHandler(sliderService *service.SliderService) *SliderHandler {
	return &SliderHandler{sliderService: sliderService}
}

func (h *SliderHandler) List(c *fiber.Ctx) error {
	sliders, err := h.sliderService.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sliders)
}

func (h *SliderHandler) GetByID(c *fiber.Ctx) error {
	slider, err := h.sliderService.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(slider)
}

func (h *SliderHandler) Create(c *fiber.Ctx) error {
	title := c.FormValue("title")
	description := c.FormValue("description")
	if title == "" || description == "" {
		return detail(c, fiber.StatusBadRequest, "title and description are required")
	}

	filename, file, cleanup := formImage(c)
	defer cleanup()

	slider, err := h.sliderService.Create(title, description, filename, file)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Slider added", "data": slider})
}

func (h *SliderHandler) Update(c *fiber.Ctx) error {
	title := c.FormValue("title")
	description := c.FormValue("description")
	if title == "" || description == "" {
		return detail(c, fiber.StatusBadRequest, "title and description are required")
	}

	filename, file, cleanup := formImage(c)
	defer cleanup()

	slider, err := h.sliderService.Update(c.Params("id"), title, description, filename, file)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Slider updated", "data": slider})
}

func (h *SliderHandler) Delete(c *fiber.Ctx) error {
	if err := h.sliderService.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Slider deleted"})
}
