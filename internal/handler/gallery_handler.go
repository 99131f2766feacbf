package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zahrirmdn/loreomah/internal/service"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
}

func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

func (h *GalleryHandler) List(c *fiber.Ctx) error {
	items, err := h.galleryService.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

func (h *GalleryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.galleryService.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	filename, file, cleanup := formImage(c)
	defer cleanup()

	item, err := h.galleryService.Create(c.FormValue("title"), c.FormValue("description"), filename, file)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Gallery item added", "data": item})
}

func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	var title, description *string
	if form, err := c.MultipartForm(); err == nil {
		if values, ok := form.Value["title"]; ok && len(values) > 0 {
			title = &values[0]
		}
		if values, ok := form.Value["description"]; ok && len(values) > 0 {
			description = &values[0]
		}
	}

	filename, file, cleanup := formImage(c)
	defer cleanup()

	item, err := h.galleryService.Update(c.Params("id"), title, description, filename, file)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Gallery item updated", "data": item})
}

func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	if err := h.galleryService.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Gallery item deleted"})
}
