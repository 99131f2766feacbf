package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/service"
	"github.com/zahrirmdn/loreomah/pkg/utils"
)

type MenuCategoryHandler struct {
	categoryService *service.MenuCategoryService
}

func NewMenuCategoryHandler(categoryService *service.MenuCategoryService) *MenuCategoryHandler {
	return &MenuCategoryHandler{categoryService: categoryService}
}

// formImage reads the optional "image" multipart field. The returned reader
// is nil when no file was uploaded; the cleanup func must be called either way.
func formImage(c *fiber.Ctx) (string, io.Reader, func()) {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return "", nil, func() {}
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, func() {}
	}
	return fh.Filename, f, func() { f.Close() }
}

func (h *MenuCategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(categories)
}

func (h *MenuCategoryHandler) GetByName(c *fiber.Ctx) error {
	category, err := h.categoryService.GetByName(c.Params("name"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(category)
}

func (h *MenuCategoryHandler) Create(c *fiber.Ctx) error {
	title := c.FormValue("title")
	name := c.FormValue("name")
	description := c.FormValue("description")
	if title == "" || name == "" || description == "" {
		return detail(c, fiber.StatusBadRequest, "title, name and description are required")
	}

	filename, file, cleanup := formImage(c)
	defer cleanup()

	category, err := h.categoryService.Create(title, name, description, c.FormValue("menu_link"), filename, file)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Kategori berhasil ditambahkan", "data": category})
}

func (h *MenuCategoryHandler) Update(c *fiber.Ctx) error {
	title := c.FormValue("title")
	name := c.FormValue("name")
	description := c.FormValue("description")
	if title == "" || name == "" || description == "" {
		return detail(c, fiber.StatusBadRequest, "title, name and description are required")
	}

	var menuLink *string
	if form, err := c.MultipartForm(); err == nil {
		if values, ok := form.Value["menu_link"]; ok && len(values) > 0 {
			menuLink = &values[0]
		}
	}

	filename, file, cleanup := formImage(c)
	defer cleanup()

	category, err := h.categoryService.Update(c.Params("id"), title, name, description, menuLink, filename, file)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Kategori berhasil diperbarui", "data": category})
}

func (h *MenuCategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.categoryService.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Kategori berhasil dihapus"})
}

type MenuItemHandler struct {
	itemService *service.MenuItemService
	validator   *utils.Validator
}

func NewMenuItemHandler(itemService *service.MenuItemService, validator *utils.Validator) *MenuItemHandler {
	return &MenuItemHandler{itemService: itemService, validator: validator}
}

func (h *MenuItemHandler) ListByCategory(c *fiber.Ctx) error {
	items, err := h.itemService.GetByCategory(c.Params("category"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

func (h *MenuItemHandler) Create(c *fiber.Ctx) error {
	var req models.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" || req.Category == "" {
		return detail(c, fiber.StatusBadRequest, "name and category are required")
	}

	item, err := h.itemService.Create(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Menu item created", "data": item})
}

func (h *MenuItemHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.itemService.Update(c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Menu item updated", "data": item})
}

func (h *MenuItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.itemService.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Menu item deleted"})
}
