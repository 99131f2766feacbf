package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 20)

	result, err := h.userService.ListUsers(c.Query("q"), page, perPage)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.Params("email")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"detail": "User deleted"})
}

// Me returns the full sanitized user; the profile form reads username,
// full_name, phone and address from it.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.userService.GetProfile(c.Locals("userEmail").(string))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.userService.UpdateProfile(c.Locals("userEmail").(string), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return fail(c, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, service.MaxAvatarSize+1))
	if err != nil {
		return fail(c, err)
	}

	avatarURL, err := h.userService.UploadAvatar(c.Locals("userEmail").(string), fh.Header.Get("Content-Type"), data)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"avatar_url": avatarURL})
}

func (h *UserHandler) RemoveAvatar(c *fiber.Ctx) error {
	if err := h.userService.RemoveAvatar(c.Locals("userEmail").(string)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Avatar removed successfully"})
}
