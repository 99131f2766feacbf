package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zahrirmdn/loreomah/internal/service"
	"github.com/zahrirmdn/loreomah/internal/statemachine"
)

// detail mirrors the error body shape the admin dashboard and site
// frontend already consume.
func detail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"detail": message})
}

var notFoundErrors = []error{
	service.ErrUserNotFound,
	service.ErrReservationNotFound,
	service.ErrCategoryNotFound,
	service.ErrMenuItemNotFound,
	service.ErrGalleryItemNotFound,
	service.ErrSliderNotFound,
	service.ErrMessageNotFound,
}

var forbiddenErrors = []error{
	service.ErrEmailNotVerified,
	service.ErrNotAdmin,
	service.ErrNotYourReservation,
}

var badRequestErrors = []error{
	service.ErrAlreadyRegistered,
	service.ErrAlreadyVerified,
	service.ErrOTPExpired,
	service.ErrOTPMismatch,
	service.ErrInvalidCredentials,
	service.ErrNoFieldsToUpdate,
	service.ErrFileEmpty,
	service.ErrFileNotImage,
	service.ErrFileTooLarge,
	statemachine.ErrInvalidTransition,
}

// fail maps service errors onto their HTTP statuses.
func fail(c *fiber.Ctx, err error) error {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return detail(c, fiber.StatusNotFound, err.Error())
		}
	}
	for _, target := range forbiddenErrors {
		if errors.Is(err, target) {
			return detail(c, fiber.StatusForbidden, err.Error())
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return detail(c, fiber.StatusBadRequest, err.Error())
		}
	}
	return detail(c, fiber.StatusInternalServerError, "Internal server error")
}
