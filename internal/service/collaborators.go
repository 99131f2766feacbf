package service

import (
	"github.com/zahrirmdn/loreomah/internal/models"
)

// EmailSender is implemented by pkg/email; tests substitute a recorder.
type EmailSender interface {
	SendOTPEmail(to, code, username string) error
	SendReservationConfirmedEmail(to string, reservation *models.Reservation) error
}

// WhatsAppSender is implemented by pkg/whatsapp.
type WhatsAppSender interface {
	SendMessage(phone, message string) error
}
