package models

import (
	"time"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusDeclined  ReservationStatus = "declined"
	StatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID            string            `json:"id" gorm:"primaryKey"`
	Name          string            `json:"name" gorm:"not null"`
	Phone         string            `json:"phone"`
	Guests        int               `json:"guests"`
	Date          string            `json:"date"` // ISO datetime supplied by the client
	Status        ReservationStatus `json:"status" gorm:"default:pending"`
	UserEmail     *string           `json:"user_email"`
	IsRead        bool              `json:"is_read"`
	IsReadByAdmin bool              `json:"is_read_by_admin"`
	CreatedAt     time.Time         `json:"created_at"`
}

type ReservationRequest struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone" validate:"required"`
	Guests int    `json:"guests" validate:"required,min=1"`
	Date   string `json:"date" validate:"required"`
}

// UpdateReservationRequest enumerates every field the admin dashboard is
// allowed to patch on an existing reservation.
type UpdateReservationRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Guests *int    `json:"guests"`
	Date   *string `json:"date"`
}

type ReservationPage struct {
	Items []Reservation `json:"items"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
	Total int64         `json:"total"`
}
