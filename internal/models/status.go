package models

import (
	"time"
)

// StatusCheck records a client liveness ping.
type StatusCheck struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	ClientName string    `json:"client_name" gorm:"not null"`
	Timestamp  time.Time `json:"timestamp"`
}

type StatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}
