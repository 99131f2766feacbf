package service

import (
	"errors"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyRegistered  = errors.New("email sudah terdaftar dan terverifikasi")
	ErrAlreadyVerified    = errors.New("email sudah terverifikasi")
	ErrOTPExpired         = errors.New("kode OTP sudah kadaluarsa, silakan minta kode baru")
	ErrOTPMismatch        = errors.New("kode OTP salah")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email belum diverifikasi, silakan cek email Anda untuk kode OTP")
	ErrNotAdmin           = errors.New("unauthorized access")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotYourReservation  = errors.New("not your reservation")

	ErrCategoryNotFound    = errors.New("kategori tidak ditemukan")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrSliderNotFound      = errors.New("slider not found")
	ErrMessageNotFound     = errors.New("pesan tidak ditemukan")

	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
	ErrFileEmpty        = errors.New("file is empty")
	ErrFileNotImage     = errors.New("file must be an image")
	ErrFileTooLarge     = errors.New("file size must be less than 10MB")
)
