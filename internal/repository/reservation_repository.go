package repository

import (
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(reservation *models.Reservation) (*models.Reservation, error) {
	if err := r.db.Create(reservation).Error; err != nil {
		return nil, err
	}
	return reservation, nil
}

func (r *ReservationRepository) GetByID(id string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.Where("id = ?", id).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *ReservationRepository) GetAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Order("created_at DESC").Find(&reservations).Error
	return reservations, err
}

// GetByUserEmail returns one page of the owner's reservations, newest
// first, plus the total matching count.
func (r *ReservationRepository) GetByUserEmail(email string, page, size int, status models.ReservationStatus) ([]models.Reservation, int64, error) {
	query := r.db.Model(&models.Reservation{}).Where("user_email = ?", email)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservations []models.Reservation
	offset := (page - 1) * size
	err := query.Order("created_at DESC").Offset(offset).Limit(size).Find(&reservations).Error
	if err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// UpdateFields applies a partial update to the reservation row.
func (r *ReservationRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Reservation{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAllRead flips the owner-read flag on every unread reservation of the
// given owner and returns how many rows changed.
func (r *ReservationRepository) MarkAllRead(email string) (int64, error) {
	result := r.db.Model(&models.Reservation{}).
		Where("user_email = ? AND is_read = ?", email, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// MarkAllReadByAdmin flips the admin-read flag on every reservation.
func (r *ReservationRepository) MarkAllReadByAdmin() (int64, error) {
	result := r.db.Model(&models.Reservation{}).
		Where("is_read_by_admin = ?", false).
		Update("is_read_by_admin", true)
	return result.RowsAffected, result.Error
}

func (r *ReservationRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Reservation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
