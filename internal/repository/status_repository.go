package repository

import (
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
)

type StatusCheckRepository struct {
	db *gorm.DB
}

func NewStatusCheckRepository(db *gorm.DB) *StatusCheckRepository {
	return &StatusCheckRepository{db: db}
}

func (r *StatusCheckRepository) Create(check *models.StatusCheck) (*models.StatusCheck, error) {
	if err := r.db.Create(check).Error; err != nil {
		return nil, err
	}
	return check, nil
}

func (r *StatusCheckRepository) GetAll() ([]models.StatusCheck, error) {
	var checks []models.StatusCheck
	err := r.db.Find(&checks).Error
	return checks, err
}
