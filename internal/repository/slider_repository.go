package repository

import (
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
)

type SliderRepository struct {
	db *gorm.DB
}

func NewSliderRepository(db *gorm.DB) *SliderRepository {
	return &SliderRepository{db: db}
}

func (r *SliderRepository) Create(slider *models.Slider) (*models.Slider, error) {
	if err := r.db.Create(slider).Error; err != nil {
		return nil, err
	}
	return slider, nil
}

func (r *SliderRepository) GetAll() ([]models.Slider, error) {
	var sliders []models.Slider
	err := r.db.Find(&sliders).Error
	return sliders, err
}

func (r *SliderRepository) GetByID(id string) (*models.Slider, error) {
	var slider models.Slider
	if err := r.db.Where("id = ?", id).First(&slider).Error; err != nil {
		return nil, err
	}
	return &slider, nil
}

func (r *SliderRepository) Update(slider *models.Slider) error {
	return r.db.Save(slider).Error
}

func (r *SliderRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Slider{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
