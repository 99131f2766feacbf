package repository

import (
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Create(item *models.GalleryItem) (*models.GalleryItem, error) {
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GalleryRepository) GetAll() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := r.db.Find(&items).Error
	return items, err
}

func (r *GalleryRepository) GetByID(id string) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GalleryRepository) Update(item *models.GalleryItem) error {
	return r.db.Save(item).Error
}

func (r *GalleryRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.GalleryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
