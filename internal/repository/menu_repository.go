package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
)

type MenuCategoryRepository struct {
	db *gorm.DB
}

func NewMenuCategoryRepository(db *gorm.DB) *MenuCategoryRepository {
	return &MenuCategoryRepository{db: db}
}

func (r *MenuCategoryRepository) Create(category *models.MenuCategory) (*models.MenuCategory, error) {
	if err := r.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *MenuCategoryRepository) GetAll() ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *MenuCategoryRepository) GetByID(id string) (*models.MenuCategory, error) {
	var category models.MenuCategory
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByName matches the category name case-insensitively.
func (r *MenuCategoryRepository) GetByName(name string) (*models.MenuCategory, error) {
	var category models.MenuCategory
	err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *MenuCategoryRepository) Update(category *models.MenuCategory) error {
	return r.db.Save(category).Error
}

func (r *MenuCategoryRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.MenuCategory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type MenuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

func (r *MenuItemRepository) Create(item *models.MenuItem) (*models.MenuItem, error) {
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MenuItemRepository) GetByID(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByCategory matches the category name case-insensitively.
func (r *MenuItemRepository) GetByCategory(category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("LOWER(category) = ?", strings.ToLower(category)).Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuItemRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.MenuItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
