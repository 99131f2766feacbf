package service

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/repository"
	"github.com/zahrirmdn/loreomah/pkg/storage"
	"github.com/zahrirmdn/loreomah/pkg/utils"
)

type MenuCategoryService struct {
	categoryRepo *repository.MenuCategoryRepository
	storage      storage.StorageService
	logger       *zap.Logger
}

func NewMenuCategoryService(categoryRepo *repository.MenuCategoryRepository, store storage.StorageService, logger *zap.Logger) *MenuCategoryService {
	return &MenuCategoryService{
		categoryRepo: categoryRepo,
		storage:      store,
		logger:       logger,
	}
}

func (s *MenuCategoryService) GetAll() ([]models.MenuCategory, error) {
	return s.categoryRepo.GetAll()
}

func (s *MenuCategoryService) GetByName(name string) (*models.MenuCategory, error) {
	category, err := s.categoryRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *MenuCategoryService) Create(title, name, description, menuLink, filename string, file io.Reader) (*models.MenuCategory, error) {
	category := &models.MenuCategory{
		ID:          uuid.NewString(),
		Title:       title,
		Name:        name,
		Description: description,
		MenuLink:    menuLink,
	}

	if file != nil {
		key := "menu_categories/" + utils.RandomFileName(filename)
		if err := s.storage.Upload(key, file); err != nil {
			return nil, err
		}
		category.ImageURL = s.storage.URL(key)
	}

	return s.categoryRepo.Create(category)
}

func (s *MenuCategoryService) Update(id, title, name, description string, menuLink *string, filename string, file io.Reader) (*models.MenuCategory, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if file != nil {
		key := "menu_categories/" + utils.RandomFileName(filename)
		if err := s.storage.Upload(key, file); err != nil {
			return nil, err
		}
		category.ImageURL = s.storage.URL(key)
	}

	category.Title = title
	category.Name = name
	category.Description = description
	if menuLink != nil {
		category.MenuLink = *menuLink
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *MenuCategoryService) Delete(id string) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	if category.ImageURL != "" {
		if err := s.storage.Delete(s.storage.Key(category.ImageURL)); err != nil {
			s.logger.Warn("failed to delete category image", zap.String("id", id), zap.Error(err))
		}
	}
	return s.categoryRepo.Delete(id)
}

type MenuItemService struct {
	itemRepo *repository.MenuItemRepository
}

func NewMenuItemService(itemRepo *repository.MenuItemRepository) *MenuItemService {
	return &MenuItemService{itemRepo: itemRepo}
}

func (s *MenuItemService) GetByCategory(category string) ([]models.MenuItem, error) {
	return s.itemRepo.GetByCategory(category)
}

func (s *MenuItemService) Create(req models.MenuItemRequest) (*models.MenuItem, error) {
	item := &models.MenuItem{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	return s.itemRepo.Create(item)
}

func (s *MenuItemService) Update(id string, req models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.itemRepo.UpdateFields(id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuItemService) Delete(id string) error {
	err := s.itemRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMenuItemNotFound
	}
	return err
}
