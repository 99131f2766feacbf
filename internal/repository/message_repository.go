package repository

import (
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(message *models.Message) (*models.Message, error) {
	if err := r.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

func (r *MessageRepository) GetAll(unreadOnly bool) ([]models.Message, error) {
	query := r.db.Model(&models.Message{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var messages []models.Message
	err := query.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) GetByID(id string) (*models.Message, error) {
	var message models.Message
	if err := r.db.Where("id = ?", id).First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepository) MarkRead(id string) error {
	result := r.db.Model(&models.Message{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Message{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
