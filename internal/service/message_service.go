package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/repository"
)

type MessageService struct {
	messageRepo *repository.MessageRepository
}

func NewMessageService(messageRepo *repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

func (s *MessageService) Create(req models.MessageRequest) (*models.Message, error) {
	message := &models.Message{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		IsRead:  false,
	}
	return s.messageRepo.Create(message)
}

func (s *MessageService) List(unreadOnly bool) (*models.MessageList, error) {
	messages, err := s.messageRepo.GetAll(unreadOnly)
	if err != nil {
		return nil, err
	}
	return &models.MessageList{
		Total:    len(messages),
		Messages: messages,
	}, nil
}

func (s *MessageService) MarkRead(id string) (*models.Message, error) {
	if err := s.messageRepo.MarkRead(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return s.messageRepo.GetByID(id)
}

func (s *MessageService) Delete(id string) error {
	err := s.messageRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMessageNotFound
	}
	return err
}
