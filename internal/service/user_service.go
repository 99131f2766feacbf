package service

import (
	"encoding/base64"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/repository"
)

// MaxAvatarSize bounds inline avatar uploads.
const MaxAvatarSize = 10 * 1024 * 1024

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserService) GetProfile(email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(email string, req models.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		fields["phone_number"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.userRepo.UpdateFields(email, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.GetProfile(email)
}

// UploadAvatar stores the image inline as a base64 data URL on the user
// document.
func (s *UserService) UploadAvatar(email, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrFileEmpty
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrFileNotImage
	}
	if len(data) > MaxAvatarSize {
		return "", ErrFileTooLarge
	}

	avatarURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	err := s.userRepo.UpdateFields(email, map[string]interface{}{"avatar_url": avatarURL})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return avatarURL, nil
}

func (s *UserService) RemoveAvatar(email string) error {
	err := s.userRepo.UpdateFields(email, map[string]interface{}{"avatar_url": ""})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *UserService) ListUsers(q string, page, perPage int) (*models.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	users, total, err := s.userRepo.List(q, page, perPage)
	if err != nil {
		return nil, err
	}
	return &models.UserPage{
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Items:   users,
	}, nil
}

func (s *UserService) DeleteUser(email string) error {
	err := s.userRepo.DeleteByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
