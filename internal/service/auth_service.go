package service

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/repository"
	"github.com/zahrirmdn/loreomah/pkg/bcrypt"
	jwtPkg "github.com/zahrirmdn/loreomah/pkg/jwt"
	"github.com/zahrirmdn/loreomah/pkg/otp"
)

// OTPExpiry is how long a freshly generated verification code stays valid.
const OTPExpiry = 10 * time.Minute

type AuthService struct {
	userRepo *repository.UserRepository
	email    EmailSender
	tokens   *jwtPkg.TokenManager
	logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, email EmailSender, tokens *jwtPkg.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		email:    email,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterUser creates an unverified account and mails a verification
// code. Re-registering an unverified email overwrites the password and
// resends a fresh code.
func (s *AuthService) RegisterUser(req models.RegisterRequest) (string, error) {
	existing, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if existing != nil && existing.EmailVerified {
		return "", ErrAlreadyRegistered
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	code := otp.GenerateCode()
	expiresAt := time.Now().Add(OTPExpiry)

	if existing != nil {
		err := s.userRepo.UpdateFields(req.Email, map[string]interface{}{
			"password":       hashedPassword,
			"phone_number":   req.PhoneNumber,
			"otp_code":       code,
			"otp_expires_at": expiresAt,
		})
		if err != nil {
			return "", err
		}
		s.sendOTP(req.Email, code)
		return "✅ Kode OTP baru telah dikirim ke email Anda.", nil
	}

	user := &models.User{
		Email:         req.Email,
		Password:      hashedPassword,
		PhoneNumber:   req.PhoneNumber,
		Role:          models.RoleUser,
		EmailVerified: false,
		OTPCode:       code,
		OTPExpiresAt:  &expiresAt,
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", err
	}

	s.sendOTP(req.Email, code)
	return "✅ Pendaftaran berhasil! Silakan cek email Anda untuk kode verifikasi OTP.", nil
}

// RegisterAdmin creates an admin account; no OTP round-trip.
func (s *AuthService) RegisterAdmin(req models.RegisterRequest) (string, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrAlreadyRegistered
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Email:         req.Email,
		Password:      hashedPassword,
		Role:          models.RoleAdmin,
		EmailVerified: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", err
	}
	return "✅ Admin account created successfully", nil
}

// VerifyOTP marks the account verified when the supplied code matches the
// stored unexpired one; the code is single-use and cleared on success.
func (s *AuthService) VerifyOTP(email, code string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.EmailVerified {
		return ErrAlreadyVerified
	}
	if user.OTPExpiresAt != nil && time.Now().After(*user.OTPExpiresAt) {
		return ErrOTPExpired
	}
	if user.OTPCode != code {
		return ErrOTPMismatch
	}

	return s.userRepo.UpdateFields(email, map[string]interface{}{
		"email_verified": true,
		"otp_code":       "",
		"otp_expires_at": nil,
	})
}

// ResendOTP replaces the stored code and mails the new one.
func (s *AuthService) ResendOTP(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	code := otp.GenerateCode()
	expiresAt := time.Now().Add(OTPExpiry)
	err = s.userRepo.UpdateFields(email, map[string]interface{}{
		"otp_code":       code,
		"otp_expires_at": expiresAt,
	})
	if err != nil {
		return err
	}

	s.sendOTP(email, code)
	return nil
}

// LoginUser requires a verified email on top of valid credentials.
func (s *AuthService) LoginUser(email, password string) (*models.TokenResponse, error) {
	user, err := s.authenticate(email, password)
	if err != nil {
		return nil, err
	}
	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}
	return s.tokenResponse(user)
}

// LoginAdmin rejects accounts without the admin role.
func (s *AuthService) LoginAdmin(email, password string) (*models.TokenResponse, error) {
	user, err := s.authenticate(email, password)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleAdmin {
		s.logger.Warn("admin login rejected: not an admin", zap.String("email", email))
		return nil, ErrNotAdmin
	}
	return s.tokenResponse(user)
}

// Login is the role-agnostic variant used when the frontend does not pick
// a role; it checks neither role nor verification flag.
func (s *AuthService) Login(email, password string) (*models.TokenResponse, error) {
	user, err := s.authenticate(email, password)
	if err != nil {
		return nil, err
	}
	return s.tokenResponse(user)
}

func (s *AuthService) authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.ComparePassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) tokenResponse(user *models.User) (*models.TokenResponse, error) {
	token, err := s.tokens.Generate(user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Public(),
	}, nil
}

// sendOTP is best-effort: a broken mail provider must not block
// registration, the user can always ask for a resend.
func (s *AuthService) sendOTP(email, code string) {
	username := strings.Split(email, "@")[0]
	if err := s.email.SendOTPEmail(email, code, username); err != nil {
		s.logger.Warn("failed to send OTP email", zap.String("email", email), zap.Error(err))
	}
}
