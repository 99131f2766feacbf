package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/repository"
	"github.com/zahrirmdn/loreomah/internal/service"
	jwtPkg "github.com/zahrirmdn/loreomah/pkg/jwt"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Reservation{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.GalleryItem{},
		&models.Slider{},
		&models.Message{},
		&models.SiteSettings{},
		&models.StatusCheck{},
	))
	return db
}

func newTokenManager() *jwtPkg.TokenManager {
	return jwtPkg.NewTokenManager("test-secret", "loreomah", time.Hour)
}

// emailRecorder captures outbound mail instead of sending it.
type emailRecorder struct {
	otps      []sentOTP
	confirmed []string
	fail      bool
}

type sentOTP struct {
	To   string
	Code string
}

func (r *emailRecorder) SendOTPEmail(to, code, username string) error {
	if r.fail {
		return errors.New("mail provider down")
	}
	r.otps = append(r.otps, sentOTP{To: to, Code: code})
	return nil
}

func (r *emailRecorder) SendReservationConfirmedEmail(to string, reservation *models.Reservation) error {
	if r.fail {
		return errors.New("mail provider down")
	}
	r.confirmed = append(r.confirmed, to)
	return nil
}

// waRecorder captures WhatsApp messages.
type waRecorder struct {
	messages []sentWA
	fail     bool
}

type sentWA struct {
	Phone   string
	Message string
}

func (r *waRecorder) SendMessage(phone, message string) error {
	if r.fail {
		return errors.New("bot offline")
	}
	r.messages = append(r.messages, sentWA{Phone: phone, Message: message})
	return nil
}

func newAuthService(t *testing.T, db *gorm.DB, mail *emailRecorder) *service.AuthService {
	t.Helper()
	return service.NewAuthService(repository.NewUserRepository(db), mail, newTokenManager(), zap.NewNop())
}

func newReservationService(t *testing.T, db *gorm.DB, mail *emailRecorder, wa *waRecorder) *service.ReservationService {
	t.Helper()
	return service.NewReservationService(repository.NewReservationRepository(db), mail, wa, zap.NewNop())
}

func stored(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	return &user
}
