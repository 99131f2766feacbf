package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/zahrirmdn/loreomah/internal/config"
	"github.com/zahrirmdn/loreomah/internal/handler"
	"github.com/zahrirmdn/loreomah/internal/middleware"
	"github.com/zahrirmdn/loreomah/internal/repository"
	"github.com/zahrirmdn/loreomah/internal/service"
	"github.com/zahrirmdn/loreomah/pkg/database"
	"github.com/zahrirmdn/loreomah/pkg/email"
	"github.com/zahrirmdn/loreomah/pkg/jwt"
	"github.com/zahrirmdn/loreomah/pkg/logger"
	"github.com/zahrirmdn/loreomah/pkg/storage"
	"github.com/zahrirmdn/loreomah/pkg/utils"
	"github.com/zahrirmdn/loreomah/pkg/whatsapp"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	categoryRepo := repository.NewMenuCategoryRepository(db)
	itemRepo := repository.NewMenuItemRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	sliderRepo := repository.NewSliderRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	statusRepo := repository.NewStatusCheckRepository(db)

	// Storage service
	var store storage.StorageService
	if cfg.StorageDriver == "r2" {
		store, err = storage.NewR2Storage(cfg)
		if err != nil {
			log.Fatal("Failed to initialize R2 storage:", err)
		}
	} else {
		store, err = storage.NewLocalStorage(cfg.UploadsDir)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	}

	// Outbound collaborators
	emailService := email.NewService(cfg.ResendAPIKey, cfg.EmailFromAddress, cfg.EmailFromName, zapLogger)
	waClient := whatsapp.NewClient(cfg.WhatsAppBotURL, zapLogger)
	tokens := jwt.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenExpiry)

	// Services
	authService := service.NewAuthService(userRepo, emailService, tokens, zapLogger)
	userService := service.NewUserService(userRepo, zapLogger)
	reservationService := service.NewReservationService(reservationRepo, emailService, waClient, zapLogger)
	categoryService := service.NewMenuCategoryService(categoryRepo, store, zapLogger)
	itemService := service.NewMenuItemService(itemRepo)
	galleryService := service.NewGalleryService(galleryRepo, store, zapLogger)
	sliderService := service.NewSliderService(sliderRepo, store, zapLogger)
	messageService := service.NewMessageService(messageRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	statusService := service.NewStatusService(statusRepo)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService)
	reservationHandler := handler.NewReservationHandler(reservationService, validator)
	categoryHandler := handler.NewMenuCategoryHandler(categoryService)
	itemHandler := handler.NewMenuItemHandler(itemService, validator)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	sliderHandler := handler.NewSliderHandler(sliderService)
	messageHandler := handler.NewMessageHandler(messageService, validator)
	settingsHandler := handler.NewSettingsHandler(settingsService, validator)
	statusHandler := handler.NewStatusHandler(statusService, validator)

	m := middleware.NewAuthMiddleware(tokens, userRepo)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if cfg.StorageDriver != "r2" {
		app.Static("/uploads", cfg.UploadsDir)
	}

	// Auth routes
	auth := app.Group("/auth")
	auth.Post("/user/register", authHandler.RegisterUser)
	auth.Post("/admin/register", authHandler.RegisterAdmin)
	auth.Post("/verify-otp", authHandler.VerifyOTP)
	auth.Post("/resend-otp", authHandler.ResendOTP)
	auth.Post("/user/login", authHandler.LoginUser)
	auth.Post("/admin/login", authHandler.LoginAdmin)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", m.Protected(), authHandler.Me)

	api := app.Group("/api")
	api.Get("/", statusHandler.Root)
	api.Post("/status", statusHandler.Create)
	api.Get("/status", statusHandler.List)

	// Reservations. Literal segments must be registered before the
	// parameterized ones or Fiber captures "mine" as an id.
	reservations := api.Group("/reservations")
	reservations.Get("/", reservationHandler.List)
	reservations.Post("/", m.Protected(), reservationHandler.Create)
	reservations.Get("/mine", m.Protected(), reservationHandler.ListMine)
	reservations.Put("/mark-all-read", m.Protected(), reservationHandler.MarkAllRead)
	reservations.Put("/admin/mark-all-read", m.Protected(), m.AdminOnly(), reservationHandler.MarkAllReadByAdmin)
	reservations.Put("/:id/cancel", m.Protected(), reservationHandler.Cancel)
	reservations.Put("/:id/confirm", m.Protected(), m.AdminOnly(), reservationHandler.Confirm)
	reservations.Put("/:id/decline", m.Protected(), m.AdminOnly(), reservationHandler.Decline)
	reservations.Put("/:id/mark-read", m.Protected(), reservationHandler.MarkRead)
	reservations.Put("/:id", m.Protected(), m.AdminOnly(), reservationHandler.Update)
	reservations.Delete("/:id", m.Protected(), m.AdminOnly(), reservationHandler.Delete)

	// Menu
	categories := api.Group("/menu-categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:name", categoryHandler.GetByName)
	categories.Post("/", m.Protected(), m.AdminOnly(), categoryHandler.Create)
	categories.Put("/:id", m.Protected(), m.AdminOnly(), categoryHandler.Update)
	categories.Delete("/:id", m.Protected(), m.AdminOnly(), categoryHandler.Delete)

	items := api.Group("/menu-items")
	items.Get("/:category", itemHandler.ListByCategory)
	items.Post("/", m.Protected(), m.AdminOnly(), itemHandler.Create)
	items.Put("/:id", m.Protected(), m.AdminOnly(), itemHandler.Update)
	items.Delete("/:id", m.Protected(), m.AdminOnly(), itemHandler.Delete)

	// Gallery
	gallery := api.Group("/gallery")
	gallery.Get("/", galleryHandler.List)
	gallery.Get("/:id", galleryHandler.GetByID)
	gallery.Post("/", m.Protected(), m.AdminOnly(), galleryHandler.Create)
	gallery.Put("/:id", m.Protected(), m.AdminOnly(), galleryHandler.Update)
	gallery.Delete("/:id", m.Protected(), m.AdminOnly(), galleryHandler.Delete)

	// Sliders
	sliders := api.Group("/sliders")
	sliders.Get("/", sliderHandler.List)
	sliders.Get("/:id", sliderHandler.GetByID)
	sliders.Post("/", m.Protected(), m.AdminOnly(), sliderHandler.Create)
	sliders.Put("/:id", m.Protected(), m.AdminOnly(), sliderHandler.Update)
	sliders.Delete("/:id", m.Protected(), m.AdminOnly(), sliderHandler.Delete)

	// Messages
	messages := api.Group("/messages")
	messages.Post("/", messageHandler.Create)
	messages.Get("/", m.Protected(), m.AdminOnly(), messageHandler.List)
	messages.Patch("/:id/read", m.Protected(), m.AdminOnly(), messageHandler.MarkRead)
	messages.Delete("/:id", m.Protected(), m.AdminOnly(), messageHandler.Delete)

	// Site settings
	settings := api.Group("/settings")
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", m.Protected(), m.AdminOnly(), settingsHandler.Update)
	settings.Put("/contact", m.Protected(), m.AdminOnly(), settingsHandler.UpdateContact)
	settings.Put("/about", m.Protected(), m.AdminOnly(), settingsHandler.UpdateAbout)
	settings.Put("/story", m.Protected(), m.AdminOnly(), settingsHandler.UpdateStory)

	// Users
	users := api.Group("/users")
	users.Get("/me", m.Protected(), userHandler.Me)
	users.Patch("/me", m.Protected(), userHandler.UpdateProfile)
	users.Post("/me/avatar", m.Protected(), userHandler.UploadAvatar)
	users.Post("/me/avatar/remove", m.Protected(), userHandler.RemoveAvatar)
	users.Get("/", m.Protected(), m.AdminOnly(), userHandler.List)
	users.Delete("/:email", m.Protected(), m.AdminOnly(), userHandler.Delete)

	log.Fatal(app.Listen(":" + cfg.Port))
}
