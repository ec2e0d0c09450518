package main

import (
	"log"
	"net/http"
	"strings"

	_ "hhcc/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hhcc/internal/auth"
	"hhcc/internal/cache"
	"hhcc/internal/config"
	"hhcc/internal/db"
	"hhcc/internal/handler"
	"hhcc/internal/model"
	"hhcc/internal/repository"
	"hhcc/internal/router"
	"hhcc/internal/service"
)

// @title HHCC Childcare API
// @version 1.0
// @description Childcare services account-management and booking API with JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.FamilyMember{},
		&model.Pet{},
		&model.CareCenter{},
		&model.Service{},
		&model.Testimonial{},
		&model.Schedule{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	centerRepo := repository.NewCareCenterRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	scheduleRepo := repository.NewScheduleRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	resetStore := auth.NewResetTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	resetService := service.NewPasswordResetService(userRepo, resetStore)
	userService := service.NewUserService(userRepo)
	adminService := service.NewAdminService(userRepo, userService)
	catalogService := service.NewCatalogService(centerRepo, serviceRepo, cacheClient)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, userRepo)
	paymentService := service.NewPaymentService(paymentRepo, userRepo)

	// Routes
	router.Register(e, jwtService, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Password:    handler.NewPasswordHandler(resetService),
		User:        handler.NewUserHandler(userService),
		Admin:       handler.NewAdminHandler(adminService),
		Catalog:     handler.NewCatalogHandler(catalogService),
		Testimonial: handler.NewTestimonialHandler(testimonialService),
		Schedule:    handler.NewScheduleHandler(scheduleService),
		Payment:     handler.NewPaymentHandler(paymentService),
		Item:        handler.NewItemHandler(),
	})

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		host := cfg.SwaggerHost
		if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
			host = "http://" + host
		}
		swaggerURL = host + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
