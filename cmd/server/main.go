package main

import (
	"log"
	"net/http"
	"os"

	_ "campushelper/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"campushelper/internal/auth"
	"campushelper/internal/cache"
	"campushelper/internal/config"
	"campushelper/internal/db"
	"campushelper/internal/handler"
	"campushelper/internal/model"
	"campushelper/internal/repository"
	"campushelper/internal/router"
	"campushelper/internal/service"
)

// @title Campus Helper API
// @version 1.0
// @description Campus information backend with class timetables, bus timings, canteen menus, and JWT authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.CanteenMenu{},
			&model.BusSchedule{},
			&model.Timetable{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Timetable{},
		&model.BusSchedule{},
		&model.CanteenMenu{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	timetableRepo := repository.NewTimetableRepository(gormDB)
	busRepo := repository.NewBusRepository(gormDB)
	canteenRepo := repository.NewCanteenRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo)
	timetableService := service.NewTimetableService(timetableRepo, cacheClient)
	busService := service.NewBusService(busRepo, cacheClient)
	canteenService := service.NewCanteenService(canteenRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	timetableHandler := handler.NewTimetableHandler(timetableService)
	busHandler := handler.NewBusHandler(busService)
	canteenHandler := handler.NewCanteenHandler(canteenService)

	// Register routes
	router.Register(
		e,
		cfg,
		authService,
		authHandler,
		userHandler,
		timetableHandler,
		busHandler,
		canteenHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
