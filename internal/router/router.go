package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"campushelper/internal/config"
	"campushelper/internal/handler"
	"campushelper/internal/middleware"
	"campushelper/internal/service"
)

// Register wires routes and middleware. Reads on managed resources are open;
// every mutating route passes the admin guard before it can touch storage.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	timetableHandler *handler.TimetableHandler,
	busHandler *handler.BusHandler,
	canteenHandler *handler.CanteenHandler,
) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authenticated := middleware.RequireAuthenticated(authService)
	admin := middleware.RequireAdmin(authService)

	// Authentication
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authenticated)

	// User management (admin only, including reads)
	e.POST("/users", userHandler.CreateUser, admin)
	e.GET("/users", userHandler.ListUsers, admin)
	e.GET("/users/:id", userHandler.GetUser, admin)
	e.PATCH("/users/:id", userHandler.UpdateUser, admin)

	// Timetable
	e.GET("/timetable", timetableHandler.List)
	e.GET("/timetable/:day", timetableHandler.ListByDay)
	e.POST("/timetable", timetableHandler.Create, admin)
	e.PUT("/timetable/:id", timetableHandler.Update, admin)
	e.DELETE("/timetable/:id", timetableHandler.Delete, admin)

	// Bus schedules
	e.GET("/bus", busHandler.List)
	e.GET("/bus/routes/list", busHandler.ListRoutes)
	e.GET("/bus/:route", busHandler.ListByRoute)
	e.POST("/bus", busHandler.Create, admin)
	e.PUT("/bus/:id", busHandler.Update, admin)
	e.DELETE("/bus/:id", busHandler.Delete, admin)

	// Canteen menu
	e.GET("/canteen", canteenHandler.List)
	e.GET("/canteen/categories/list", canteenHandler.ListCategories)
	e.GET("/canteen/:day", canteenHandler.ListByDay)
	e.POST("/canteen", canteenHandler.Create, admin)
	e.PUT("/canteen/:id", canteenHandler.Update, admin)
	e.DELETE("/canteen/:id", canteenHandler.Delete, admin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
