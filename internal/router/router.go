package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hhcc/internal/auth"
	"hhcc/internal/handler"
)

// Handlers bundles everything Register wires up.
type Handlers struct {
	Auth        *handler.AuthHandler
	Password    *handler.PasswordHandler
	User        *handler.UserHandler
	Admin       *handler.AdminHandler
	Catalog     *handler.CatalogHandler
	Testimonial *handler.TestimonialHandler
	Schedule    *handler.ScheduleHandler
	Payment     *handler.PaymentHandler
	Item        *handler.ItemHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, jwtService *auth.JWTService, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the HHCC API"})
	})

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout)
	api.POST("/auth/forgot-password", h.Password.ForgotPassword)
	api.POST("/auth/verify-reset", h.Password.VerifyReset)
	api.POST("/auth/reset-password", h.Password.ResetPassword)

	// Reference data
	api.GET("/care-centers", h.Catalog.ListCareCenters)
	api.GET("/care-centers/:id", h.Catalog.GetCareCenter)
	api.GET("/services", h.Catalog.ListServices)
	api.GET("/services/:id", h.Catalog.GetService)

	// Testimonials (public list and submission)
	api.GET("/testimonials", h.Testimonial.List)
	api.POST("/testimonials", h.Testimonial.Submit)

	// Demo CRUD
	api.GET("/items", h.Item.List)
	api.GET("/items/:id", h.Item.Get)
	api.POST("/items", h.Item.Create)
	api.PUT("/items/:id", h.Item.Update)
	api.DELETE("/items/:id", h.Item.Delete)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
	}))

	// Profile and family management
	secured.PUT("/auth/update-profile", h.User.UpdateProfile)
	secured.POST("/auth/add-family-member", h.User.AddFamilyMember)
	secured.POST("/auth/remove-family-member", h.User.RemoveFamilyMember)

	// Admin operations
	secured.GET("/auth/all-users", h.Admin.ListUsers)
	secured.PUT("/auth/admin-update-user", h.Admin.UpdateUser)
	secured.POST("/auth/admin-add-family-member", h.Admin.AddFamilyMember)
	secured.POST("/auth/admin-remove-family-member", h.Admin.RemoveFamilyMember)
	secured.DELETE("/auth/delete-user/:userId", h.Admin.DeleteUser)

	// Schedules
	secured.GET("/schedules/:userId", h.Schedule.ListForUser)
	secured.POST("/schedules", h.Schedule.Create)

	// Payments
	secured.POST("/payments", h.Payment.Process)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
