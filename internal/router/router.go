package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"eduai/internal/config"
	"eduai/internal/errors"
	"eduai/internal/handler"
	"eduai/internal/identity"
)

// Handlers groups every HTTP handler the API serves.
type Handlers struct {
	Auth      *handler.AuthHandler
	Me        *handler.MeHandler
	Notices   *handler.NoticeHandler
	Inquiries *handler.InquiryHandler
	Reviews   *handler.ReviewHandler
	Plans     *handler.PlanHandler
	Admin     *handler.AdminUserHandler
	Payments  *handler.PaymentHandler
	Mail      *handler.MailHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, resolver *identity.Resolver, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	if len(cfg.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout)

	api.POST("/send-email", h.Mail.SendContact)
	api.POST("/inquiry/send-email", h.Mail.SendInquiry)

	api.GET("/notices", h.Notices.List)
	api.GET("/notices/:id", h.Notices.Get)
	api.GET("/reviews", h.Reviews.List)
	api.GET("/reviews/:id", h.Reviews.Get)
	api.GET("/plans", h.Plans.ListPlans)

	// Secured routes
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ContextKey: identity.ContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return resolver.Authenticate(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid access token",
				Code:  "UNAUTHENTICATED",
			})
		},
	}))

	secured.GET("/me", h.Me.Profile)
	secured.DELETE("/me", h.Me.Delete)
	secured.GET("/me/entitlement", h.Me.Entitlement)

	secured.POST("/notices", h.Notices.Create)
	secured.PUT("/notices/:id", h.Notices.Update)
	secured.DELETE("/notices/:id", h.Notices.Delete)

	secured.GET("/inquiries", h.Inquiries.List)
	secured.POST("/inquiries", h.Inquiries.Create)
	secured.GET("/inquiries/:id", h.Inquiries.Get)
	secured.PUT("/inquiries/:id", h.Inquiries.Update)
	secured.DELETE("/inquiries/:id", h.Inquiries.Delete)
	secured.POST("/inquiries/:id/reply", h.Inquiries.Reply)

	secured.POST("/reviews", h.Reviews.Create)
	secured.PUT("/reviews/:id", h.Reviews.Update)
	secured.DELETE("/reviews/:id", h.Reviews.Delete)
	secured.GET("/users/:userId/reviews", h.Reviews.ListByUser)

	secured.GET("/plans/:id/features", h.Plans.GetFeatures)
	secured.PUT("/plans/:id/features", h.Plans.PutFeatures)

	admin := secured.Group("/admin")
	admin.GET("/users", h.Admin.List)
	admin.GET("/users/:userId", h.Admin.Get)
	admin.PATCH("/users/:userId/permissions", h.Admin.SetPermission)
	admin.PATCH("/users/:userId/plan", h.Admin.SetPlan)

	secured.POST("/payments", h.Payments.CreatePayment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
