package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"artisthub/internal/auth"
	"artisthub/internal/config"
	apperrors "artisthub/internal/errors"
	"artisthub/internal/handler"
	"artisthub/internal/metrics"
	"artisthub/internal/repository"
	"artisthub/pkg/logger"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	artistHandler *handler.ArtistHandler,
	campaignHandler *handler.CampaignHandler,
	revenueHandler *handler.RevenueHandler,
	activityHandler *handler.ActivityHandler,
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
) {
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(cfg)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.App.CORSOrigin, ","),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			timer := prometheus.NewTimer(metrics.HTTPDuration.WithLabelValues(c.Request().Method, c.Path()))
			defer timer.ObserveDuration()
			return next(c)
		}
	})
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStore(
			rate.Limit(float64(cfg.Security.RateLimitMaxReqs) / cfg.Security.RateLimitWindow().Seconds()),
		),
	}))

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(cfg.App.APIPrefix)

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes
	secured := api.Group("", JWTMiddleware(cfg.JWT.Secret), handler.AuthContext(userRepo, membershipRepo))

	secured.GET("/auth/me", authHandler.Me)

	secured.GET("/dashboard/metrics", dashboardHandler.Metrics)
	secured.GET("/dashboard/activities", dashboardHandler.Activities)
	secured.GET("/dashboard/quick-actions", dashboardHandler.QuickActions)
	secured.GET("/dashboard/user-profile", dashboardHandler.UserProfile)

	secured.GET("/artists", artistHandler.List)
	secured.GET("/artists/:id", artistHandler.Get)
	secured.GET("/statistics/overview", artistHandler.StatisticsOverview)

	secured.POST("/campaigns", campaignHandler.Create)
	secured.GET("/campaigns/:id", campaignHandler.Get)
	secured.PUT("/campaigns/:id", campaignHandler.Update)
	secured.GET("/artists/:artistId/campaigns", campaignHandler.ListByArtist)
	secured.POST("/artists/:artistId/campaigns", campaignHandler.Create)

	secured.POST("/revenue", revenueHandler.Create)
	secured.GET("/revenue/:id", revenueHandler.Get)
	secured.GET("/artists/:artistId/revenue", revenueHandler.ListByArtist)
	secured.POST("/artists/:artistId/revenue", revenueHandler.Create)

	secured.GET("/activities", activityHandler.List)
	secured.POST("/activities", activityHandler.Create)
	secured.POST("/artists/:artistId/activities", activityHandler.Create)
}

// JWTMiddleware validates bearer tokens and hydrates typed claims for the
// secured route group.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		TokenLookup: "header:" + echo.HeaderAuthorization,
	})
}

// ErrorHandler renders every error through the failure envelope. Internal
// error details are only exposed outside production.
func ErrorHandler(cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status  int
			payload handler.ErrorResponse
		)
		if echoErr, ok := err.(*echo.HTTPError); ok {
			status = echoErr.Code
			switch msg := echoErr.Message.(type) {
			case handler.ErrorResponse:
				payload = msg
			case string:
				payload = handler.ErrorResponse{Error: msg}
			default:
				payload = handler.ErrorResponse{Error: http.StatusText(status)}
			}
		} else {
			httpErr := apperrors.MapErrorToHTTP(err)
			status = httpErr.StatusCode
			payload = handler.ErrorResponse{
				Error: httpErr.Message,
				Code:  httpErr.Code,
			}
			if len(httpErr.Details) > 0 {
				payload.Details = httpErr.Details
			}
			if status == http.StatusInternalServerError {
				logger.Get().Error().Err(err).
					Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
					Msg("request failed")
				if cfg.App.Env == "production" {
					payload.Error = "internal server error"
				}
			}
		}
		payload.Success = false

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, payload)
	}
}

// CustomValidator wraps validator for Echo and converts field failures into
// the 422 validation envelope.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the echo.Validator used by Register.
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		details := make([]apperrors.FieldError, 0, len(ve))
		for _, fe := range ve {
			details = append(details, apperrors.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		return apperrors.NewValidationError(details)
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
