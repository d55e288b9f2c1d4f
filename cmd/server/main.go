package main

import (
	"context"
	"net/http"
	"os"

	_ "artisthub/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"artisthub/internal/auth"
	"artisthub/internal/cache"
	"artisthub/internal/config"
	"artisthub/internal/db"
	"artisthub/internal/handler"
	"artisthub/internal/model"
	"artisthub/internal/repository"
	"artisthub/internal/router"
	"artisthub/internal/service"
	"artisthub/pkg/logger"
)

// @title ArtistHub API
// @version 1.0
// @description Multi-role CRM for music-artist careers: profiles, campaigns, revenue, and role-aware dashboards.
// @host localhost:3001
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		logger.Get().Fatal().Err(err).Msg("load config")
	}
	logger.Init(logger.Options{
		Level:  cfg.App.LogLevel,
		Pretty: !cfg.IsProduction(),
	})
	log := logger.Get()

	gormDB, err := db.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	models := []interface{}{
		&model.User{},
		&model.Artist{},
		&model.TeamMembership{},
		&model.MarketingCampaign{},
		&model.RevenueStream{},
		&model.ActivityTimeline{},
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
		for i := len(models) - 1; i >= 0; i-- {
			if err := gormDB.Migrator().DropTable(models[i]); err != nil {
				log.Warn().Err(err).Msg("drop table (may not exist)")
			}
		}
	}

	if err := gormDB.AutoMigrate(models...); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)

	userRepo := repository.NewUserRepository(gormDB)
	artistRepo := repository.NewArtistRepository(gormDB)
	membershipRepo := repository.NewMembershipRepository(gormDB)
	campaignRepo := repository.NewCampaignRepository(gormDB)
	revenueRepo := repository.NewRevenueRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	tokenStore := auth.NewTokenStore(cacheClient)

	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cfg.Security.BcryptRounds)
	dashboardService := service.NewDashboardService(campaignRepo, revenueRepo, artistRepo)
	activityService := service.NewActivityService(activityRepo)
	artistService := service.NewArtistService(artistRepo, revenueRepo)
	campaignService := service.NewCampaignService(campaignRepo, artistRepo, activityRepo)
	revenueService := service.NewRevenueService(revenueRepo, artistRepo, activityRepo)

	authHandler := handler.NewAuthHandler(authService, jwtService.AccessExpirySeconds())
	dashboardHandler := handler.NewDashboardHandler(dashboardService, activityService, artistRepo)
	artistHandler := handler.NewArtistHandler(artistService)
	campaignHandler := handler.NewCampaignHandler(campaignService)
	revenueHandler := handler.NewRevenueHandler(revenueService)
	activityHandler := handler.NewActivityHandler(activityService)

	e := echo.New()
	router.Register(
		e,
		cfg,
		authHandler,
		dashboardHandler,
		artistHandler,
		campaignHandler,
		revenueHandler,
		activityHandler,
		userRepo,
		membershipRepo,
	)

	log.Info().
		Str("env", cfg.App.Env).
		Str("port", cfg.App.Port).
		Msgf("%s listening", cfg.App.Name)

	if err := e.Start(":" + cfg.App.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
