package main

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"artisthub/internal/config"
	"artisthub/internal/db"
	"artisthub/internal/model"
	"artisthub/pkg/logger"
)

const seedPassword = "password123"

type seedUser struct {
	Email     string
	FirstName string
	LastName  string
	Role      model.Role
}

var seedUsers = []seedUser{
	{"marie.dubois@artisthub.com", "Marie", "Dubois", model.RoleMarketingManager},
	{"sarah.lopez@music.com", "Sarah", "Lopez", model.RoleArtist},
	{"mike.dj@electronic.com", "Mike", "Johnson", model.RoleArtist},
	{"pierre.martin@touring.com", "Pierre", "Martin", model.RoleTourManager},
	{"sophie.bernard@financial.com", "Sophie", "Bernard", model.RoleFinancialManager},
}

func main() {
	logger.Init(logger.Options{Pretty: true})
	log := logger.Get()
	log.Info().Msg("starting seed script")

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	gormDB, err := db.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Artist{},
		&model.TeamMembership{},
		&model.MarketingCampaign{},
		&model.RevenueStream{},
		&model.ActivityTimeline{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), cfg.Security.BcryptRounds)
	if err != nil {
		log.Fatal().Err(err).Msg("hash seed password")
	}

	users := make(map[string]*model.User, len(seedUsers))
	for _, su := range seedUsers {
		user, err := upsertUser(gormDB, su, string(hash))
		if err != nil {
			log.Fatal().Err(err).Str("email", su.Email).Msg("seed user")
		}
		users[su.Email] = user
		log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("user ready")
	}

	sarah, err := upsertArtist(gormDB, &model.Artist{
		UserID:           users["sarah.lopez@music.com"].ID,
		StageName:        "Sarah Lopez",
		Bio:              "Chanteuse pop aux influences latines.",
		Genre:            "Pop",
		InstagramHandle:  "@sarahlopezmusic",
		TiktokHandle:     "@sarahlopez",
		Location:         "Paris, France",
		IsVerified:       true,
		TotalFollowers:   31250,
		TotalStreams:     1850000,
		TotalRevenue:     decimal.NewFromFloat(12450.75),
		MonthlyListeners: 98000,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed artist Sarah Lopez")
	}

	mike, err := upsertArtist(gormDB, &model.Artist{
		UserID:           users["mike.dj@electronic.com"].ID,
		StageName:        "DJ Mike",
		Bio:              "Producteur électro, résident des clubs parisiens.",
		Genre:            "Electronic",
		InstagramHandle:  "@djmikeofficial",
		Location:         "Lyon, France",
		TotalFollowers:   22800,
		TotalStreams:     920000,
		TotalRevenue:     decimal.NewFromFloat(6890.50),
		MonthlyListeners: 45000,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed artist DJ Mike")
	}

	memberships := []model.TeamMembership{
		{UserID: users["marie.dubois@artisthub.com"].ID, ArtistID: sarah.ID, Role: model.RoleMarketingManager, IsActive: true},
		{UserID: users["marie.dubois@artisthub.com"].ID, ArtistID: mike.ID, Role: model.RoleMarketingManager, IsActive: true},
		{UserID: users["pierre.martin@touring.com"].ID, ArtistID: sarah.ID, Role: model.RoleTourManager, IsActive: true},
		{UserID: users["sophie.bernard@financial.com"].ID, ArtistID: sarah.ID, Role: model.RoleFinancialManager, IsActive: true},
		{UserID: users["sophie.bernard@financial.com"].ID, ArtistID: mike.ID, Role: model.RoleFinancialManager, IsActive: true},
		{UserID: users["sarah.lopez@music.com"].ID, ArtistID: sarah.ID, Role: model.RoleArtist, IsActive: true},
		{UserID: users["mike.dj@electronic.com"].ID, ArtistID: mike.ID, Role: model.RoleArtist, IsActive: true},
	}
	for _, m := range memberships {
		if err := upsertMembership(gormDB, m); err != nil {
			log.Fatal().Err(err).Msg("seed membership")
		}
	}

	marie := users["marie.dubois@artisthub.com"]
	sophie := users["sophie.bernard@financial.com"]
	now := time.Now()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	campaigns := []model.MarketingCampaign{
		{
			ArtistID:    sarah.ID,
			CreatedBy:   marie.ID,
			Name:        "Lancement single été",
			Description: "Campagne email et réseaux pour le nouveau single.",
			Type:        model.CampaignTypeEmail,
			Status:      model.CampaignStatusActive,
			Budget:      decimal.NewFromInt(5000),
			SpentAmount: decimal.NewFromFloat(2350.40),
			StartDate:   now.AddDate(0, 0, -12),
			Goals:       model.JSONMap{"sent": 15000, "opened": 5000},
			Metrics:     model.JSONMap{"sent": 12450, "opened": 4980},
		},
		{
			ArtistID:    sarah.ID,
			CreatedBy:   marie.ID,
			Name:        "Teasing clip",
			Type:        model.CampaignTypeSocial,
			Status:      model.CampaignStatusActive,
			Budget:      decimal.NewFromInt(2500),
			SpentAmount: decimal.NewFromFloat(980.00),
			StartDate:   now.AddDate(0, 0, -5),
			Goals:       model.JSONMap{"impressions": 200000},
			Metrics:     model.JSONMap{"impressions": 145000},
		},
		{
			ArtistID:    mike.ID,
			CreatedBy:   marie.ID,
			Name:        "Newsletter clubs",
			Type:        model.CampaignTypeEmail,
			Status:      model.CampaignStatusCompleted,
			Budget:      decimal.NewFromInt(1200),
			SpentAmount: decimal.NewFromInt(1200),
			StartDate:   now.AddDate(0, -1, 0),
			Goals:       model.JSONMap{"sent": 8000, "opened": 2000},
			Metrics:     model.JSONMap{"sent": 8200, "opened": 1950},
		},
	}
	for _, c := range campaigns {
		if err := upsertCampaign(gormDB, c); err != nil {
			log.Fatal().Err(err).Str("name", c.Name).Msg("seed campaign")
		}
	}

	revenues := []model.RevenueStream{
		{ArtistID: sarah.ID, CreatedBy: sophie.ID, Source: model.RevenueSourceStreaming, Platform: "Spotify",
			Amount: decimal.NewFromFloat(3420.50), Currency: "EUR", Date: thisMonth.AddDate(0, 0, 4),
			Status: model.RevenueStatusConfirmed, Description: "Royalties streaming mensuelles"},
		{ArtistID: sarah.ID, CreatedBy: sophie.ID, Source: model.RevenueSourceLivePerformance,
			Amount: decimal.NewFromFloat(1850.00), Currency: "EUR", Date: thisMonth.AddDate(0, 0, 9),
			Status: model.RevenueStatusConfirmed, Description: "Concert Olympia"},
		{ArtistID: mike.ID, CreatedBy: sophie.ID, Source: model.RevenueSourceStreaming, Platform: "Apple Music",
			Amount: decimal.NewFromFloat(530.75), Currency: "EUR", Date: thisMonth.AddDate(0, 0, 2),
			Status: model.RevenueStatusConfirmed},
		{ArtistID: sarah.ID, CreatedBy: sophie.ID, Source: model.RevenueSourceMerchandise,
			Amount: decimal.NewFromFloat(640.00), Currency: "EUR", Date: lastMonth.AddDate(0, 0, 15),
			Status: model.RevenueStatusConfirmed, Description: "Ventes merchandising"},
		{ArtistID: mike.ID, CreatedBy: sophie.ID, Source: model.RevenueSourceLivePerformance,
			Amount: decimal.NewFromFloat(2200.00), Currency: "EUR", Date: lastMonth.AddDate(0, 0, 20),
			Status: model.RevenueStatusConfirmed, Description: "Set festival"},
		{ArtistID: sarah.ID, CreatedBy: sophie.ID, Source: model.RevenueSourceSyncLicensing,
			Amount: decimal.NewFromFloat(750.00), Currency: "EUR", Date: thisMonth.AddDate(0, 0, 6),
			Status: model.RevenueStatusPending, Description: "Licence publicité"},
	}
	for _, r := range revenues {
		if err := upsertRevenue(gormDB, r); err != nil {
			log.Fatal().Err(err).Msg("seed revenue")
		}
	}

	activities := []model.ActivityTimeline{
		{ArtistID: sarah.ID, CreatedBy: marie.ID, Type: model.ActivityCampaignLaunch,
			Action: "Campagne lancée", Description: "Lancement single été",
			Priority: model.PriorityHigh, Status: model.ActivityStatusSuccess, IsPublic: true},
		{ArtistID: sarah.ID, CreatedBy: sophie.ID, Type: model.ActivityRevenueReceived,
			Action: "Revenus reçus", Description: "3 420,50 € (streaming)",
			Priority: model.PriorityMedium, Status: model.ActivityStatusSuccess, IsPublic: true},
		{ArtistID: mike.ID, CreatedBy: marie.ID, Type: model.ActivityEmailSent,
			Action: "Newsletter envoyée", Description: "Newsletter clubs",
			Priority: model.PriorityLow, Status: model.ActivityStatusInfo, IsPublic: true},
		{ArtistID: sarah.ID, CreatedBy: marie.ID, Type: model.ActivityTeamInvite,
			Action: "Membre invité",
			Priority: model.PriorityMedium, Status: model.ActivityStatusInfo, IsPublic: true},
	}
	for _, a := range activities {
		if err := upsertActivity(gormDB, a); err != nil {
			log.Fatal().Err(err).Msg("seed activity")
		}
	}

	log.Info().Msg("seed completed")
}

func upsertUser(gormDB *gorm.DB, su seedUser, passwordHash string) (*model.User, error) {
	var user model.User
	err := gormDB.Where("email = ?", su.Email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	user = model.User{
		Email:           su.Email,
		FirstName:       su.FirstName,
		LastName:        su.LastName,
		PasswordHash:    passwordHash,
		Role:            su.Role,
		IsActive:        true,
		IsEmailVerified: true,
		Timezone:        "Europe/Paris",
	}
	if err := gormDB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func upsertArtist(gormDB *gorm.DB, artist *model.Artist) (*model.Artist, error) {
	var existing model.Artist
	err := gormDB.Where("stage_name = ?", artist.StageName).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := gormDB.Create(artist).Error; err != nil {
		return nil, err
	}
	return artist, nil
}

func upsertMembership(gormDB *gorm.DB, m model.TeamMembership) error {
	var existing model.TeamMembership
	err := gormDB.Where("user_id = ? AND artist_id = ?", m.UserID, m.ArtistID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gormDB.Create(&m).Error
}

func upsertCampaign(gormDB *gorm.DB, c model.MarketingCampaign) error {
	var existing model.MarketingCampaign
	err := gormDB.Where("artist_id = ? AND name = ?", c.ArtistID, c.Name).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gormDB.Create(&c).Error
}

func upsertRevenue(gormDB *gorm.DB, r model.RevenueStream) error {
	var existing model.RevenueStream
	err := gormDB.Where("artist_id = ? AND source = ? AND date = ? AND amount = ?",
		r.ArtistID, r.Source, r.Date, r.Amount).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gormDB.Create(&r).Error
}

func upsertActivity(gormDB *gorm.DB, a model.ActivityTimeline) error {
	var existing model.ActivityTimeline
	err := gormDB.Where("artist_id = ? AND type = ? AND action = ? AND description = ?",
		a.ArtistID, a.Type, a.Action, a.Description).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gormDB.Create(&a).Error
}
