package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"artisthub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockArtistRepository is a mock implementation of ArtistRepository.
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) Create(ctx context.Context, artist *model.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) Update(ctx context.Context, artist *model.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *MockArtistRepository) FindByStageName(ctx context.Context, stageName string) (*model.Artist, error) {
	args := m.Called(ctx, stageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *MockArtistRepository) List(ctx context.Context) ([]model.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Artist), args.Error(1)
}

func (m *MockArtistRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockArtistRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArtistRepository) SumFollowers(ctx context.Context, artistIDs []uuid.UUID) (int64, error) {
	args := m.Called(ctx, artistIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArtistRepository) SumStreams(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCampaignRepository is a mock implementation of CampaignRepository.
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, campaign *model.MarketingCampaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) Update(ctx context.Context, campaign *model.MarketingCampaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MarketingCampaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MarketingCampaign), args.Error(1)
}

func (m *MockCampaignRepository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.MarketingCampaign, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MarketingCampaign), args.Error(1)
}

func (m *MockCampaignRepository) CountActive(ctx context.Context, artistIDs []uuid.UUID) (int64, error) {
	args := m.Called(ctx, artistIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCampaignRepository) CountActiveCreatedBefore(ctx context.Context, artistIDs []uuid.UUID, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, artistIDs, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCampaignRepository) ListByTypeSince(ctx context.Context, artistIDs []uuid.UUID, campaignType model.CampaignType, since time.Time) ([]model.MarketingCampaign, error) {
	args := m.Called(ctx, artistIDs, campaignType, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MarketingCampaign), args.Error(1)
}

// MockRevenueRepository is a mock implementation of RevenueRepository.
type MockRevenueRepository struct {
	mock.Mock
}

func (m *MockRevenueRepository) Create(ctx context.Context, revenue *model.RevenueStream) error {
	args := m.Called(ctx, revenue)
	return args.Error(0)
}

func (m *MockRevenueRepository) Update(ctx context.Context, revenue *model.RevenueStream) error {
	args := m.Called(ctx, revenue)
	return args.Error(0)
}

func (m *MockRevenueRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.RevenueStream, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RevenueStream), args.Error(1)
}

func (m *MockRevenueRepository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.RevenueStream, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RevenueStream), args.Error(1)
}

func (m *MockRevenueRepository) ListConfirmedInRange(ctx context.Context, artistIDs []uuid.UUID, from, to time.Time) ([]model.RevenueStream, error) {
	args := m.Called(ctx, artistIDs, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RevenueStream), args.Error(1)
}

func (m *MockRevenueRepository) SumConfirmedBySource(ctx context.Context) (map[model.RevenueSource]decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.RevenueSource]decimal.Decimal), args.Error(1)
}

// MockActivityRepository is a mock implementation of ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *model.ActivityTimeline) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) Recent(ctx context.Context, artistID *uuid.UUID, limit int) ([]model.ActivityTimeline, error) {
	args := m.Called(ctx, artistID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityTimeline), args.Error(1)
}
