package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "artisthub/internal/errors"
	"artisthub/internal/model"
	"artisthub/internal/repository"
)

// StatisticsOverview is the cross-artist rollup shown on the landing page.
type StatisticsOverview struct {
	TotalRevenue    string            `json:"totalRevenue"`
	TotalStreams    string            `json:"totalStreams"`
	TotalArtists    int64             `json:"totalArtists"`
	RevenueBySource map[string]string `json:"revenueBySource"`
}

// ArtistService exposes artist roster reads and the statistics overview.
type ArtistService interface {
	List(ctx context.Context) ([]model.Artist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	StatisticsOverview(ctx context.Context) (*StatisticsOverview, error)
}

type artistService struct {
	artistRepo  repository.ArtistRepository
	revenueRepo repository.RevenueRepository
}

// NewArtistService creates a new artist service.
func NewArtistService(artistRepo repository.ArtistRepository, revenueRepo repository.RevenueRepository) ArtistService {
	return &artistService{artistRepo: artistRepo, revenueRepo: revenueRepo}
}

func (s *artistService) List(ctx context.Context) ([]model.Artist, error) {
	return s.artistRepo.List(ctx)
}

func (s *artistService) GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	artist, err := s.artistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}
	return artist, nil
}

// StatisticsOverview fans out the independent rollup queries. The reads are
// not taken from a single snapshot.
func (s *artistService) StatisticsOverview(ctx context.Context) (*StatisticsOverview, error) {
	var (
		artistCount int64
		streams     int64
		bySource    map[model.RevenueSource]decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		artistCount, err = s.artistRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		streams, err = s.artistRepo.SumStreams(gctx)
		return err
	})
	g.Go(func() (err error) {
		bySource, err = s.revenueRepo.SumConfirmedBySource(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := decimal.Zero
	sourceLabels := make(map[string]string, len(bySource))
	for source, amount := range bySource {
		total = total.Add(amount)
		sourceLabels[string(source)] = formatEuro(amount)
	}

	return &StatisticsOverview{
		TotalRevenue:    formatEuro(total),
		TotalStreams:    formatCount(streams),
		TotalArtists:    artistCount,
		RevenueBySource: sourceLabels,
	}, nil
}
