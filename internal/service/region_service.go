package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/safari-for-safety/roadkill-api/internal/models"
	appErrors "github.com/safari-for-safety/roadkill-api/pkg/errors"
)

type regionRepository interface {
	ListProvinces(ctx context.Context) ([]string, error)
	ListCities(ctx context.Context, province string) ([]models.Region, error)
	ListAll(ctx context.Context) ([]models.Region, error)
	Nearest(ctx context.Context, latitude, longitude float64) (*models.NearestRegion, error)
}

// RegionService exposes the administrative-region lookups.
type RegionService struct {
	repo      regionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRegionService constructs a RegionService.
func NewRegionService(repo regionRepository, validate *validator.Validate, logger *zap.Logger) *RegionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegionService{repo: repo, validator: validate, logger: logger}
}

// Provinces lists the distinct province names.
func (s *RegionService) Provinces(ctx context.Context) ([]string, error) {
	provinces, err := s.repo.ListProvinces(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list provinces")
	}
	return provinces, nil
}

// Cities lists a province's cities with their centroids.
func (s *RegionService) Cities(ctx context.Context, province string) ([]models.Region, error) {
	if province == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "province is required")
	}
	regions, err := s.repo.ListCities(ctx, province)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list cities")
	}
	return regions, nil
}

// Hierarchy groups every region row by province, preserving the repository's
// province-then-city ordering.
func (s *RegionService) Hierarchy(ctx context.Context) ([]models.ProvinceGroup, error) {
	regions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list regions")
	}

	groups := make([]models.ProvinceGroup, 0)
	index := make(map[string]int)
	for _, region := range regions {
		i, ok := index[region.Province]
		if !ok {
			groups = append(groups, models.ProvinceGroup{Province: region.Province, Cities: []models.CityInfo{}})
			i = len(groups) - 1
			index[region.Province] = i
		}
		if region.City == nil {
			continue
		}
		groups[i].Cities = append(groups[i].Cities, models.CityInfo{
			City:        *region.City,
			Latitude:    region.Latitude,
			Longitude:   region.Longitude,
			FullAddress: region.FullAddress,
		})
	}
	return groups, nil
}

// ReverseGeocode finds the region nearest to the coordinate and formats the
// distance for display. An empty region table yields not-found rather than an
// arbitrary answer.
func (s *RegionService) ReverseGeocode(ctx context.Context, req models.ReverseGeocodeRequest) (*models.ReverseGeocodeResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "latitude and longitude are required")
	}

	nearest, err := s.repo.Nearest(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no region data available")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to find nearest region")
	}

	return &models.ReverseGeocodeResult{
		Province:    nearest.Province,
		City:        nearest.City,
		Latitude:    nearest.Latitude,
		Longitude:   nearest.Longitude,
		FullAddress: nearest.FullAddress,
		Distance:    fmt.Sprintf("%.2f km", nearest.Distance),
	}, nil
}
