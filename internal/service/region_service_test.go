package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/safari-for-safety/roadkill-api/internal/models"
	appErrors "github.com/safari-for-safety/roadkill-api/pkg/errors"
)

type mockRegionRepo struct {
	provinces  []string
	cities     []models.Region
	all        []models.Region
	nearest    *models.NearestRegion
	nearestErr error
}

func (m *mockRegionRepo) ListProvinces(ctx context.Context) ([]string, error) {
	return m.provinces, nil
}

func (m *mockRegionRepo) ListCities(ctx context.Context, province string) ([]models.Region, error) {
	return m.cities, nil
}

func (m *mockRegionRepo) ListAll(ctx context.Context) ([]models.Region, error) {
	return m.all, nil
}

func (m *mockRegionRepo) Nearest(ctx context.Context, latitude, longitude float64) (*models.NearestRegion, error) {
	if m.nearestErr != nil {
		return nil, m.nearestErr
	}
	return m.nearest, nil
}

func TestHierarchyGroupsByProvince(t *testing.T) {
	bucheon, wonju := "부천시", "원주시"
	repo := &mockRegionRepo{all: []models.Region{
		{Province: "강원", City: &wonju, Latitude: 37.3, Longitude: 127.9, FullAddress: "강원 원주시"},
		{Province: "경기", City: &bucheon, Latitude: 37.5, Longitude: 126.8, FullAddress: "경기 부천시"},
		{Province: "세종", City: nil, Latitude: 36.5, Longitude: 127.3, FullAddress: "세종특별자치시"},
	}}
	svc := NewRegionService(repo, nil, nil)

	groups, err := svc.Hierarchy(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)
	require.Equal(t, "강원", groups[0].Province)
	require.Len(t, groups[0].Cities, 1)
	require.Equal(t, "원주시", groups[0].Cities[0].City)
	// a province with no city rows still appears, with an empty list
	require.Equal(t, "세종", groups[2].Province)
	require.Empty(t, groups[2].Cities)
}

func TestReverseGeocodeFormatsDistance(t *testing.T) {
	bucheon := "부천시"
	repo := &mockRegionRepo{nearest: &models.NearestRegion{
		Province: "경기", City: &bucheon, Latitude: 37.49, Longitude: 126.78,
		FullAddress: "경기 부천시", Distance: 1.23456,
	}}
	svc := NewRegionService(repo, nil, nil)

	result, err := svc.ReverseGeocode(context.Background(), models.ReverseGeocodeRequest{
		Latitude:  floatptr(37.5),
		Longitude: floatptr(126.8),
	})
	require.NoError(t, err)
	require.Equal(t, "1.23 km", result.Distance)
	require.Equal(t, "경기", result.Province)
}

func TestReverseGeocodeRequiresCoordinates(t *testing.T) {
	svc := NewRegionService(&mockRegionRepo{}, nil, nil)

	_, err := svc.ReverseGeocode(context.Background(), models.ReverseGeocodeRequest{Latitude: floatptr(37.5)})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReverseGeocodeEmptyTable(t *testing.T) {
	svc := NewRegionService(&mockRegionRepo{nearestErr: sql.ErrNoRows}, nil, nil)

	_, err := svc.ReverseGeocode(context.Background(), models.ReverseGeocodeRequest{
		Latitude:  floatptr(37.5),
		Longitude: floatptr(126.8),
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
