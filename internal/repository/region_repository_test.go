package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestRegionRepositoryListProvinces(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRegionRepository(db)
	rows := sqlmock.NewRows([]string{"province"}).AddRow("강원").AddRow("경기")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT province FROM regions ORDER BY province")).
		WillReturnRows(rows)

	provinces, err := repo.ListProvinces(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"강원", "경기"}, provinces)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionRepositoryListCities(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRegionRepository(db)
	rows := sqlmock.NewRows([]string{"id", "province", "city", "latitude", "longitude", "full_address"}).
		AddRow(int64(1), "경기", "부천시", 37.49, 126.78, "경기 부천시")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE province = $1 AND city IS NOT NULL")).
		WithArgs("경기").
		WillReturnRows(rows)

	regions, err := repo.ListCities(context.Background(), "경기")
	require.NoError(t, err)
	require.Len(t, regions, 1)
	require.NotNil(t, regions[0].City)
	require.Equal(t, "부천시", *regions[0].City)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionRepositoryNearest(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRegionRepository(db)
	rows := sqlmock.NewRows([]string{"province", "city", "latitude", "longitude", "full_address", "distance"}).
		AddRow("경기", "부천시", 37.49, 126.78, "경기 부천시", 1.2345)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY distance")).
		WithArgs(37.5, 126.8).
		WillReturnRows(rows)

	region, err := repo.Nearest(context.Background(), 37.5, 126.8)
	require.NoError(t, err)
	require.Equal(t, "경기", region.Province)
	require.InDelta(t, 1.2345, region.Distance, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionRepositoryNearestEmptyTable(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRegionRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY distance")).
		WithArgs(37.5, 126.8).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Nearest(context.Background(), 37.5, 126.8)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
