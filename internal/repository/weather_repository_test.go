package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestWeatherRepositoryListDefaultsAndTotal(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewWeatherRepository(db)
	columns := []string{
		"id", "station_number", "station_name", "observation_date", "avg_temperature",
		"precipitation", "avg_wind_speed", "sunshine_hours", "total_cloud_cover",
		"precipitation_duration", "humidity",
	}
	rows := sqlmock.NewRows(columns).
		AddRow(int64(1), 108, "서울", time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC), 18.2, nil, 2.1, nil, nil, nil, 61.0)
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(100, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM weather_data")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4215))

	observations, total, err := repo.List(context.Background(), 0, -3)
	require.NoError(t, err)
	require.Len(t, observations, 1)
	require.Equal(t, 4215, total)
	require.Equal(t, 108, observations[0].StationNumber)
	require.Nil(t, observations[0].Precipitation)
	require.NoError(t, mock.ExpectationsWereMet())
}
