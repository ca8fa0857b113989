package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/safari-for-safety/roadkill-api/internal/models"
)

var incidentColumns = []string{
	"id", "serial_number", "incident_date", "incident_time", "jurisdiction",
	"latitude", "longitude", "created_at",
}

func TestIncidentRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewIncidentRepository(db)
	date := time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(incidentColumns).
		AddRow(int64(1), "RK-001", date, "08:30", "경기 부천시", 37.5, 126.8, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, serial_number, incident_date, incident_time, jurisdiction, latitude, longitude, created_at")).
		WillReturnRows(rows)

	incidents, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	require.Equal(t, "RK-001", incidents[0].SerialNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncidentRepositoryListByRegionUsesPattern(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewIncidentRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE jurisdiction ILIKE $1")).
		WithArgs("%부천%").
		WillReturnRows(sqlmock.NewRows(incidentColumns))

	incidents, err := repo.ListByRegion(context.Background(), "부천")
	require.NoError(t, err)
	require.Empty(t, incidents)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncidentRepositoryCountByRegionToken(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewIncidentRepository(db)
	rows := sqlmock.NewRows([]string{"bucket", "count"}).
		AddRow("경기", 12).
		AddRow("강원", 4)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT SPLIT_PART(jurisdiction, ' ', 1) AS bucket, COUNT(*) AS count")).
		WillReturnRows(rows)

	counts, err := repo.CountByRegionToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.BucketCount{{Bucket: "경기", Count: 12}, {Bucket: "강원", Count: 4}}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncidentRepositoryCountByMonthRange(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewIncidentRepository(db)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"bucket", "count"}).AddRow("2023-05", 9)
	mock.ExpectQuery(regexp.QuoteMeta("AND incident_date >= $1 AND incident_date <= $2")).
		WithArgs(start, end).
		WillReturnRows(rows)

	counts, err := repo.CountByMonth(context.Background(), models.DateRange{Start: &start, End: &end})
	require.NoError(t, err)
	require.Len(t, counts, 1)
	require.Equal(t, "2023-05", counts[0].Bucket)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncidentRepositoryCountByMonthUnbounded(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewIncidentRepository(db)
	rows := sqlmock.NewRows([]string{"bucket", "count"}).
		AddRow("2023-01", 3).
		AddRow("2023-02", 5)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT TO_CHAR(incident_date, 'YYYY-MM') AS bucket, COUNT(*) AS count")).
		WillReturnRows(rows)

	counts, err := repo.CountByMonth(context.Background(), models.DateRange{})
	require.NoError(t, err)
	require.Len(t, counts, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}
