package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/safari-for-safety/roadkill-api/internal/models"
)

var reportColumns = []string{
	"id", "user_id", "animal_type", "location_address", "latitude", "longitude",
	"incident_date", "incident_time", "description", "photo_url", "status",
	"temperature", "precipitation", "wind_speed", "humidity", "weather_condition", "created_at",
}

func reportRow(id, userID int64, animal, status string) []driverValue {
	return []driverValue{
		id, userID, animal, "경기 부천시 원미구", 37.49, 126.78,
		time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC), nil, nil, nil, status,
		nil, nil, nil, nil, nil, time.Now(),
	}
}

type driverValue = driver.Value

func TestReportRepositoryListWithStatusFilter(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	columns := append(append([]string{}, reportColumns...), "username")
	rows := sqlmock.NewRows(columns).
		AddRow(append(reportRow(1, 3, "고라니", "approved"), "jihoon")...)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.status = $1")).
		WithArgs("approved", 100, 0).
		WillReturnRows(rows)

	reports, err := repo.List(context.Background(), models.ReportFilter{Status: "approved"})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.NotNil(t, reports[0].Username)
	require.Equal(t, "jihoon", *reports[0].Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.id = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryCreateReturnsStoredRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	rows := sqlmock.NewRows(reportColumns).
		AddRow(reportRow(5, 3, "고라니", "approved")...)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO roadkill_reports")).
		WillReturnRows(rows)

	report := &models.Report{
		UserID:          3,
		AnimalType:      "고라니",
		LocationAddress: "경기 부천시 원미구",
		Latitude:        37.49,
		Longitude:       126.78,
		IncidentDate:    time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
		Status:          models.ReportStatusApproved,
	}
	stored, err := repo.Create(context.Background(), report)
	require.NoError(t, err)
	require.Equal(t, int64(5), stored.ID)
	require.Equal(t, models.ReportStatusApproved, stored.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	rows := sqlmock.NewRows(reportColumns).
		AddRow(reportRow(5, 3, "고라니", "rejected")...)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE roadkill_reports SET status = $1 WHERE id = $2")).
		WithArgs(models.ReportStatusRejected, int64(5)).
		WillReturnRows(rows)

	report, err := repo.UpdateStatus(context.Background(), 5, models.ReportStatusRejected)
	require.NoError(t, err)
	require.Equal(t, models.ReportStatusRejected, report.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM roadkill_reports WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryAnimalTypeExists(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("LOWER(TRIM(species_name)) = LOWER(TRIM($1))")).
		WithArgs(" 고라니 ").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.AnimalTypeExists(context.Background(), " 고라니 ")
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryCountByRegionTokenFiltersRejected(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	rows := sqlmock.NewRows([]string{"bucket", "count"}).AddRow("경기", 2)
	mock.ExpectQuery(regexp.QuoteMeta("(status = 'approved' OR status = 'pending')")).
		WillReturnRows(rows)

	counts, err := repo.CountByRegionToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.BucketCount{{Bucket: "경기", Count: 2}}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}
