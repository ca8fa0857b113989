package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/safari-for-safety/roadkill-api/internal/middleware"
	"github.com/safari-for-safety/roadkill-api/internal/models"
	"github.com/safari-for-safety/roadkill-api/internal/service"
)

type fakeReportRepo struct {
	byID *models.Report
}

func (f *fakeReportRepo) List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	return nil, nil
}

func (f *fakeReportRepo) FindByID(ctx context.Context, id int64) (*models.Report, error) {
	return f.byID, nil
}

func (f *fakeReportRepo) ListByUser(ctx context.Context, userID int64) ([]models.Report, error) {
	return nil, nil
}

func (f *fakeReportRepo) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	stored := *report
	stored.ID = 1
	return &stored, nil
}

func (f *fakeReportRepo) UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) (*models.Report, error) {
	updated := *f.byID
	updated.Status = status
	return &updated, nil
}

func (f *fakeReportRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeReportRepo) AnimalTypeExists(ctx context.Context, animalType string) (bool, error) {
	return true, nil
}

func newReportTestRouter(repo *fakeReportRepo, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReportHandler(service.NewReportService(repo, nil, nil, nil))

	r := gin.New()
	authed := r.Group("", func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: userID, Username: "jihoon"})
	})
	authed.POST("/reports", h.Create)
	authed.DELETE("/reports/:id", h.Delete)
	return r
}

func TestReportHandlerCreateReturnsEnvelope(t *testing.T) {
	router := newReportTestRouter(&fakeReportRepo{}, 3)

	body := `{"animal_type":"고라니","location_address":"경기 부천시","latitude":37.49,"longitude":126.78,"incident_date":"2023-05-14"}`
	req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool                   `json:"success"`
		Data    models.Report          `json:"data"`
		Meta    map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	require.Equal(t, models.ReportStatusApproved, envelope.Data.Status)
	require.Equal(t, false, envelope.Meta["isNewAnimal"])
}

func TestReportHandlerDeleteForbiddenForNonOwner(t *testing.T) {
	repo := &fakeReportRepo{byID: &models.Report{
		ID: 5, UserID: 99, AnimalType: "고라니",
		IncidentDate: time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
	}}
	router := newReportTestRouter(repo, 3)

	req := httptest.NewRequest(http.MethodDelete, "/reports/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.False(t, envelope.Success)
}

func TestReportHandlerDeleteRejectsBadID(t *testing.T) {
	router := newReportTestRouter(&fakeReportRepo{}, 3)

	req := httptest.NewRequest(http.MethodDelete, "/reports/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
