package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/safari-for-safety/roadkill-api/internal/models"
	"github.com/safari-for-safety/roadkill-api/internal/service"
	"github.com/safari-for-safety/roadkill-api/pkg/config"
)

type fakeStatsRepo struct{}

func (f *fakeStatsRepo) National(ctx context.Context) ([]models.RoadkillStat, error) {
	return nil, nil
}

func (f *fakeStatsRepo) ByProvince(ctx context.Context, province string) ([]models.RoadkillStat, error) {
	return nil, nil
}

func (f *fakeStatsRepo) ByCity(ctx context.Context, province, city string) ([]models.RoadkillStat, error) {
	return nil, nil
}

func (f *fakeStatsRepo) NationalTotal(ctx context.Context) (int, error) { return 42, nil }

func (f *fakeStatsRepo) TopAnimals(ctx context.Context, limit int) ([]models.RoadkillStat, error) {
	return []models.RoadkillStat{{AnimalType: "고라니", IncidentCount: 30}}, nil
}

func TestRouterMountsStatisticsGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Env: "test", APIPrefix: "/api"}
	r := NewRouter(cfg, zap.NewNop(), Services{
		Stats: service.NewStatsService(&fakeStatsRepo{}, nil),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/statistics/summary", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			TotalIncidents int `json:"total_incidents"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, 42, body.Data.TotalIncidents)

	for _, path := range []string{
		"/api/statistics/animals",
		"/api/statistics/animals/%EA%B2%BD%EA%B8%B0",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats/summary", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
