package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/safari-for-safety/roadkill-api/internal/models"
	appErrors "github.com/safari-for-safety/roadkill-api/pkg/errors"
)

// statsCachePattern invalidates every cached aggregation when report data
// changes.
const statsCachePattern = "stats:*"

type reportRepository interface {
	List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	FindByID(ctx context.Context, id int64) (*models.Report, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Report, error)
	Create(ctx context.Context, report *models.Report) (*models.Report, error)
	UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) (*models.Report, error)
	Delete(ctx context.Context, id int64) error
	AnimalTypeExists(ctx context.Context, animalType string) (bool, error)
}

// ReportService implements the user-report lifecycle.
type ReportService struct {
	repo      reportRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(repo reportRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *ReportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns reports visible to the public listing, optionally filtered by
// status.
func (s *ReportService) List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	if filter.Status != "" && !models.ReportStatus(filter.Status).Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be pending, approved or rejected")
	}
	reports, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reports")
	}
	return reports, nil
}

// Get returns a single report by id.
func (s *ReportService) Get(ctx context.Context, id int64) (*models.Report, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "report not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch report")
	}
	return report, nil
}

// ListByUser returns the caller's own reports.
func (s *ReportService) ListByUser(ctx context.Context, userID int64) ([]models.Report, error) {
	reports, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list user reports")
	}
	return reports, nil
}

// Create validates and stores a new report for the authenticated user. The
// species is checked against known animal types (case- and whitespace-
// insensitive) before insertion; the resulting flag is advisory and only
// changes the response message. New reports are stored as approved; the
// status enum implies a moderation gate, but creation does not enforce one.
func (s *ReportService) Create(ctx context.Context, userID int64, req models.CreateReportRequest) (*models.CreatedReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid report payload")
	}
	if containsDigit(req.AnimalType) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "animal_type must not contain digits")
	}
	if req.WeatherCondition != nil && containsDigit(*req.WeatherCondition) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "weather_condition must not contain digits")
	}

	incidentDate, err := time.Parse("2006-01-02", req.IncidentDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "incident_date must be YYYY-MM-DD")
	}

	isNew, err := s.repo.AnimalTypeExists(ctx, req.AnimalType)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check animal type")
	}

	report := &models.Report{
		UserID:           userID,
		AnimalType:       strings.TrimSpace(req.AnimalType),
		LocationAddress:  strings.TrimSpace(req.LocationAddress),
		Latitude:         *req.Latitude,
		Longitude:        *req.Longitude,
		IncidentDate:     incidentDate,
		IncidentTime:     req.IncidentTime,
		Description:      req.Description,
		PhotoURL:         req.PhotoURL,
		Status:           models.ReportStatusApproved,
		Temperature:      req.Temperature,
		Precipitation:    req.Precipitation,
		WindSpeed:        req.WindSpeed,
		Humidity:         req.Humidity,
		WeatherCondition: req.WeatherCondition,
	}

	stored, err := s.repo.Create(ctx, report)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create report")
	}

	if err := s.cache.Invalidate(ctx, statsCachePattern); err != nil {
		s.logger.Warn("failed to invalidate stats cache", zap.Error(err))
	}

	s.logger.Info("report created",
		zap.Int64("report_id", stored.ID),
		zap.Int64("user_id", userID),
		zap.String("animal_type", stored.AnimalType),
		zap.Bool("new_animal", !isNew),
	)

	return &models.CreatedReport{Report: stored, IsNewAnimal: !isNew}, nil
}

// UpdateStatus sets the moderation status. Any authenticated caller may do
// this; only deletion is ownership-checked.
func (s *ReportService) UpdateStatus(ctx context.Context, id int64, req models.UpdateReportStatusRequest) (*models.Report, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "status must be pending, approved or rejected")
	}

	report, err := s.repo.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "report not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update report status")
	}

	if err := s.cache.Invalidate(ctx, statsCachePattern); err != nil {
		s.logger.Warn("failed to invalidate stats cache", zap.Error(err))
	}

	return report, nil
}

// Delete removes a report. Only the owner may delete.
func (s *ReportService) Delete(ctx context.Context, id, callerID int64) error {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "report not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch report")
	}

	if report.UserID != callerID {
		return appErrors.Clone(appErrors.ErrForbidden, "only the owner may delete this report")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete report")
	}

	if err := s.cache.Invalidate(ctx, statsCachePattern); err != nil {
		s.logger.Warn("failed to invalidate stats cache", zap.Error(err))
	}

	return nil
}

func containsDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
