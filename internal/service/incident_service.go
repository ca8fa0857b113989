package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/safari-for-safety/roadkill-api/internal/models"
	appErrors "github.com/safari-for-safety/roadkill-api/pkg/errors"
)

const incidentDateLayout = "2006-01-02"

type officialIncidentSource interface {
	ListAll(ctx context.Context) ([]models.Incident, error)
	ListByRegion(ctx context.Context, region string) ([]models.Incident, error)
	CountByRegionToken(ctx context.Context) ([]models.BucketCount, error)
	CountByMonth(ctx context.Context, rng models.DateRange) ([]models.BucketCount, error)
}

type reportIncidentSource interface {
	ListVisible(ctx context.Context) ([]models.Report, error)
	CountByRegionToken(ctx context.Context) ([]models.BucketCount, error)
	CountByMonth(ctx context.Context, rng models.DateRange) ([]models.BucketCount, error)
	CountByAnimal(ctx context.Context) ([]models.BucketCount, error)
}

type animalStatSource interface {
	AnimalTypeCounts(ctx context.Context) ([]models.BucketCount, error)
}

type weatherSource interface {
	List(ctx context.Context, limit, offset int) ([]models.WeatherObservation, int, error)
}

// IncidentService merges the official incident source with the user-report
// source into the combined view and its aggregations. The two sources are
// read independently and joined by shared normalization, which keeps the
// merge logic testable without a database.
type IncidentService struct {
	incidents officialIncidentSource
	reports   reportIncidentSource
	stats     animalStatSource
	weather   weatherSource
	cache     *CacheService
	logger    *zap.Logger
}

// NewIncidentService constructs an IncidentService.
func NewIncidentService(incidents officialIncidentSource, reports reportIncidentSource, stats animalStatSource, weather weatherSource, cache *CacheService, logger *zap.Logger) *IncidentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IncidentService{incidents: incidents, reports: reports, stats: stats, weather: weather, cache: cache, logger: logger}
}

// Combined returns the union of all official incidents and all non-rejected
// reports, normalized to a common record shape and ordered by date descending.
func (s *IncidentService) Combined(ctx context.Context) ([]models.CombinedIncident, error) {
	official, err := s.incidents.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch incidents")
	}
	reports, err := s.reports.ListVisible(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch reports")
	}

	combined := make([]models.CombinedIncident, 0, len(official)+len(reports))
	for i := range official {
		combined = append(combined, normalizeOfficial(&official[i]))
	}
	for i := range reports {
		combined = append(combined, normalizeReport(&reports[i]))
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].IncidentDate > combined[j].IncidentDate
	})

	return combined, nil
}

// ByRegion returns official incidents whose jurisdiction contains the region
// string.
func (s *IncidentService) ByRegion(ctx context.Context, region string) ([]models.Incident, error) {
	incidents, err := s.incidents.ListByRegion(ctx, region)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch incidents by region")
	}
	return incidents, nil
}

// StatisticsByRegion merges both sources grouped by the first token of the
// address string, summing counts, sorted by count descending.
func (s *IncidentService) StatisticsByRegion(ctx context.Context) ([]models.RegionCount, error) {
	const cacheKey = "stats:by-region"
	var cached []models.RegionCount
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	official, err := s.incidents.CountByRegionToken(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate incidents by region")
	}
	reports, err := s.reports.CountByRegionToken(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate reports by region")
	}

	merged := mergeCounts(official, reports)
	result := make([]models.RegionCount, 0, len(merged))
	for _, bucket := range merged {
		result = append(result, models.RegionCount{Region: bucket.Bucket, Count: bucket.Count})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Region < result[j].Region
	})

	_ = s.cache.Set(ctx, cacheKey, result, 0)
	return result, nil
}

// StatisticsByDate merges both sources grouped by calendar month. The same
// range predicate is applied to each source before grouping. The returned
// total sums the merged counts.
func (s *IncidentService) StatisticsByDate(ctx context.Context, rng models.DateRange) ([]models.MonthCount, int, error) {
	cacheKey := dateStatsCacheKey(rng)
	var cached []models.MonthCount
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached, sumMonthCounts(cached), nil
	}

	official, err := s.incidents.CountByMonth(ctx, rng)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate incidents by date")
	}
	reports, err := s.reports.CountByMonth(ctx, rng)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate reports by date")
	}

	merged := mergeCounts(official, reports)
	result := make([]models.MonthCount, 0, len(merged))
	total := 0
	for _, bucket := range merged {
		result = append(result, models.MonthCount{Month: bucket.Bucket, Count: bucket.Count})
		total += bucket.Count
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})

	_ = s.cache.Set(ctx, cacheKey, result, 0)
	return result, total, nil
}

// AnimalStatistics merges the imported per-species totals with live report
// counts, then computes each species' share of the merged total rounded to
// two decimals.
func (s *IncidentService) AnimalStatistics(ctx context.Context) ([]models.AnimalCount, error) {
	const cacheKey = "stats:animals"
	var cached []models.AnimalCount
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	imported, err := s.stats.AnimalTypeCounts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch animal stats")
	}
	reported, err := s.reports.CountByAnimal(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate reports by animal")
	}

	merged := mergeCounts(imported, reported)
	total := 0
	for _, bucket := range merged {
		total += bucket.Count
	}

	result := make([]models.AnimalCount, 0, len(merged))
	for _, bucket := range merged {
		percentage := 0.0
		if total > 0 {
			percentage = roundTwo(float64(bucket.Count) / float64(total) * 100)
		}
		result = append(result, models.AnimalCount{Species: bucket.Bucket, Count: bucket.Count, Percentage: percentage})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Species < result[j].Species
	})

	_ = s.cache.Set(ctx, cacheKey, result, 0)
	return result, nil
}

// Weather returns a page of weather observations with the total count.
func (s *IncidentService) Weather(ctx context.Context, limit, offset int) ([]models.WeatherObservation, int, error) {
	observations, total, err := s.weather.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch weather data")
	}
	return observations, total, nil
}

// normalizeOfficial maps a bulk-imported incident to the common record shape.
func normalizeOfficial(in *models.Incident) models.CombinedIncident {
	address := ""
	if in.Jurisdiction != nil {
		address = *in.Jurisdiction
	}
	return models.CombinedIncident{
		Serial:       in.SerialNumber,
		IncidentDate: in.IncidentDate.Format(incidentDateLayout),
		IncidentTime: in.IncidentTime,
		Address:      address,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		DataType:     models.DataTypeOfficial,
	}
}

// normalizeReport maps a user report to the common record shape.
func normalizeReport(in *models.Report) models.CombinedIncident {
	return models.CombinedIncident{
		Serial:       fmt.Sprintf("%d", in.ID),
		IncidentDate: in.IncidentDate.Format(incidentDateLayout),
		IncidentTime: in.IncidentTime,
		Address:      in.LocationAddress,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		DataType:     models.DataTypeUserReport,
	}
}

// mergeCounts sums per-source grouped counts by shared bucket key.
func mergeCounts(sources ...[]models.BucketCount) []models.BucketCount {
	totals := make(map[string]int)
	order := make([]string, 0)
	for _, source := range sources {
		for _, bucket := range source {
			if _, seen := totals[bucket.Bucket]; !seen {
				order = append(order, bucket.Bucket)
			}
			totals[bucket.Bucket] += bucket.Count
		}
	}

	merged := make([]models.BucketCount, 0, len(order))
	for _, key := range order {
		merged = append(merged, models.BucketCount{Bucket: key, Count: totals[key]})
	}
	return merged
}

func sumMonthCounts(counts []models.MonthCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}

func dateStatsCacheKey(rng models.DateRange) string {
	start, end := "", ""
	if rng.Start != nil {
		start = rng.Start.Format(incidentDateLayout)
	}
	if rng.End != nil {
		end = rng.End.Format(incidentDateLayout)
	}
	return fmt.Sprintf("stats:by-date:%s:%s", start, end)
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseDateRange parses optional start/end query values into a DateRange.
func ParseDateRange(start, end string) (models.DateRange, error) {
	var rng models.DateRange
	if start != "" {
		t, err := time.Parse(incidentDateLayout, start)
		if err != nil {
			return rng, appErrors.Clone(appErrors.ErrValidation, "startDate must be YYYY-MM-DD")
		}
		rng.Start = &t
	}
	if end != "" {
		t, err := time.Parse(incidentDateLayout, end)
		if err != nil {
			return rng, appErrors.Clone(appErrors.ErrValidation, "endDate must be YYYY-MM-DD")
		}
		rng.End = &t
	}
	return rng, nil
}
