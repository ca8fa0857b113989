package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"go.uber.org/zap"
)

// metropolitanNames maps the long-form special and metropolitan city names to
// their short province labels.
var metropolitanNames = map[string]string{
	"서울특별시": "서울",
	"부산광역시": "부산",
	"대구광역시": "대구",
	"인천광역시": "인천",
	"광주광역시": "광주",
	"대전광역시": "대전",
	"울산광역시": "울산",
}

type regionBucket struct {
	province    string
	city        *string
	fullAddress string
	points      orb.MultiPoint
}

// ImportRegions derives the region table from the incident CSV. Each distinct
// province/city pair becomes one row whose coordinate is the centroid of all
// incidents observed there. The table is rebuilt from scratch on every run.
func (im *Importer) ImportRegions(ctx context.Context, path string) (*Result, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*regionBucket)
	order := make([]string, 0)
	for _, r := range rows {
		address := r[colJurisdiction]
		latitude, latOK := parseFloat(r[colLatitude])
		longitude, lonOK := parseFloat(r[colLongitude])
		if address == "" || !latOK || !lonOK {
			continue
		}

		province, city := splitRegion(address)
		if province == "" {
			continue
		}

		key := province + "|"
		if city != nil {
			key += *city
		}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &regionBucket{province: province, city: city, fullAddress: address}
			buckets[key] = bucket
			order = append(order, key)
		}
		bucket.points = append(bucket.points, orb.Point{longitude, latitude})
	}

	im.logger.Info("region buckets collected", zap.Int("regions", len(buckets)))

	if _, err := im.db.ExecContext(ctx, `TRUNCATE TABLE regions RESTART IDENTITY CASCADE`); err != nil {
		return nil, fmt.Errorf("truncate regions: %w", err)
	}

	const insert = `INSERT INTO regions (province, city, full_address, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (province, city) DO NOTHING`

	result := &Result{}
	for _, key := range order {
		bucket := buckets[key]
		centroid, _ := planar.CentroidArea(bucket.points)

		if _, err := im.db.ExecContext(ctx, insert,
			bucket.province, bucket.city, bucket.fullAddress,
			centroid.Lat(), centroid.Lon(),
		); err != nil {
			return result, fmt.Errorf("insert region %s: %w", key, err)
		}
		result.Imported++
	}

	im.logger.Info("region import finished", zap.Int("imported", result.Imported))
	return result, nil
}

// splitRegion parses "경기 부천시" into province "경기" and city "부천시". The
// special and metropolitan cities are shortened; Sejong has no sub-cities, so
// it gets a fixed city label.
func splitRegion(address string) (string, *string) {
	parts := strings.Fields(strings.TrimSpace(address))
	if len(parts) == 0 {
		return "", nil
	}

	province := parts[0]
	var city *string
	if len(parts) > 1 {
		joined := strings.Join(parts[1:], " ")
		city = &joined
	}

	if short, ok := metropolitanNames[province]; ok {
		province = short
	}
	if province == "세종특별자치시" {
		province = "세종"
		sejong := "세종시"
		city = &sejong
	}

	return province, city
}
