package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"bookshelf/internal/domain"
)

type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// FeatureHeat is one heat-map bucket: requests per feature with the number
// of distinct authenticated users hitting it.
type FeatureHeat struct {
	Feature     string `json:"feature"`
	Requests    int64  `json:"requests"`
	UniqueUsers int64  `json:"uniqueUsers" gorm:"column:unique_users"`
}

// RouteTiming is one slowest-routes row.
type RouteTiming struct {
	Endpoint string  `json:"endpoint"`
	AvgTime  float64 `json:"avgTime" gorm:"column:avg_time"`
	Requests int64   `json:"requests"`
}

func (r *LogRepository) Create(ctx context.Context, entry *domain.RequestLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *LogRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.RequestLog{}).
		Where("timestamp >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *LogRepository) CountServerErrorsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.RequestLog{}).
		Where("timestamp >= ? AND status_code >= ?", since, 500).
		Count(&count).Error
	return count, err
}

func (r *LogRepository) HeatMap(ctx context.Context, since time.Time) ([]FeatureHeat, error) {
	var rows []FeatureHeat
	err := r.db.WithContext(ctx).
		Model(&domain.RequestLog{}).
		Select("feature, COUNT(*) AS requests, COUNT(DISTINCT user_id) AS unique_users").
		Where("timestamp >= ?", since).
		Group("feature").
		Scan(&rows).Error
	return rows, err
}

// SlowestRoutes averages response times per endpoint over successful-ish
// traffic; 5xx rows are excluded so one failing route does not dominate.
func (r *LogRepository) SlowestRoutes(ctx context.Context, since time.Time, limit int) ([]RouteTiming, error) {
	var rows []RouteTiming
	err := r.db.WithContext(ctx).
		Model(&domain.RequestLog{}).
		Select("method || ' ' || route AS endpoint, AVG(response_time) AS avg_time, COUNT(*) AS requests").
		Where("timestamp >= ? AND status_code < ?", since, 500).
		Group("method, route").
		Order("avg_time DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
