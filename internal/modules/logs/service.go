package logs

import (
	"context"
	"fmt"
	"time"

	"bookshelf/internal/repository"
)

const (
	window       = 24 * time.Hour
	slowestLimit = 5
)

// LogReader — aggregation queries over the request-log store.
type LogReader interface {
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountServerErrorsSince(ctx context.Context, since time.Time) (int64, error)
	HeatMap(ctx context.Context, since time.Time) ([]repository.FeatureHeat, error)
	SlowestRoutes(ctx context.Context, since time.Time, limit int) ([]repository.RouteTiming, error)
}

type ErrorRate struct {
	Total     int64  `json:"total"`
	Errors500 int64  `json:"errors500"`
	Rate      string `json:"rate"`
}

type Summary struct {
	Error500Rate  *ErrorRate               `json:"error500Rate"`
	HeatMap       []repository.FeatureHeat `json:"heatMap"`
	SlowestRoutes []repository.RouteTiming `json:"slowestRoutes"`
	Timestamp     string                   `json:"timestamp"`
}

type Service struct {
	logs LogReader
}

func NewService(logs LogReader) *Service {
	return &Service{logs: logs}
}

func (s *Service) GetError500Rate(ctx context.Context) (*ErrorRate, error) {
	since := time.Now().Add(-window)

	total, err := s.logs.CountSince(ctx, since)
	if err != nil {
		return nil, err
	}
	errors500, err := s.logs.CountServerErrorsSince(ctx, since)
	if err != nil {
		return nil, err
	}

	rate := "0.00"
	if total > 0 {
		rate = fmt.Sprintf("%.2f", float64(errors500)/float64(total)*100)
	}

	return &ErrorRate{
		Total:     total,
		Errors500: errors500,
		Rate:      rate,
	}, nil
}

func (s *Service) GetHeatMap(ctx context.Context) ([]repository.FeatureHeat, error) {
	return s.logs.HeatMap(ctx, time.Now().Add(-window))
}

func (s *Service) GetSlowestRoutes(ctx context.Context) ([]repository.RouteTiming, error) {
	return s.logs.SlowestRoutes(ctx, time.Now().Add(-window), slowestLimit)
}

func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	errorRate, err := s.GetError500Rate(ctx)
	if err != nil {
		return nil, err
	}
	heatMap, err := s.GetHeatMap(ctx)
	if err != nil {
		return nil, err
	}
	slowest, err := s.GetSlowestRoutes(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Error500Rate:  errorRate,
		HeatMap:       heatMap,
		SlowestRoutes: slowest,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}
