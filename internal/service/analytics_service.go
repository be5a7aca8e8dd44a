package service

import (
	"context"
	"time"

	"bobapos/internal/domain"
	"bobapos/internal/repository"
)

type AnalyticsServiceInterface interface {
	ProductUsage(ctx context.Context) (map[string]int, error)
	TotalSales(ctx context.Context, start, end time.Time) (domain.SalesReport, error)
}

type AnalyticsService struct {
	analytics repository.AnalyticsRepositoryInterface
}

func NewAnalyticsService(analytics repository.AnalyticsRepositoryInterface) AnalyticsServiceInterface {
	return &AnalyticsService{analytics: analytics}
}

func (s *AnalyticsService) ProductUsage(ctx context.Context) (map[string]int, error) {
	return s.analytics.ProductUsage(ctx)
}

func (s *AnalyticsService) TotalSales(ctx context.Context, start, end time.Time) (domain.SalesReport, error) {
	total, err := s.analytics.TotalSales(ctx, start, end)
	if err != nil {
		return domain.SalesReport{}, err
	}
	return domain.SalesReport{TotalSales: total}, nil
}
