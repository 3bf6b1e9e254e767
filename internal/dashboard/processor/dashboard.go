package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=dashboard.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"shop-admin/internal/observability"
	"shop-admin/internal/store"
)

var ErrFailedOperation = errors.New("dashboard query failed")

type DashboardStore interface {
	GetDashboardStats(ctx context.Context) (store.DashboardStats, error)
	ListPostAnalytics(ctx context.Context) ([]store.PostAnalytics, error)
	CountSubscribersByMonth(ctx context.Context) ([]store.MonthlyCount, error)
}

// Analytics is the admin analytics view: posts ranked by views and active
// subscriber signups per UTC month.
type Analytics struct {
	Posts              []store.PostAnalytics `json:"posts"`
	SubscribersByMonth []store.MonthlyCount  `json:"subscribersByMonth"`
	TotalViews         int64                 `json:"totalViews"`
}

type DashboardProcessor struct {
	store  DashboardStore
	logger *observability.Logger
}

func New(store DashboardStore, logger *observability.Logger) DashboardProcessor {
	return DashboardProcessor{
		store:  store,
		logger: logger,
	}
}

func (p *DashboardProcessor) Stats(ctx context.Context) (store.DashboardStats, error) {
	stats, err := p.store.GetDashboardStats(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get dashboard stats", err)
		return store.DashboardStats{}, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}
	return stats, nil
}

func (p *DashboardProcessor) Analytics(ctx context.Context) (Analytics, error) {
	posts, err := p.store.ListPostAnalytics(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list post analytics", err)
		return Analytics{}, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}

	byMonth, err := p.store.CountSubscribersByMonth(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count subscribers by month", err)
		return Analytics{}, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}

	var total int64
	for _, post := range posts {
		total += post.Views
	}

	return Analytics{
		Posts:              posts,
		SubscribersByMonth: byMonth,
		TotalViews:         total,
	}, nil
}
