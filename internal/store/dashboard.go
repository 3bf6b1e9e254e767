package store

import (
	"context"
	"fmt"
)

type DashboardStats struct {
	PostsCount       int64 `db:"posts_count" json:"postsCount"`
	ProductsCount    int64 `db:"products_count" json:"productsCount"`
	SubscribersCount int64 `db:"subscribers_count" json:"subscribersCount"`
	ViewsCount       int64 `db:"views_count" json:"viewsCount"`
}

const sqlGetDashboardStats = `
SELECT
    (SELECT COUNT(*) FROM posts) AS posts_count,
    (SELECT COUNT(*) FROM products WHERE active = TRUE) AS products_count,
    (SELECT COUNT(*) FROM subscribers WHERE active = TRUE) AS subscribers_count,
    (SELECT COALESCE(SUM(views), 0) FROM posts) AS views_count
`

// GetDashboardStats counts all posts, active products, active subscribers and
// total post views in one round trip.
func (s *Store) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := s.db.GetContext(ctx, &stats, sqlGetDashboardStats); err != nil {
		return DashboardStats{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}
