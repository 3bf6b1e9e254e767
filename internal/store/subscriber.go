package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Subscriber struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Email          string     `db:"email" json:"email"`
	Name           *string    `db:"name" json:"name"`
	Source         string     `db:"source" json:"source"`
	SubscribedAt   time.Time  `db:"subscribed_at" json:"subscribed_at"`
	UnsubscribedAt *time.Time `db:"unsubscribed_at" json:"unsubscribed_at"`
	Active         bool       `db:"active" json:"active"`
}

// MonthlyCount is the number of active subscribers who joined in Month
// ("YYYY-MM", UTC).
type MonthlyCount struct {
	Month string `db:"month" json:"month"`
	Count int64  `db:"count" json:"count"`
}

const sqlListSubscribers = `
SELECT id, email, name, source, subscribed_at, unsubscribed_at, active
FROM subscribers
ORDER BY subscribed_at DESC
LIMIT $1 OFFSET $2
`

func (s *Store) ListSubscribers(ctx context.Context, limit, offset int) ([]Subscriber, error) {
	if limit <= 0 {
		limit = 500
	}
	subscribers := []Subscriber{}
	if err := s.db.SelectContext(ctx, &subscribers, sqlListSubscribers, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}

const sqlDeleteSubscriber = `
DELETE FROM subscribers
WHERE id = $1
`

func (s *Store) DeleteSubscriber(ctx context.Context, subscriberID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteSubscriber, subscriberID)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlCountSubscribersByMonth = `
SELECT to_char(subscribed_at AT TIME ZONE 'UTC', 'YYYY-MM') AS month, COUNT(*) AS count
FROM subscribers
WHERE active = TRUE
GROUP BY month
ORDER BY month ASC
`

func (s *Store) CountSubscribersByMonth(ctx context.Context) ([]MonthlyCount, error) {
	counts := []MonthlyCount{}
	if err := s.db.SelectContext(ctx, &counts, sqlCountSubscribersByMonth); err != nil {
		return nil, fmt.Errorf("failed to count subscribers by month: %w", err)
	}
	return counts, nil
}
