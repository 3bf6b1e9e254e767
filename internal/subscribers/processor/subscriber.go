package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=subscriber.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"shop-admin/internal/observability"
	"shop-admin/internal/store"

	"github.com/google/uuid"
)

var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrFailedOperation    = errors.New("subscriber operation failed")
)

// SubscriberStore defines the database operations required by SubscriberProcessor
type SubscriberStore interface {
	ListSubscribers(ctx context.Context, limit, offset int) ([]store.Subscriber, error)
	DeleteSubscriber(ctx context.Context, subscriberID uuid.UUID) error
}

type SubscriberProcessor struct {
	store  SubscriberStore
	logger *observability.Logger
}

func New(store SubscriberStore, logger *observability.Logger) SubscriberProcessor {
	return SubscriberProcessor{
		store:  store,
		logger: logger,
	}
}

// ListSubscribers returns subscribers newest first.
func (p *SubscriberProcessor) ListSubscribers(ctx context.Context, limit, offset int) ([]store.Subscriber, error) {
	subscribers, err := p.store.ListSubscribers(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list subscribers", err)
		return nil, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}
	return subscribers, nil
}

func (p *SubscriberProcessor) DeleteSubscriber(ctx context.Context, subscriberID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscriber_id", Value: subscriberID.String()})

	if err := p.store.DeleteSubscriber(ctx, subscriberID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSubscriberNotFound
		}
		p.logger.Error(ctx, "failed to delete subscriber", err)
		return fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}

	p.logger.Info(ctx, "subscriber deleted")
	return nil
}
