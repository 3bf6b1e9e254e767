package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"shop-admin/internal/money/currency"
	"shop-admin/internal/observability"
	postsProcessor "shop-admin/internal/posts/processor"
	"shop-admin/internal/store"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrMissingIdentifier = errors.New("provide id or slug parameter")
	ErrFailedOperation   = errors.New("public api operation failed")
)

const (
	defaultPostsLimit = 20
	maxPostsLimit     = 100
	viewCountTimeout  = 5 * time.Second
)

// PostSummary is the list view of a published post.
type PostSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	ReadTime    string    `json:"read_time"`
	Views       int64     `json:"views"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// Product is an active product as shown to storefronts. Stripe identifiers
// other than the checkout link stay internal.
type Product struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Image              string    `json:"image"`
	Category           string    `json:"category"`
	Price              string    `json:"price"`
	OriginalPrice      string    `json:"original_price,omitempty"`
	PriceCents         int64     `json:"price_cents"`
	OriginalPriceCents *int64    `json:"original_price_cents,omitempty"`
	Currency           string    `json:"currency"`
	StripeLink         string    `json:"stripe_link,omitempty"`
	SortOrder          int       `json:"sort_order"`
}

type PostsQuery struct {
	Category string
	Limit    int
	Offset   int
}

type PublicProcessor struct {
	store    ContentStore
	settings SettingsReader
	logger   *observability.Logger
	views    *sync.WaitGroup
}

func New(store ContentStore, settings SettingsReader, logger *observability.Logger) PublicProcessor {
	return PublicProcessor{
		store:    store,
		settings: settings,
		logger:   logger,
		views:    &sync.WaitGroup{},
	}
}

// ListPosts returns published posts newest first. Limit defaults to 20 and
// is capped at 100.
func (p *PublicProcessor) ListPosts(ctx context.Context, query PostsQuery) ([]PostSummary, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultPostsLimit
	}
	if limit > maxPostsLimit {
		limit = maxPostsLimit
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	posts, err := p.store.ListPosts(ctx, store.ListPostsParams{
		PublishedOnly: true,
		Category:      query.Category,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list public posts", err)
		return nil, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}

	out := make([]PostSummary, 0, len(posts))
	for _, post := range posts {
		presented := postsProcessor.Present(post)
		out = append(out, PostSummary{
			ID:          post.ID,
			Title:       post.Title,
			Slug:        post.Slug,
			Description: post.Description,
			Image:       post.Image,
			Category:    post.Category,
			ReadTime:    post.ReadTime,
			Views:       post.Views,
			Date:        presented.Date,
			CreatedAt:   post.CreatedAt,
		})
	}
	return out, nil
}

// GetPost looks a published post up by id, or by slug when id is nil, and
// counts the view in the background.
func (p *PublicProcessor) GetPost(ctx context.Context, postID *uuid.UUID, slug string) (postsProcessor.Post, error) {
	var (
		post store.Post
		err  error
	)
	switch {
	case postID != nil:
		post, err = p.store.GetPostByID(ctx, *postID)
	case slug != "":
		post, err = p.store.GetPostBySlug(ctx, slug)
	default:
		return postsProcessor.Post{}, ErrMissingIdentifier
	}
	if err != nil {
		return postsProcessor.Post{}, p.mapStoreError(ctx, "failed to get public post", err)
	}
	if !post.Published {
		return postsProcessor.Post{}, ErrNotFound
	}

	p.countView(ctx, post.ID)
	return postsProcessor.Present(post), nil
}

func (p *PublicProcessor) countView(ctx context.Context, postID uuid.UUID) {
	ctx = observability.WithFields(context.WithoutCancel(ctx), observability.Field{Key: "post_id", Value: postID.String()})

	p.views.Add(1)
	go func() {
		defer p.views.Done()
		ctx, cancel := context.WithTimeout(ctx, viewCountTimeout)
		defer cancel()
		if err := p.store.IncrementPostViews(ctx, postID); err != nil {
			p.logger.WarnWithError(ctx, "failed to increment post views", err)
		}
	}()
}

// Drain waits for pending view counts. Called on shutdown before the store
// closes.
func (p *PublicProcessor) Drain() {
	p.views.Wait()
}

// ListProducts returns active products in storefront order.
func (p *PublicProcessor) ListProducts(ctx context.Context, category string) ([]Product, error) {
	products, err := p.store.ListProducts(ctx, store.ListProductsParams{ActiveOnly: true, Category: category})
	if err != nil {
		p.logger.Error(ctx, "failed to list public products", err)
		return nil, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}

	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, p.present(ctx, product))
	}
	return out, nil
}

func (p *PublicProcessor) GetProduct(ctx context.Context, productID uuid.UUID) (Product, error) {
	product, err := p.store.GetProductByID(ctx, productID)
	if err != nil {
		return Product{}, p.mapStoreError(ctx, "failed to get public product", err)
	}
	if !product.Active {
		return Product{}, ErrNotFound
	}
	return p.present(ctx, product), nil
}

func (p *PublicProcessor) Settings(ctx context.Context) (map[string]json.RawMessage, error) {
	settings, err := p.settings.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedOperation, err)
	}
	return settings, nil
}

func (p *PublicProcessor) present(ctx context.Context, product store.Product) Product {
	out := Product{
		ID:                 product.ID,
		Title:              product.Title,
		Description:        product.Description,
		Image:              product.Image,
		Category:           product.Category,
		PriceCents:         product.PriceCents,
		OriginalPriceCents: product.OriginalPriceCents,
		Currency:           product.Currency,
		StripeLink:         product.StripeLink,
		SortOrder:          product.SortOrder,
	}

	price, err := currency.Format(product.PriceCents, product.Currency)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to format price", err)
		return out
	}
	out.Price = price
	if product.OriginalPriceCents != nil {
		if original, err := currency.Format(*product.OriginalPriceCents, product.Currency); err == nil {
			out.OriginalPrice = original
		}
	}
	return out
}

func (p *PublicProcessor) mapStoreError(ctx context.Context, msg string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	p.logger.Error(ctx, msg, err)
	return fmt.Errorf("%w: %v", ErrFailedOperation, err)
}
