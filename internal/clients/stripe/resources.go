package stripe

import (
	"context"

	stripego "github.com/stripe/stripe-go/v79"
)

// Product is the subset of a Stripe product the shop reads back.
type Product struct {
	ID     string
	Name   string
	Active bool
}

// Price is the subset of a Stripe price the shop reads back.
type Price struct {
	ID         string
	ProductID  string
	UnitAmount int64
	Currency   string
}

// PaymentLink is a hosted checkout page for one price.
// PriceIDs and ProductIDs are populated only when line items were expanded.
type PaymentLink struct {
	ID         string
	URL        string
	Active     bool
	PriceIDs   []string
	ProductIDs []string
}

type Amount struct {
	Amount   int64
	Currency string
}

type Balance struct {
	Livemode  bool
	Available []Amount
}

// ProductInput describes a product create or update. On create, empty
// Description and ImageURL are omitted; on update they clear the remote value.
type ProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Metadata    map[string]string
}

type PriceInput struct {
	ProductID  string
	UnitAmount int64
	Currency   string
	Metadata   map[string]string
}

func (in ProductInput) params(ctx context.Context, update bool) *stripego.ProductParams {
	params := &stripego.ProductParams{
		Name: stripego.String(in.Name),
	}
	params.Context = ctx
	if in.Description != "" || update {
		params.Description = stripego.String(in.Description)
	}
	switch {
	case in.ImageURL != "":
		params.Images = stripego.StringSlice([]string{in.ImageURL})
	case update:
		// A non-nil empty slice is encoded as "images=" and clears the list.
		params.Images = []*string{}
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	return params
}

// CreateProduct creates an active product. A non-empty idempotencyKey makes
// repeated calls return the product created by the first one.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput, idempotencyKey string) (Product, error) {
	if err := c.requireKey(); err != nil {
		return Product{}, err
	}

	params := in.params(ctx, false)
	params.Active = stripego.Bool(true)
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}
	p, err := c.api.Products.New(params)
	if err != nil {
		return Product{}, normalizeError(err)
	}
	return toProduct(p), nil
}

// UpdateProduct overwrites the name, description and image of an existing
// product and merges metadata. Empty metadata values delete the key.
func (c *Client) UpdateProduct(ctx context.Context, productID string, in ProductInput) (Product, error) {
	if err := c.requireKey(); err != nil {
		return Product{}, err
	}

	p, err := c.api.Products.Update(productID, in.params(ctx, true))
	if err != nil {
		return Product{}, normalizeError(err)
	}
	return toProduct(p), nil
}

// ArchiveProduct marks a product inactive. Stripe products with prices cannot
// be deleted, so archiving is the only removal.
func (c *Client) ArchiveProduct(ctx context.Context, productID string) (Product, error) {
	if err := c.requireKey(); err != nil {
		return Product{}, err
	}

	params := &stripego.ProductParams{Active: stripego.Bool(false)}
	params.Context = ctx
	p, err := c.api.Products.Update(productID, params)
	if err != nil {
		return Product{}, normalizeError(err)
	}
	return toProduct(p), nil
}

// CreatePrice creates a one-time price. Prices are immutable upstream, so a
// changed amount always means a new price.
func (c *Client) CreatePrice(ctx context.Context, in PriceInput, idempotencyKey string) (Price, error) {
	if err := c.requireKey(); err != nil {
		return Price{}, err
	}

	params := &stripego.PriceParams{
		Product:    stripego.String(in.ProductID),
		UnitAmount: stripego.Int64(in.UnitAmount),
		Currency:   stripego.String(in.Currency),
	}
	params.Context = ctx
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	p, err := c.api.Prices.New(params)
	if err != nil {
		return Price{}, normalizeError(err)
	}
	price := Price{ID: p.ID, UnitAmount: p.UnitAmount, Currency: string(p.Currency)}
	if p.Product != nil {
		price.ProductID = p.Product.ID
	}
	return price, nil
}

// CreatePaymentLink creates a payment link selling one unit of priceID.
func (c *Client) CreatePaymentLink(ctx context.Context, priceID string, idempotencyKey string) (PaymentLink, error) {
	if err := c.requireKey(); err != nil {
		return PaymentLink{}, err
	}

	params := &stripego.PaymentLinkParams{
		LineItems: []*stripego.PaymentLinkLineItemParams{
			{
				Price:    stripego.String(priceID),
				Quantity: stripego.Int64(1),
			},
		},
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	pl, err := c.api.PaymentLinks.New(params)
	if err != nil {
		return PaymentLink{}, normalizeError(err)
	}
	return toPaymentLink(pl), nil
}

// SetPaymentLinkActive activates or deactivates a payment link.
func (c *Client) SetPaymentLinkActive(ctx context.Context, paymentLinkID string, active bool) (PaymentLink, error) {
	if err := c.requireKey(); err != nil {
		return PaymentLink{}, err
	}

	params := &stripego.PaymentLinkParams{Active: stripego.Bool(active)}
	params.Context = ctx
	pl, err := c.api.PaymentLinks.Update(paymentLinkID, params)
	if err != nil {
		return PaymentLink{}, normalizeError(err)
	}
	return toPaymentLink(pl), nil
}

// GetPaymentLink retrieves a payment link with its line items expanded.
func (c *Client) GetPaymentLink(ctx context.Context, paymentLinkID string) (PaymentLink, error) {
	if err := c.requireKey(); err != nil {
		return PaymentLink{}, err
	}

	params := &stripego.PaymentLinkParams{}
	params.Context = ctx
	params.AddExpand("line_items")
	pl, err := c.api.PaymentLinks.Get(paymentLinkID, params)
	if err != nil {
		return PaymentLink{}, normalizeError(err)
	}
	return toPaymentLink(pl), nil
}

// ListPaymentLinks returns a single page of at most limit payment links,
// newest first, with line items expanded.
func (c *Client) ListPaymentLinks(ctx context.Context, limit int64) ([]PaymentLink, error) {
	if err := c.requireKey(); err != nil {
		return nil, err
	}

	params := &stripego.PaymentLinkListParams{}
	params.Context = ctx
	params.Limit = stripego.Int64(limit)
	params.Single = true
	params.AddExpand("data.line_items")

	var links []PaymentLink
	it := c.api.PaymentLinks.List(params)
	for it.Next() {
		links = append(links, toPaymentLink(it.PaymentLink()))
	}
	if err := it.Err(); err != nil {
		return nil, normalizeError(err)
	}
	return links, nil
}

func toProduct(p *stripego.Product) Product {
	return Product{ID: p.ID, Name: p.Name, Active: p.Active}
}

func toPaymentLink(pl *stripego.PaymentLink) PaymentLink {
	link := PaymentLink{ID: pl.ID, URL: pl.URL, Active: pl.Active}
	if pl.LineItems == nil {
		return link
	}
	for _, item := range pl.LineItems.Data {
		if item == nil || item.Price == nil {
			continue
		}
		link.PriceIDs = append(link.PriceIDs, item.Price.ID)
		if item.Price.Product != nil {
			link.ProductIDs = append(link.ProductIDs, item.Price.Product.ID)
		}
	}
	return link
}
