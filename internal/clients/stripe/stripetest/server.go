// Package stripetest provides an in-memory fake of the Stripe REST endpoints
// the shop uses, for tests.
package stripetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const SecretKey = "sk_test_fake"

// Request is a recorded call to the fake.
type Request struct {
	Method         string
	Path           string
	Form           url.Values
	IdempotencyKey string
	Authorization  string
}

type failure struct {
	method    string
	path      string
	status    int
	message   string
	remaining int
	always    bool
}

type product struct {
	ID          string            `json:"id"`
	Object      string            `json:"object"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Active      bool              `json:"active"`
	Images      []string          `json:"images"`
	Metadata    map[string]string `json:"metadata"`
}

type price struct {
	ID         string            `json:"id"`
	Object     string            `json:"object"`
	Product    string            `json:"product"`
	UnitAmount int64             `json:"unit_amount"`
	Currency   string            `json:"currency"`
	Active     bool              `json:"active"`
	Metadata   map[string]string `json:"metadata"`
}

type paymentLink struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	URL     string `json:"url"`
	Active  bool   `json:"active"`
	PriceID string `json:"-"`
}

type replay struct {
	path   string
	form   string
	status int
	body   []byte
}

// Server is a fake Stripe API. Create one with NewServer; it is closed via
// t.Cleanup.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	seq          int
	requests     []Request
	failures     []*failure
	products     map[string]*product
	prices       map[string]*price
	paymentLinks map[string]*paymentLink
	linkOrder    []string
	idempotent   map[string]replay
}

func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		products:     map[string]*product{},
		prices:       map[string]*price{},
		paymentLinks: map[string]*paymentLink{},
		idempotent:   map[string]replay{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Fail makes the next times requests matching method and path prefix answer
// with status and a Stripe-shaped error carrying message. times <= 0 fails
// every matching request.
func (s *Server) Fail(method, pathPrefix string, status int, message string, times int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, &failure{
		method:    method,
		path:      pathPrefix,
		status:    status,
		message:   message,
		remaining: times,
		always:    times <= 0,
	})
}

// Requests returns a copy of all recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many requests matched method and exact path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// ProductCount returns the number of distinct products created.
func (s *Server) ProductCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

func (s *Server) PriceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prices)
}

func (s *Server) PaymentLinkCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.paymentLinks)
}

// ProductDetails returns the stored description, images and metadata of a
// product.
func (s *Server) ProductDetails(id string) (string, []string, map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return "", nil, nil
	}
	meta := make(map[string]string, len(p.Metadata))
	for k, v := range p.Metadata {
		meta[k] = v
	}
	return p.Description, append([]string(nil), p.Images...), meta
}

// ProductActive reports the stored active flag of a product.
func (s *Server) ProductActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	return ok && p.Active
}

func (s *Server) PaymentLinkActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pl, ok := s.paymentLinks[id]
	return ok && pl.Active
}

// SeedPaymentLink stores a link for productID without recording a request.
// It returns the link id and url.
func (s *Server) SeedPaymentLink(productID string, unitAmount int64, currency string) (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[productID]; !ok {
		s.products[productID] = &product{ID: productID, Object: "product", Active: true, Metadata: map[string]string{}}
	}
	pr := &price{ID: s.nextID("price"), Object: "price", Product: productID, UnitAmount: unitAmount, Currency: currency, Active: true, Metadata: map[string]string{}}
	s.prices[pr.ID] = pr
	pl := s.newPaymentLink(pr.ID)
	return pl.ID, pl.URL
}

func (s *Server) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s_%d", prefix, s.seq)
}

func (s *Server) newPaymentLink(priceID string) *paymentLink {
	id := s.nextID("plink")
	pl := &paymentLink{
		ID:      id,
		Object:  "payment_link",
		URL:     "https://buy.stripe.com/test_" + strings.TrimPrefix(id, "plink_"),
		Active:  true,
		PriceID: priceID,
	}
	s.paymentLinks[id] = pl
	s.linkOrder = append(s.linkOrder, id)
	return pl
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	s.mu.Lock()
	defer s.mu.Unlock()

	req := Request{
		Method:         r.Method,
		Path:           r.URL.Path,
		Form:           r.Form,
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
		Authorization:  r.Header.Get("Authorization"),
	}
	s.requests = append(s.requests, req)

	if req.Authorization != "Bearer "+SecretKey {
		writeError(w, http.StatusUnauthorized, "Invalid API Key provided")
		return
	}

	for _, f := range s.failures {
		if !f.always && f.remaining == 0 {
			continue
		}
		if f.method == r.Method && strings.HasPrefix(r.URL.Path, f.path) {
			if !f.always {
				f.remaining--
			}
			writeError(w, f.status, f.message)
			return
		}
	}

	if r.Method == http.MethodPost && req.IdempotencyKey != "" {
		if prev, ok := s.idempotent[req.IdempotencyKey]; ok {
			if prev.path != r.URL.Path || prev.form != r.Form.Encode() {
				data, _ := json.Marshal(errorBody("idempotency_error", "",
					"Keys for idempotent requests can only be used with the same parameters they were first used with."))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write(data)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Idempotent-Replayed", "true")
			w.WriteHeader(prev.status)
			_, _ = w.Write(prev.body)
			return
		}
	}

	status, body := s.route(r)
	data, _ := json.Marshal(body)

	if r.Method == http.MethodPost && req.IdempotencyKey != "" && status < 500 {
		s.idempotent[req.IdempotencyKey] = replay{path: r.URL.Path, form: r.Form.Encode(), status: status, body: data}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (s *Server) route(r *http.Request) (int, any) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "v1" {
		return notFound("Unrecognized request URL")
	}
	resource := parts[1]
	id := ""
	if len(parts) > 2 {
		id = parts[2]
	}

	switch {
	case resource == "products" && r.Method == http.MethodPost && id == "":
		return s.createProduct(r.Form)
	case resource == "products" && r.Method == http.MethodPost:
		return s.updateProduct(id, r.Form)
	case resource == "prices" && r.Method == http.MethodPost && id == "":
		return s.createPrice(r.Form)
	case resource == "payment_links" && r.Method == http.MethodPost && id == "":
		return s.createPaymentLink(r.Form)
	case resource == "payment_links" && r.Method == http.MethodPost:
		return s.updatePaymentLink(id, r.Form)
	case resource == "payment_links" && r.Method == http.MethodGet && id == "":
		return s.listPaymentLinks(r.Form)
	case resource == "payment_links" && r.Method == http.MethodGet:
		pl, ok := s.paymentLinks[id]
		if !ok {
			return notFound("No such payment_link: '" + id + "'")
		}
		return http.StatusOK, s.renderPaymentLink(pl, true)
	case resource == "balance" && r.Method == http.MethodGet:
		return http.StatusOK, map[string]any{
			"object":    "balance",
			"livemode":  false,
			"available": []map[string]any{{"amount": 12345, "currency": "usd"}},
			"pending":   []map[string]any{{"amount": 0, "currency": "usd"}},
		}
	}
	return notFound("Unrecognized request URL")
}

func (s *Server) createProduct(form url.Values) (int, any) {
	name := form.Get("name")
	if name == "" {
		return badRequest("Missing required param: name.")
	}
	p := &product{
		ID:       s.nextID("prod"),
		Object:   "product",
		Name:     name,
		Active:   form.Get("active") != "false",
		Metadata: metadata(form),
	}
	applyProductForm(p, form)
	s.products[p.ID] = p
	return http.StatusOK, p
}

func (s *Server) updateProduct(id string, form url.Values) (int, any) {
	p, ok := s.products[id]
	if !ok {
		return notFound("No such product: '" + id + "'")
	}
	if name := form.Get("name"); name != "" {
		p.Name = name
	}
	if active := form.Get("active"); active != "" {
		p.Active = active == "true"
	}
	for k, v := range metadata(form) {
		if v == "" {
			delete(p.Metadata, k)
			continue
		}
		p.Metadata[k] = v
	}
	applyProductForm(p, form)
	return http.StatusOK, p
}

// applyProductForm sets description and images when present in the form. A
// present but empty value clears the field.
func applyProductForm(p *product, form url.Values) {
	if _, ok := form["description"]; ok {
		p.Description = form.Get("description")
	}
	if img := form.Get("images[0]"); img != "" {
		p.Images = []string{img}
	} else if _, ok := form["images"]; ok {
		p.Images = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

func (s *Server) createPrice(form url.Values) (int, any) {
	productID := form.Get("product")
	if _, ok := s.products[productID]; !ok {
		return notFound("No such product: '" + productID + "'")
	}
	amount, err := strconv.ParseInt(form.Get("unit_amount"), 10, 64)
	if err != nil {
		return badRequest("Invalid integer: " + form.Get("unit_amount"))
	}
	pr := &price{
		ID:         s.nextID("price"),
		Object:     "price",
		Product:    productID,
		UnitAmount: amount,
		Currency:   form.Get("currency"),
		Active:     true,
		Metadata:   metadata(form),
	}
	s.prices[pr.ID] = pr
	return http.StatusOK, pr
}

func (s *Server) createPaymentLink(form url.Values) (int, any) {
	priceID := form.Get("line_items[0][price]")
	if _, ok := s.prices[priceID]; !ok {
		return notFound("No such price: '" + priceID + "'")
	}
	pl := s.newPaymentLink(priceID)
	return http.StatusOK, s.renderPaymentLink(pl, false)
}

func (s *Server) updatePaymentLink(id string, form url.Values) (int, any) {
	pl, ok := s.paymentLinks[id]
	if !ok {
		return notFound("No such payment_link: '" + id + "'")
	}
	if active := form.Get("active"); active != "" {
		pl.Active = active == "true"
	}
	return http.StatusOK, s.renderPaymentLink(pl, false)
}

func (s *Server) listPaymentLinks(form url.Values) (int, any) {
	limit := 10
	if l, err := strconv.Atoi(form.Get("limit")); err == nil && l > 0 {
		limit = l
	}
	data := make([]any, 0, limit)
	for i := len(s.linkOrder) - 1; i >= 0 && len(data) < limit; i-- {
		data = append(data, s.renderPaymentLink(s.paymentLinks[s.linkOrder[i]], true))
	}
	return http.StatusOK, map[string]any{
		"object":   "list",
		"url":      "/v1/payment_links",
		"has_more": len(s.linkOrder) > limit,
		"data":     data,
	}
}

func (s *Server) renderPaymentLink(pl *paymentLink, expand bool) map[string]any {
	out := map[string]any{
		"id":     pl.ID,
		"object": pl.Object,
		"url":    pl.URL,
		"active": pl.Active,
	}
	if expand {
		items := []any{}
		if pr, ok := s.prices[pl.PriceID]; ok {
			items = append(items, map[string]any{
				"id":       "li_" + pl.ID,
				"object":   "item",
				"quantity": 1,
				"price": map[string]any{
					"id":          pr.ID,
					"object":      "price",
					"product":     pr.Product,
					"unit_amount": pr.UnitAmount,
					"currency":    pr.Currency,
				},
			})
		}
		out["line_items"] = map[string]any{
			"object":   "list",
			"url":      "/v1/payment_links/" + pl.ID + "/line_items",
			"has_more": false,
			"data":     items,
		}
	}
	return out
}

func metadata(form url.Values) map[string]string {
	out := map[string]string{}
	for key, values := range form {
		if strings.HasPrefix(key, "metadata[") && strings.HasSuffix(key, "]") && len(values) > 0 {
			out[strings.TrimSuffix(strings.TrimPrefix(key, "metadata["), "]")] = values[0]
		}
	}
	return out
}

func notFound(message string) (int, any) {
	return http.StatusNotFound, errorBody("invalid_request_error", "resource_missing", message)
}

func badRequest(message string) (int, any) {
	return http.StatusBadRequest, errorBody("invalid_request_error", "parameter_missing", message)
}

func errorBody(errType, code, message string) map[string]any {
	return map[string]any{
		"error": map[string]any{
			"type":    errType,
			"code":    code,
			"message": message,
		},
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	errType := "invalid_request_error"
	if status >= 500 {
		errType = "api_error"
	}
	data, _ := json.Marshal(errorBody(errType, "", message))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
