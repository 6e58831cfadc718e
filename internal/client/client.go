// Package client is the Go API client the front-ends build on. Auth
// state is an explicit Session value handed to each admin call rather
// than a process-wide token, and expiry is checked before a request is
// sent instead of being discovered through a 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"techmart/internal/model"
)

// Session is the admin credential issued by Login. The zero value is
// unauthenticated.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Valid reports whether the session holds an unexpired token.
func (s Session) Valid() bool {
	return s.Token != "" && time.Now().Before(s.ExpiresAt)
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// ErrSessionExpired is returned before any request is made when the
// supplied session is missing or expired.
var ErrSessionExpired = fmt.Errorf("session is missing or expired")

// Client talks to the catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL. The /api prefix is
// appended when missing, so both "https://host" and "https://host/api"
// work.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(baseURL),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// normalizeBaseURL trims trailing slashes and ensures the /api suffix.
func normalizeBaseURL(raw string) string {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if strings.HasSuffix(strings.ToLower(base), "/api") {
		return base
	}
	return base + "/api"
}

// Login exchanges the credential pair for a session.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	var resp model.LoginResponse
	err := c.do(ctx, http.MethodPost, "/admin/login", "", model.LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: resp.Token, ExpiresAt: resp.ExpiresAt}, nil
}

// ProductQuery holds the optional listing filters.
type ProductQuery struct {
	Category string
	Name     string
	Limit    int
	Skip     int
}

// ListProducts fetches a page of products.
func (c *Client) ListProducts(ctx context.Context, query ProductQuery) (*model.ProductList, error) {
	params := url.Values{}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Name != "" {
		params.Set("name", query.Name)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Skip > 0 {
		params.Set("skip", strconv.Itoa(query.Skip))
	}

	path := "/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var list model.ProductList
	if err := c.do(ctx, http.MethodGet, path, "", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a product (admin only).
func (c *Client) CreateProduct(ctx context.Context, session Session, req *model.CreateProductRequest) (*model.Product, error) {
	if !session.Valid() {
		return nil, ErrSessionExpired
	}
	var product model.Product
	if err := c.do(ctx, http.MethodPost, "/products", session.Token, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a partial patch to a product (admin only).
func (c *Client) UpdateProduct(ctx context.Context, session Session, id string, req *model.UpdateProductRequest) (*model.Product, error) {
	if !session.Valid() {
		return nil, ErrSessionExpired
	}
	var product model.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+id, session.Token, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product (admin only).
func (c *Client) DeleteProduct(ctx context.Context, session Session, id string) error {
	if !session.Valid() {
		return ErrSessionExpired
	}
	return c.do(ctx, http.MethodDelete, "/products/"+id, session.Token, nil, nil)
}

// do performs one request and decodes the JSON response into out when
// it is non-nil. Error bodies surface as *APIError.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr model.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr != nil || apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
