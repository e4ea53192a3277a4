package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/Zeldris69240/reqres-app/internal/client/models"
	"github.com/Zeldris69240/reqres-app/internal/client/session"
	"github.com/Zeldris69240/reqres-app/internal/logging"
)

// httpClient talks JSON over HTTP to the directory service. It configures
// no timeouts and performs no retries; a failed call is reported once and
// left to the user to repeat.
type httpClient struct {
	baseURL string
	hc      *http.Client
	tokens  session.Store
	logger  logging.Logger
}

// NewHTTPClient returns a Client bound to the given base URL, e.g.
// "https://reqres.in/api". The token store is consulted on every request;
// when it holds a token, the request carries a bearer Authorization header.
func NewHTTPClient(baseURL string, tokens session.Store, logger logging.Logger) Client {
	return &httpClient{
		baseURL: baseURL,
		hc:      &http.Client{},
		tokens:  tokens,
		logger:  logger,
	}
}

// do builds and executes one request. Every request gets a fresh
// X-Request-Id so client and server logs can be correlated.
func (c *httpClient) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	if token := c.tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Info(ctx, "directory request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Error(ctx, "directory request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, err
	}
	return resp, nil
}

// success reports whether the response carries any 2xx status. The
// contract defines no response-code-specific branching beyond that.
func success(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (c *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	resp, err := c.do(ctx, http.MethodPost, "/login", payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	defer resp.Body.Close()

	if !success(resp) {
		return "", fmt.Errorf("%w: unexpected status %d", ErrAuthenticationFailed, resp.StatusCode)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrAuthenticationFailed, err)
	}
	return out.Token, nil
}

func (c *httpClient) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users?page=1", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if !success(resp) {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	var out struct {
		Data []models.User `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrFetchFailed, err)
	}
	return out.Data, nil
}

func (c *httpClient) UpdateUser(ctx context.Context, id int, firstName, lastName, email string) error {
	payload := struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
	}{FirstName: firstName, LastName: lastName, Email: email}

	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}
	defer resp.Body.Close()

	if !success(resp) {
		return fmt.Errorf("%w: unexpected status %d", ErrUpdateFailed, resp.StatusCode)
	}
	return nil
}

func (c *httpClient) DeleteUser(ctx context.Context, id int) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	defer resp.Body.Close()

	if !success(resp) {
		return fmt.Errorf("%w: unexpected status %d", ErrDeleteFailed, resp.StatusCode)
	}
	return nil
}

func (c *httpClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}
