package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"cobros/internal/app/client/config"
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string

	mu    gosync.RWMutex
	token string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			DisableCompression:  false,
			DisableKeepAlives:   false,
			MaxIdleConnsPerHost: 10,
		},
	}

	return newHTTPClient(client, cfg.BaseURL(), log), nil
}

func newHTTPClient(client *http.Client, baseURL string, log *slog.Logger) *httpClient {
	return &httpClient{
		client:    client,
		log:       log.With("component", "http_client"),
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "Cobros-Client/1.0",
	}
}

// SetToken sets the bearer token sent with every request
func (h *httpClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func (h *httpClient) bearer() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// HealthCheck checks that the server is reachable
func (h *httpClient) HealthCheck(ctx context.Context) error {
	return h.call(ctx, http.MethodGet, "/health", nil, nil)
}

// Login exchanges credentials for a token
func (h *httpClient) Login(ctx context.Context, userName, password string) (string, error) {
	req := struct {
		UserName string `json:"userName"`
		Password string `json:"password"`
	}{userName, password}

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := h.call(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: %w: empty token", ErrMalformedResponse)
	}

	return resp.Token, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	return h.call(ctx, http.MethodPost, "/logout", nil, nil)
}

// CheckAuth reports whether the current token is accepted by the server
func (h *httpClient) CheckAuth(ctx context.Context) (bool, error) {
	err := h.call(ctx, http.MethodGet, "/check-auth", nil, nil)
	if err == nil {
		return true, nil
	}
	if IsStatus(err, http.StatusUnauthorized) {
		return false, nil
	}
	return false, err
}

// call performs a request and decodes the JSON response into result (if not nil)
func (h *httpClient) call(ctx context.Context, method, path string, body, result any) error {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	return h.parseResponse(method, path, resp, result)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := h.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	h.log.Debug("sending request",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}

	return resp, nil
}

func (h *httpClient) parseResponse(method, path string, resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, Path: path, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	h.log.Debug("response received",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode >= 400 {
		return &TransportError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Body:   string(body),
			Err:    fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	if result == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(result); err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrMalformedResponse, err)
	}

	return nil
}

// Endpoints are the paths of one remote collection, relative to the base URL.
// Update and Delete get "/{id}" appended.
type Endpoints struct {
	List   string
	Create string
	Update string
	Delete string
}

var (
	ClientEndpoints = Endpoints{
		List:   "/clients",
		Create: "/client",
		Update: "/update/client",
		Delete: "/delete/client",
	}
	PurchaseEndpoints = Endpoints{
		List:   "/compras",
		Create: "/compras",
		Update: "/update/compra",
		Delete: "/delete/compra",
	}
	PaymentEndpoints = Endpoints{
		List:   "/abonos",
		Create: "/abonos",
		Update: "/update/abono",
		Delete: "/delete/abono",
	}
)

// Remote is the CRUD contract of one remote collection.
type Remote interface {
	FetchAll(ctx context.Context) ([]Raw, error)
	Create(ctx context.Context, payload any) (Raw, error)
	Update(ctx context.Context, id int, payload any) (Raw, error)
	Remove(ctx context.Context, id int) error
}

// collection is a Remote backed by the shared httpClient.
type collection struct {
	http      *httpClient
	endpoints Endpoints
}

// Collection returns the Remote for the given endpoints. All collections share h.
func (h *httpClient) Collection(e Endpoints) Remote {
	return &collection{http: h, endpoints: e}
}

func (c *collection) FetchAll(ctx context.Context) ([]Raw, error) {
	var resp map[string]any
	if err := c.http.call(ctx, http.MethodGet, c.endpoints.List, nil, &resp); err != nil {
		return nil, err
	}

	items, ok := resp["data"].([]any)
	if !ok {
		return nil, fmt.Errorf("GET %s: %w: \"data\" is not an array", c.endpoints.List, ErrMalformedResponse)
	}

	records := make([]Raw, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			records = append(records, obj)
		}
	}

	return records, nil
}

func (c *collection) Create(ctx context.Context, payload any) (Raw, error) {
	var resp map[string]any
	if err := c.http.call(ctx, http.MethodPost, c.endpoints.Create, payload, &resp); err != nil {
		return nil, err
	}
	return unwrapData(resp), nil
}

func (c *collection) Update(ctx context.Context, id int, payload any) (Raw, error) {
	var resp map[string]any
	if err := c.http.call(ctx, http.MethodPut, c.endpoints.Update+"/"+strconv.Itoa(id), payload, &resp); err != nil {
		return nil, err
	}
	return unwrapData(resp), nil
}

func (c *collection) Remove(ctx context.Context, id int) error {
	return c.http.call(ctx, http.MethodDelete, c.endpoints.Delete+"/"+strconv.Itoa(id), nil, nil)
}

// unwrapData accepts both a bare record and {"data": record}.
func unwrapData(resp map[string]any) Raw {
	if inner, ok := resp["data"].(map[string]any); ok {
		return inner
	}
	return resp
}
