// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/givesachin/node-api-and-auth/models"
	"github.com/go-resty/resty/v2"
)

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("token rejected")
	ErrConflict     = errors.New("username already exists")
	ErrNotFound     = errors.New("item not found")
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a thread-safe API client. The token captured by Login is
// attached as a bearer header to every subsequent item request.
type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:36535"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{http: cli}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register creates a new account. It does not log the account in.
func (c *Client) Register(ctx context.Context, username, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Username: username, Password: password}).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	_, err = decodeEnvelope(resp)
	return err
}

// Login authenticates and stores the returned bearer token on the client.
func (c *Client) Login(ctx context.Context, username, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Username: username, Password: password}).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return err
	}
	if envelope.Token == "" {
		return errors.New("login response carried no token")
	}

	c.SetToken(envelope.Token)
	return nil
}

func (c *Client) CreateItem(ctx context.Context, name string) (models.Item, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"name": name}).
		Post("/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return models.Item{}, err
	}
	if envelope.Item == nil {
		return models.Item{}, errors.New("create response carried no item")
	}

	return *envelope.Item, nil
}

func (c *Client) ListItems(ctx context.Context) ([]models.Item, error) {
	resp, err := c.authedRequest(ctx).Get("/items/list")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}
	if envelope.Items == nil {
		return []models.Item{}, nil
	}

	return *envelope.Items, nil
}

func (c *Client) GetItem(ctx context.Context, id int64) (models.Item, error) {
	resp, err := c.authedRequest(ctx).Get(fmt.Sprintf("/items/%d", id))
	if err != nil {
		return models.Item{}, fmt.Errorf("get item request: %w", err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return models.Item{}, err
	}
	if envelope.Item == nil {
		return models.Item{}, errors.New("get response carried no item")
	}

	return *envelope.Item, nil
}

func (c *Client) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post("/items/update")
	if err != nil {
		return models.Item{}, fmt.Errorf("update item request: %w", err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return models.Item{}, err
	}
	if envelope.Item == nil {
		return models.Item{}, errors.New("update response carried no item")
	}

	return *envelope.Item, nil
}

// DeleteItem removes the item and returns its pre-delete snapshot.
func (c *Client) DeleteItem(ctx context.Context, id int64) (models.Item, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]int64{"id": id}).
		Post("/items/delete")
	if err != nil {
		return models.Item{}, fmt.Errorf("delete item request: %w", err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return models.Item{}, err
	}
	if envelope.Item == nil {
		return models.Item{}, errors.New("delete response carried no item")
	}

	return *envelope.Item, nil
}

func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// decodeEnvelope unwraps the canonical response envelope, mapping failure
// statuses onto the package's sentinel errors.
func decodeEnvelope(resp *resty.Response) (models.Response, error) {
	var envelope models.Response
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Response{}, fmt.Errorf("decode response (http %d): %w", resp.StatusCode(), err)
	}

	if envelope.Success {
		return envelope, nil
	}

	apiError := envelope.Error
	if apiError == "" {
		apiError = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return models.Response{}, fmt.Errorf("%w: %s", ErrUnauthorized, apiError)
	case http.StatusForbidden:
		return models.Response{}, fmt.Errorf("%w: %s", ErrForbidden, apiError)
	case http.StatusConflict:
		return models.Response{}, fmt.Errorf("%w: %s", ErrConflict, apiError)
	case http.StatusNotFound:
		return models.Response{}, fmt.Errorf("%w: %s", ErrNotFound, apiError)
	default:
		return models.Response{}, fmt.Errorf("http %d: %s", resp.StatusCode(), apiError)
	}
}
