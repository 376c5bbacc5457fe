package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/onecx/announcement-console/pkg/config"
	appErrors "github.com/onecx/announcement-console/pkg/errors"
	"github.com/onecx/announcement-console/pkg/middleware/requestid"
)

const userAgent = "announcement-console"

// Client talks to the announcement backend. The backend is a black box here:
// only its request and response shapes are known.
type Client struct {
	http    *resty.Client
	logger  *zap.Logger
	observe func(operation string, status int, duration time.Duration)
}

// New builds a client against the configured base URL. Requests carry a fresh
// correlation id so backend logs can be tied to console operations.
func New(cfg config.RemoteConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &Client{http: r, logger: logger}
}

// OnCall registers an observer invoked after every backend call, e.g. for
// Prometheus instrumentation. A zero status marks a transport failure.
func (c *Client) OnCall(fn func(operation string, status int, duration time.Duration)) {
	c.observe = fn
}

// do executes one backend call. Transport failures carry no status; HTTP
// failures keep the upstream status code for notice keying.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader(requestid.Header, uuid.NewString())
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if c.observe != nil {
		status := 0
		if err == nil {
			status = resp.StatusCode()
		}
		c.observe(operation, status, time.Since(start))
	}
	if err != nil {
		return appErrors.Remote(err, 0, operation)
	}
	if resp.IsError() {
		detail := strings.TrimSpace(resp.String())
		if detail == "" {
			detail = resp.Status()
		}
		return appErrors.Remote(fmt.Errorf("%s", detail), resp.StatusCode(), operation)
	}

	c.logger.Debug("remote_call",
		zap.String("operation", operation),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
	)

	return nil
}
