// Package razorpay creates orders through the Razorpay Orders API.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/vitaran/vitaran/internal/vitaran/domain"
	"github.com/vitaran/vitaran/internal/vitaran/payment"
	"github.com/vitaran/vitaran/pkg/slogx"
)

const (
	DefaultBaseURL            = "https://api.razorpay.com"
	DefaultTimeout            = 10 * time.Second
	DefaultBreakerMaxFailures = 5
	DefaultBreakerTimeout     = 30 * time.Second

	maxResponseBytes = 1 << 20
)

var ErrMissingCredentials = errors.New("razorpay: key id and secret are required")

type Config struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Timeout   time.Duration

	// BreakerMaxFailures consecutive failures open the circuit for BreakerTimeout.
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration

	// HTTPClient overrides the default client, mostly for tests.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
	cb        *gobreaker.CircuitBreaker
}

var _ payment.Gateway = (*Client)(nil)

func New(cfg Config) (*Client, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = DefaultBreakerMaxFailures
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = DefaultBreakerTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	logger := cfg.Logger
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "razorpay",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxFailures
		},
		// A rejected order says nothing about the gateway's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, payment.ErrRejected)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		http:      httpClient,
		cb:        cb,
	}, nil
}

func (c *Client) Name() string  { return "razorpay" }
func (c *Client) KeyID() string { return c.keyID }

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder posts to /v1/orders and returns the order object as received.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (json.RawMessage, error) {
	res, err := c.cb.Execute(func() (interface{}, error) {
		return c.createOrder(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %w", payment.ErrUnavailable, err)
		}
		return nil, err
	}
	return res.(json.RawMessage), nil
}

func (c *Client) createOrder(ctx context.Context, req domain.OrderRequest) (json.RawMessage, error) {
	log := slogx.FromContext(ctx)

	body, err := json.Marshal(orderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(c.keyID, c.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", payment.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", payment.ErrUnavailable, err)
	}

	log.Debug("razorpay create order",
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		slog.String("receipt", req.Receipt),
	)

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", payment.ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 300:
		var e errorResponse
		_ = json.Unmarshal(raw, &e)
		return nil, fmt.Errorf("%w: status %d: %s %s",
			payment.ErrRejected, resp.StatusCode, e.Error.Code, e.Error.Description)
	}

	if !json.Valid(raw) || !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return nil, fmt.Errorf("%w: response is not a JSON object", payment.ErrUnavailable)
	}
	return json.RawMessage(raw), nil
}
