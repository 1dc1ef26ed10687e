package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputRaw = "RAW"

var ErrNotConfigured = errors.New("spreadsheet id not configured")

type Config struct {
	CredentialsJSON []byte
	SpreadsheetID   string
	// Location is used for the date and time columns. Defaults to UTC.
	Location *time.Location
	// BreakerFailures consecutive write failures open the breaker for
	// BreakerTimeout.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

type Client struct {
	service       *sheets.Service
	spreadsheetID string
	location      *time.Location
	breaker       *gobreaker.CircuitBreaker[any]
}

func New(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, ErrNotConfigured
	}
	if len(cfg.CredentialsJSON) > 0 {
		opts = append([]option.ClientOption{option.WithCredentialsJSON(cfg.CredentialsJSON)}, opts...)
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	timeout := cfg.BreakerTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		location:      location,
		breaker: gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
			Name:    "google-sheets",
			Timeout: timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
		}),
	}, nil
}

func (c *Client) get(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet range %s: %w", readRange, err)
	}
	return resp.Values, nil
}

// write runs a mutating call through the circuit breaker.
func (c *Client) write(fn func() error) error {
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, fn()
	})
	return err
}
