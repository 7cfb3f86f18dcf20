package http

import (
	"context"
	"net/http"
)

// IClient is the outbound JSON client used for the Bluesky XRPC endpoints
// and the Discord webhook. Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a client with the given timeout and retry policy.
// Zero-valued fields fall back to the package defaults.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = DefaultRetryWait
	}
	return &implClient{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
	}
}
