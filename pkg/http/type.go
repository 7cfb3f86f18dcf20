package http

import (
	"net/http"
	"time"
)

// ClientConfig tunes timeout and retry behavior for outbound requests.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

type implClient struct {
	client *http.Client
	config ClientConfig
}
