package http

import "time"

const (
	// DefaultTimeout bounds a single upstream call, profile plus feed fetch included.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is how many times a failed call is retried.
	DefaultRetries = 3
	// DefaultRetryWait is the pause between retries.
	DefaultRetryWait = 1 * time.Second
)

// DefaultConfig is the policy used when the caller does not tune anything.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
