package userdata

import "errors"

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProviderUnavailable = errors.New("data provider unavailable")
	ErrInvalidHandle       = errors.New("invalid handle")
)
