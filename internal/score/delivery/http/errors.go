package http

import (
	"errors"

	"skyscore-srv/internal/score"
	pkgErrors "skyscore-srv/pkg/errors"
)

var (
	errInvalidEmail = pkgErrors.NewHTTPError(
		400, "Valid email address is required",
	)
	errInvalidHandle = pkgErrors.NewHTTPError(
		400, "Please provide a complete Bluesky handle (e.g., @username.bsky.social)",
	)
	errUserNotFound = pkgErrors.NewHTTPError(
		404, "User not found",
	)
	errScoreFailed = pkgErrors.NewHTTPError(
		500, "Failed to calculate SkyScore. Please try again later.",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, score.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, score.ErrCardRenderFailed),
		errors.Is(err, score.ErrCardUploadFailed),
		errors.Is(err, score.ErrScoreSaveFailed):
		return errScoreFailed
	default:
		panic(err)
	}
}
