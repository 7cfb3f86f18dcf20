package analytics

import (
	"context"

	"skyscore-srv/internal/model"
)

// UseCase turns collected user data into a badge-ready analytics snapshot.
// Calculate never fails: with no posts it returns the ghost sentinel snapshot.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Calculate(ctx context.Context, data model.RawUserData) model.AnalyticsSnapshot
}
