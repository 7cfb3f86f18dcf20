package badge

import (
	"context"

	"skyscore-srv/internal/model"
)

// UseCase evaluates the badge catalog against user analytics and aggregates
// the outcome into a display-ready selection.
//
// CalculateUserBadges never fails: when collection or any downstream step
// breaks it degrades to a well-formed empty SelectionResult with the error
// noted in metadata.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Evaluate(ctx context.Context, data model.RawUserData, snapshot model.AnalyticsSnapshot) []model.EarnedBadge
	Aggregate(ctx context.Context, earned []model.EarnedBadge, snapshot model.AnalyticsSnapshot) model.SelectionResult
	CalculateUserBadges(ctx context.Context, handle string) model.SelectionResult
}
