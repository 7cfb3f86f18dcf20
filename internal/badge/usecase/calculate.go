package usecase

import (
	"context"

	"skyscore-srv/internal/model"
)

// CalculateUserBadges runs the full pipeline for one handle: collect data,
// derive analytics, evaluate the catalog and aggregate the result. Any
// failure degrades to the empty selection rather than surfacing an error.
func (uc *implUseCase) CalculateUserBadges(ctx context.Context, handle string) model.SelectionResult {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.ComputeTimeout)
	defer cancel()

	data, err := uc.userDataUC.Collect(ctx, handle)
	if err != nil {
		uc.l.Errorf(ctx, "badge.usecase.CalculateUserBadges: collect %s: %v", handle, err)
		return uc.emptyResult()
	}

	snapshot := uc.analyticsUC.Calculate(ctx, data)
	earned := uc.Evaluate(ctx, data, snapshot)
	return uc.Aggregate(ctx, earned, snapshot)
}
