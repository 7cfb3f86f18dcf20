package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"skyscore-srv/internal/model"
)

// Evaluate runs every catalog predicate against the snapshot concurrently.
// A predicate that panics is logged and contributes nothing; it never aborts
// the batch. The result is sorted by priority descending with catalog
// registration order breaking ties, so output is deterministic.
func (uc *implUseCase) Evaluate(ctx context.Context, data model.RawUserData, snapshot model.AnalyticsSnapshot) []model.EarnedBadge {
	defs := uc.catalog.All()
	outcomes := make([]bool, len(defs))

	var g errgroup.Group
	for i, def := range defs {
		i, def := i, def
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					uc.l.Errorf(ctx, "badge.usecase.Evaluate: predicate %s panicked: %v", def.ID, r)
					outcomes[i] = false
				}
			}()
			outcomes[i] = def.Predicate(data, snapshot)
			return nil
		})
	}
	// Predicates report failure via panic only, so Wait cannot return an error.
	_ = g.Wait()

	earned := make([]model.EarnedBadge, 0, len(defs))
	for i, def := range defs {
		if !outcomes[i] {
			continue
		}
		earned = append(earned, model.EarnedBadge{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Emoji:       def.Emoji,
			Category:    def.Category,
			Priority:    def.Priority,
			Rarity:      neutralRarity,
		})
	}

	// earned is in registration order here; a stable sort keeps that order
	// within equal priorities.
	sort.SliceStable(earned, func(a, b int) bool {
		return earned[a].Priority > earned[b].Priority
	})

	uc.l.Debugf(ctx, "badge.usecase.Evaluate: %s earned %d of %d badges",
		snapshot.Profile.Handle, len(earned), len(defs))
	return earned
}
