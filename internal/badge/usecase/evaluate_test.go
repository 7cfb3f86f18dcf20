package usecase

import (
	"context"
	"testing"
	"time"

	analyticsuc "skyscore-srv/internal/analytics/usecase"
	"skyscore-srv/internal/badge/catalog"
	"skyscore-srv/internal/model"
	"skyscore-srv/internal/userdata"
	"skyscore-srv/pkg/log"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeCollector struct {
	data model.RawUserData
	err  error
}

func (f *fakeCollector) Collect(_ context.Context, _ string) (model.RawUserData, error) {
	return f.data, f.err
}

func newTestUseCase(t *testing.T, c *catalog.Catalog, collector userdata.UseCase) *implUseCase {
	t.Helper()
	if c == nil {
		var err error
		c, err = catalog.NewDefault(catalog.DefaultThresholds())
		if err != nil {
			t.Fatalf("build catalog: %v", err)
		}
	}
	l := log.NewNopLogger()
	analyticsUC := analyticsuc.New(l, analyticsuc.Config{Now: func() time.Time { return testNow }})
	return New(c, collector, analyticsUC, l, Config{}).(*implUseCase)
}

func TestEvaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("panicking predicate does not abort the batch", func(t *testing.T) {
		c := catalog.New()
		defs := []catalog.Definition{
			{ID: "steady_one", Name: "Steady One", Priority: 2,
				Predicate: func(model.RawUserData, model.AnalyticsSnapshot) bool { return true }},
			{ID: "broken", Name: "Broken", Priority: 9,
				Predicate: func(model.RawUserData, model.AnalyticsSnapshot) bool { panic("bad rule") }},
			{ID: "steady_two", Name: "Steady Two", Priority: 5,
				Predicate: func(model.RawUserData, model.AnalyticsSnapshot) bool { return true }},
		}
		if err := c.RegisterCategory(defs); err != nil {
			t.Fatalf("register: %v", err)
		}

		uc := newTestUseCase(t, c, &fakeCollector{})
		earned := uc.Evaluate(ctx, model.RawUserData{}, model.AnalyticsSnapshot{})

		if len(earned) != 2 {
			t.Fatalf("expected 2 earned badges, got %d", len(earned))
		}
		if earned[0].ID != "steady_two" || earned[1].ID != "steady_one" {
			t.Errorf("unexpected order: %s, %s", earned[0].ID, earned[1].ID)
		}
	})

	t.Run("ties break on registration order", func(t *testing.T) {
		c := catalog.New()
		always := func(model.RawUserData, model.AnalyticsSnapshot) bool { return true }
		defs := []catalog.Definition{
			{ID: "a", Name: "A", Priority: 3, Predicate: always},
			{ID: "b", Name: "B", Priority: 9, Predicate: always},
			{ID: "c", Name: "C", Priority: 9, Predicate: always},
		}
		if err := c.RegisterCategory(defs); err != nil {
			t.Fatalf("register: %v", err)
		}

		uc := newTestUseCase(t, c, &fakeCollector{})
		earned := uc.Evaluate(ctx, model.RawUserData{}, model.AnalyticsSnapshot{})

		want := []string{"b", "c", "a"}
		for i, id := range want {
			if earned[i].ID != id {
				t.Errorf("position %d: got %s, want %s", i, earned[i].ID, id)
			}
		}
	})

	t.Run("ghost earns only the ghost badge", func(t *testing.T) {
		uc := newTestUseCase(t, nil, &fakeCollector{})
		snapshot := model.AnalyticsSnapshot{Patterns: model.PatternReport{IsGhost: true}}
		earned := uc.Evaluate(ctx, model.RawUserData{}, snapshot)

		if len(earned) != 1 || earned[0].ID != "ghost" {
			t.Fatalf("expected only ghost, got %+v", earned)
		}
		if earned[0].Priority != 10 {
			t.Errorf("ghost priority: got %d, want 10", earned[0].Priority)
		}
	})
}

func TestCalculateUserBadges(t *testing.T) {
	ctx := context.Background()

	t.Run("single stale post earns sky tourist", func(t *testing.T) {
		collector := &fakeCollector{data: model.RawUserData{
			Profile: model.Profile{Handle: "tourist.bsky.social"},
			Posts: []model.Post{
				{Text: "just checking this out", CreatedAt: testNow.AddDate(0, 0, -10)},
			},
		}}
		uc := newTestUseCase(t, nil, collector)
		result := uc.CalculateUserBadges(ctx, "tourist.bsky.social")

		found := false
		for _, b := range result.AllEarnedBadges {
			if b.ID == "sky_tourist" {
				found = true
			}
			if b.ID == "ghost" {
				t.Error("ghost must not trigger with one post")
			}
		}
		if !found {
			t.Error("expected sky_tourist badge")
		}
		if result.Analytics.Activity.TotalPosts != 1 {
			t.Errorf("sanitized total posts: got %d, want 1", result.Analytics.Activity.TotalPosts)
		}
	})

	t.Run("collection failure degrades to empty result", func(t *testing.T) {
		collector := &fakeCollector{err: userdata.ErrProfileNotFound}
		uc := newTestUseCase(t, nil, collector)
		result := uc.CalculateUserBadges(ctx, "missing.bsky.social")

		if len(result.SelectedBadges) != 0 || len(result.AllEarnedBadges) != 0 {
			t.Error("expected no badges in degraded result")
		}
		if result.Metadata.Error == "" {
			t.Error("expected metadata error to be set")
		}
		if result.Analytics.Patterns.MostActiveHour != 12 {
			t.Errorf("degraded most active hour: got %d, want 12", result.Analytics.Patterns.MostActiveHour)
		}
	})
}
