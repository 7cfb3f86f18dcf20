package usecase

import (
	"context"
	"testing"

	"skyscore-srv/internal/badge/catalog"
	"skyscore-srv/internal/model"
)

func TestAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("selection is capped and ordered", func(t *testing.T) {
		c := catalog.New()
		always := func(model.RawUserData, model.AnalyticsSnapshot) bool { return true }
		for _, id := range []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"} {
			if err := c.Register(catalog.Definition{ID: id, Name: id, Priority: 5, Predicate: always}); err != nil {
				t.Fatalf("register: %v", err)
			}
		}

		uc := newTestUseCase(t, c, &fakeCollector{})
		earned := uc.Evaluate(ctx, model.RawUserData{}, model.AnalyticsSnapshot{})
		result := uc.Aggregate(ctx, earned, model.AnalyticsSnapshot{})

		if len(result.SelectedBadges) != 5 {
			t.Fatalf("expected 5 selected, got %d", len(result.SelectedBadges))
		}
		if len(result.AllEarnedBadges) != 7 {
			t.Fatalf("expected 7 earned, got %d", len(result.AllEarnedBadges))
		}
		// Equal priorities keep registration order.
		for i, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
			if result.SelectedBadges[i].ID != id {
				t.Errorf("position %d: got %s, want %s", i, result.SelectedBadges[i].ID, id)
			}
		}
		if result.Metadata.TotalEarned != 7 || result.Metadata.TotalSelected != 5 {
			t.Errorf("metadata counts: %+v", result.Metadata)
		}
	})

	t.Run("aggregate re-sorts unordered input", func(t *testing.T) {
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
		earned := []model.EarnedBadge{
			{ID: "a", Priority: 3},
			{ID: "c", Priority: 9},
			{ID: "b", Priority: 9},
		}
		result := uc.Aggregate(ctx, earned, model.AnalyticsSnapshot{})

		want := []string{"b", "c", "a"}
		for i, id := range want {
			if result.SelectedBadges[i].ID != id {
				t.Errorf("position %d: got %s, want %s", i, result.SelectedBadges[i].ID, id)
			}
		}
	})

	t.Run("personality follows precedence", func(t *testing.T) {
		uc := newTestUseCase(t, nil, &fakeCollector{})

		cases := []struct {
			name   string
			earned []model.EarnedBadge
			want   string
		}{
			{"ghost wins over newbie", []model.EarnedBadge{{ID: "newbie"}, {ID: "ghost"}}, "Observer"},
			{"sky addict", []model.EarnedBadge{{ID: "sky_addict"}, {ID: "echo"}}, "Social Butterfly"},
			{"echo", []model.EarnedBadge{{ID: "echo"}, {ID: "time_traveler"}}, "Conversationalist"},
			{"time traveler", []model.EarnedBadge{{ID: "time_traveler"}}, "Night Owl"},
			{"newbie", []model.EarnedBadge{{ID: "newbie"}, {ID: "weekend_poster"}}, "Explorer"},
			{"no match", []model.EarnedBadge{{ID: "weekend_poster"}}, "Unique Individual"},
			{"nothing earned", nil, "Unique Individual"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				result := uc.Aggregate(ctx, tc.earned, model.AnalyticsSnapshot{})
				if result.Metadata.Personality != tc.want {
					t.Errorf("got %s, want %s", result.Metadata.Personality, tc.want)
				}
			})
		}
	})

	t.Run("suggestions skip already earned badges", func(t *testing.T) {
		uc := newTestUseCase(t, nil, &fakeCollector{})
		snapshot := model.AnalyticsSnapshot{}
		snapshot.Activity.AvgPostsPerDay = 4
		snapshot.Temporal.WeekendPercentage = 70

		result := uc.Aggregate(ctx, nil, snapshot)
		if len(result.Suggestions) != 2 {
			t.Fatalf("expected 2 suggestions, got %d", len(result.Suggestions))
		}

		earned := []model.EarnedBadge{{ID: "sky_addict", Priority: 7}}
		result = uc.Aggregate(ctx, earned, snapshot)
		if len(result.Suggestions) != 1 || result.Suggestions[0].BadgeID != "weekend_poster" {
			t.Errorf("unexpected suggestions: %+v", result.Suggestions)
		}
	})

	t.Run("sanitized analytics are rounded", func(t *testing.T) {
		uc := newTestUseCase(t, nil, &fakeCollector{})
		snapshot := model.AnalyticsSnapshot{}
		snapshot.Activity.TotalPosts = 42
		snapshot.Activity.AvgPostsPerDay = 2.34
		snapshot.Social.AvgLikesPerPost = 7.77
		snapshot.Engagement.AvgEngagementPerPost = 12.06
		snapshot.Temporal.MostActiveHour = 21
		snapshot.Temporal.WeekendPercentage = 33.4
		snapshot.Content.RepliesPercentage = 66.6

		a := uc.Aggregate(ctx, nil, snapshot).Analytics
		if a.Activity.AvgPostsPerDay != 2.3 {
			t.Errorf("avg posts per day: got %f", a.Activity.AvgPostsPerDay)
		}
		if a.Engagement.AvgLikesPerPost != 7.8 {
			t.Errorf("avg likes: got %f", a.Engagement.AvgLikesPerPost)
		}
		if a.Engagement.EngagementScore != 12.1 {
			t.Errorf("engagement score: got %f", a.Engagement.EngagementScore)
		}
		if a.Patterns.WeekendPercentage != 33 || a.Patterns.ReplyPercentage != 67 {
			t.Errorf("percentages: %+v", a.Patterns)
		}
		if a.Patterns.MostActiveHour != 21 {
			t.Errorf("most active hour: got %d", a.Patterns.MostActiveHour)
		}
	})
}
