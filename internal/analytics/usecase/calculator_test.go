package usecase

import (
	"context"
	"reflect"
	"testing"
	"time"

	"skyscore-srv/internal/model"
	"skyscore-srv/pkg/log"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase() *implUseCase {
	return New(log.NewNopLogger(), Config{Now: func() time.Time { return testNow }}).(*implUseCase)
}

func postAt(t time.Time) model.Post {
	return model.Post{Text: "hello world", CreatedAt: t}
}

func TestCalculate(t *testing.T) {
	ctx := context.Background()

	t.Run("no posts yields ghost sentinel", func(t *testing.T) {
		uc := newTestUseCase()
		snap := uc.Calculate(ctx, model.RawUserData{
			Profile: model.Profile{Handle: "ghost.bsky.social"},
		})

		if !snap.Patterns.IsGhost {
			t.Error("expected IsGhost")
		}
		if snap.Activity.TotalPosts != 0 {
			t.Errorf("expected 0 posts, got %d", snap.Activity.TotalPosts)
		}
		if snap.Metadata.PostsAnalyzed != 0 {
			t.Errorf("expected 0 analyzed, got %d", snap.Metadata.PostsAnalyzed)
		}
	})

	t.Run("lone post window measures staleness against now", func(t *testing.T) {
		uc := newTestUseCase()
		snap := uc.Calculate(ctx, model.RawUserData{
			Posts: []model.Post{postAt(testNow.AddDate(0, 0, -10))},
		})

		if snap.Activity.TotalPosts != 1 {
			t.Errorf("expected 1 post, got %d", snap.Activity.TotalPosts)
		}
		if snap.Metadata.AnalysisWindowDays != 10 {
			t.Errorf("expected window 10, got %d", snap.Metadata.AnalysisWindowDays)
		}
		if snap.Activity.LongestGapDays != 0 {
			t.Errorf("expected no gaps, got %d", snap.Activity.LongestGapDays)
		}
	})

	t.Run("lone post from today keeps the minimum window", func(t *testing.T) {
		uc := newTestUseCase()
		snap := uc.Calculate(ctx, model.RawUserData{
			Posts: []model.Post{postAt(testNow.Add(-2 * time.Hour))},
		})

		if snap.Metadata.AnalysisWindowDays != 1 {
			t.Errorf("expected window 1, got %d", snap.Metadata.AnalysisWindowDays)
		}
	})

	t.Run("input ordering does not change the snapshot", func(t *testing.T) {
		uc := newTestUseCase()
		sorted := []model.Post{
			postAt(testNow.AddDate(0, 0, -1)),
			postAt(testNow.AddDate(0, 0, -3)),
			postAt(testNow.AddDate(0, 0, -20)),
		}
		shuffled := []model.Post{sorted[2], sorted[0], sorted[1]}

		a := uc.Calculate(ctx, model.RawUserData{Posts: sorted})
		b := uc.Calculate(ctx, model.RawUserData{Posts: shuffled})
		if !reflect.DeepEqual(a, b) {
			t.Error("expected identical snapshots regardless of input order")
		}
		if b.Activity.LongestGapDays != 17 {
			t.Errorf("longest gap from shuffled input: got %d, want 17", b.Activity.LongestGapDays)
		}
	})

	t.Run("posts across all hours give full hour spread", func(t *testing.T) {
		uc := newTestUseCase()
		posts := make([]model.Post, 0, 24)
		for hour := 23; hour >= 0; hour-- {
			posts = append(posts, postAt(time.Date(2024, 6, 10, hour, 0, 0, 0, time.UTC)))
		}
		snap := uc.Calculate(ctx, model.RawUserData{Posts: posts})

		if snap.Temporal.HourSpread != 24 {
			t.Errorf("expected hour spread 24, got %d", snap.Temporal.HourSpread)
		}
	})

	t.Run("percentages stay within bounds", func(t *testing.T) {
		uc := newTestUseCase()
		posts := []model.Post{
			{Text: "night post", CreatedAt: time.Date(2024, 6, 14, 23, 30, 0, 0, time.UTC), IsReply: true, HasEmojis: true},
			{Text: "lunch post", CreatedAt: time.Date(2024, 6, 12, 12, 30, 0, 0, time.UTC), HasLinks: true},
			{Text: "weekend post", CreatedAt: time.Date(2024, 6, 8, 10, 0, 0, 0, time.UTC)},
		}
		snap := uc.Calculate(ctx, model.RawUserData{Posts: posts})

		checks := map[string]float64{
			"night":        snap.Temporal.NightPostsPercentage,
			"earlyMorning": snap.Temporal.EarlyMorningPercentage,
			"work":         snap.Temporal.WorkHourPercentage,
			"weekend":      snap.Temporal.WeekendPercentage,
			"lunch":        snap.Temporal.LunchTimePercentage,
			"siesta":       snap.Temporal.SiestaTimePercentage,
			"emoji":        snap.Content.EmojiPercentage,
			"link":         snap.Content.LinkPercentage,
			"replies":      snap.Content.RepliesPercentage,
		}
		for name, p := range checks {
			if p < 0 || p > 100 {
				t.Errorf("%s percentage out of bounds: %f", name, p)
			}
		}
	})

	t.Run("average posts per day uses analysis window", func(t *testing.T) {
		uc := newTestUseCase()
		// 10 posts over 5 days, newest first.
		posts := make([]model.Post, 0, 10)
		for i := 0; i < 10; i++ {
			posts = append(posts, postAt(testNow.Add(-time.Duration(i*12)*time.Hour)))
		}
		snap := uc.Calculate(ctx, model.RawUserData{Posts: posts})

		// Span is 4.5 days, floored to 4.
		if snap.Metadata.AnalysisWindowDays != 4 {
			t.Fatalf("expected window 4, got %d", snap.Metadata.AnalysisWindowDays)
		}
		if got, want := snap.Activity.AvgPostsPerDay, 2.5; got != want {
			t.Errorf("avg posts per day: got %f, want %f", got, want)
		}
		if !snap.Activity.IsActiveUser {
			t.Error("expected active user")
		}
	})

	t.Run("consistency needs at least seven posts", func(t *testing.T) {
		uc := newTestUseCase()
		posts := make([]model.Post, 0, 6)
		for i := 0; i < 6; i++ {
			posts = append(posts, postAt(testNow.AddDate(0, 0, -i)))
		}
		snap := uc.Calculate(ctx, model.RawUserData{Posts: posts})
		if snap.Activity.PostingConsistency != 0 {
			t.Errorf("expected 0 consistency below threshold, got %f", snap.Activity.PostingConsistency)
		}
	})

	t.Run("perfectly even week has consistency one", func(t *testing.T) {
		uc := newTestUseCase()
		posts := make([]model.Post, 0, 7)
		for i := 0; i < 7; i++ {
			posts = append(posts, postAt(testNow.AddDate(0, 0, -i)))
		}
		snap := uc.Calculate(ctx, model.RawUserData{Posts: posts})
		if snap.Activity.PostingConsistency != 1 {
			t.Errorf("expected consistency 1, got %f", snap.Activity.PostingConsistency)
		}
	})

	t.Run("consistency never leaves unit interval", func(t *testing.T) {
		uc := newTestUseCase()
		// All posts on one weekday: stddev exceeds mean, raw formula goes negative.
		posts := make([]model.Post, 0, 8)
		for i := 0; i < 8; i++ {
			posts = append(posts, postAt(testNow.AddDate(0, 0, -7*i)))
		}
		snap := uc.Calculate(ctx, model.RawUserData{Posts: posts})
		c := snap.Activity.PostingConsistency
		if c < 0 || c > 1 {
			t.Errorf("consistency out of bounds: %f", c)
		}
	})

	t.Run("reply heavy and lurker detection", func(t *testing.T) {
		uc := newTestUseCase()
		posts := make([]model.Post, 0, 10)
		for i := 0; i < 10; i++ {
			p := postAt(testNow.AddDate(0, 0, -i))
			p.IsReply = i != 0 // 9 of 10 are replies
			posts = append(posts, p)
		}
		snap := uc.Calculate(ctx, model.RawUserData{Posts: posts})

		if !snap.Patterns.IsReplyHeavy {
			t.Error("expected reply heavy")
		}
		if !snap.Patterns.IsLurker {
			t.Error("expected lurker with only 10 percent original posts")
		}
		if snap.Content.TotalOriginalPosts != 1 {
			t.Errorf("expected 1 original, got %d", snap.Content.TotalOriginalPosts)
		}
		if got, want := snap.Content.ReplyToPostRatio, 9.0; got != want {
			t.Errorf("reply ratio: got %f, want %f", got, want)
		}
	})

	t.Run("engagement score weights replies and reposts", func(t *testing.T) {
		uc := newTestUseCase()
		posts := []model.Post{
			{Text: "a", CreatedAt: testNow.AddDate(0, 0, -1), Likes: 10, Replies: 4, Reposts: 2},
			{Text: "b", CreatedAt: testNow.AddDate(0, 0, -2), Likes: 5, Replies: 0, Reposts: 0},
		}
		snap := uc.Calculate(ctx, model.RawUserData{Posts: posts})

		// 10 + 4*2 + 2*1.5 + 5 = 26
		if got, want := snap.Engagement.EngagementScore, 26.0; got != want {
			t.Errorf("engagement score: got %f, want %f", got, want)
		}
		if got, want := snap.Engagement.AvgEngagementPerPost, 13.0; got != want {
			t.Errorf("avg engagement: got %f, want %f", got, want)
		}
	})

	t.Run("idempotent for identical input", func(t *testing.T) {
		uc := newTestUseCase()
		data := model.RawUserData{
			Profile: model.Profile{Handle: "carol.bsky.social", Followers: 10, Following: 5},
			Posts: []model.Post{
				{Text: "first", CreatedAt: testNow.AddDate(0, 0, -1), Likes: 3},
				{Text: "second", CreatedAt: testNow.AddDate(0, 0, -3), Likes: 1, IsReply: true},
			},
		}

		first := uc.Calculate(ctx, data)
		second := uc.Calculate(ctx, data)
		if !reflect.DeepEqual(first, second) {
			t.Error("expected identical snapshots for identical input")
		}
	})

	t.Run("most active hour is first maximum", func(t *testing.T) {
		uc := newTestUseCase()
		posts := []model.Post{
			postAt(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)),
			postAt(time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)),
			postAt(time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)),
			postAt(time.Date(2024, 6, 11, 15, 0, 0, 0, time.UTC)),
		}
		snap := uc.Calculate(ctx, model.RawUserData{Posts: posts})
		if snap.Temporal.MostActiveHour != 9 {
			t.Errorf("expected first max hour 9, got %d", snap.Temporal.MostActiveHour)
		}
	})
}
