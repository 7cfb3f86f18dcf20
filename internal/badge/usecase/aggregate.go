package usecase

import (
	"context"
	"math"
	"sort"

	"skyscore-srv/internal/model"
	"skyscore-srv/pkg/util"
)

const (
	maxSuggestions = 3

	personalityDefault = "Unique Individual"

	degradedResultError = "could not calculate badges"
)

// personalityPrecedence maps earned-badge ids to personality labels. The
// first id in this list that the user earned wins.
var personalityPrecedence = []struct {
	badgeID string
	label   string
}{
	{"ghost", "Observer"},
	{"sky_addict", "Social Butterfly"},
	{"echo", "Conversationalist"},
	{"time_traveler", "Night Owl"},
	{"newbie", "Explorer"},
}

// Aggregate ranks the earned set, keeps the top badges for display, and
// derives the personality label, suggestions and sanitized analytics.
func (uc *implUseCase) Aggregate(ctx context.Context, earned []model.EarnedBadge, snapshot model.AnalyticsSnapshot) model.SelectionResult {
	ranked := make([]model.EarnedBadge, len(earned))
	copy(ranked, earned)
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].Priority != ranked[b].Priority {
			return ranked[a].Priority > ranked[b].Priority
		}
		return uc.catalog.Order(ranked[a].ID) < uc.catalog.Order(ranked[b].ID)
	})

	selected := ranked
	if len(selected) > uc.cfg.MaxSelectedBadges {
		selected = selected[:uc.cfg.MaxSelectedBadges]
	}

	result := model.SelectionResult{
		SelectedBadges:  selected,
		AllEarnedBadges: ranked,
		Analytics:       sanitizeAnalytics(snapshot),
		Suggestions:     uc.suggestNextBadges(ranked, snapshot),
		Metadata: model.SelectionMetadata{
			TotalEarned:   len(ranked),
			TotalSelected: len(selected),
			Personality:   inferPersonality(ranked),
		},
	}

	uc.l.Infof(ctx, "badge.usecase.Aggregate: %s selected %d of %d earned badges, personality %s",
		snapshot.Profile.Handle, len(selected), len(ranked), result.Metadata.Personality)
	return result
}

// emptyResult is the degenerate outcome used when collection or analysis
// fails. It is a fully-formed zero selection, never a nil or partial one.
func (uc *implUseCase) emptyResult() model.SelectionResult {
	return model.SelectionResult{
		SelectedBadges:  []model.EarnedBadge{},
		AllEarnedBadges: []model.EarnedBadge{},
		Analytics: model.SanitizedAnalytics{
			Patterns: model.SanitizedPatterns{MostActiveHour: 12},
		},
		Suggestions: []model.Suggestion{},
		Metadata: model.SelectionMetadata{
			Error: degradedResultError,
		},
	}
}

func inferPersonality(earned []model.EarnedBadge) string {
	ids := make(map[string]bool, len(earned))
	for _, b := range earned {
		ids[b.ID] = true
	}
	for _, p := range personalityPrecedence {
		if ids[p.badgeID] {
			return p.label
		}
	}
	return personalityDefault
}

// suggestNextBadges proposes badges the user is close to earning, capped at
// maxSuggestions.
func (uc *implUseCase) suggestNextBadges(earned []model.EarnedBadge, snapshot model.AnalyticsSnapshot) []model.Suggestion {
	earnedIDs := make(map[string]bool, len(earned))
	for _, b := range earned {
		earnedIDs[b.ID] = true
	}

	suggestions := make([]model.Suggestion, 0, maxSuggestions)
	if !earnedIDs["sky_addict"] && snapshot.Activity.AvgPostsPerDay > 3 {
		suggestions = append(suggestions, model.Suggestion{
			BadgeID: "sky_addict",
			Message: "Post a bit more consistently to earn this badge!",
		})
	}
	if !earnedIDs["weekend_poster"] && snapshot.Temporal.WeekendPercentage > 60 {
		suggestions = append(suggestions, model.Suggestion{
			BadgeID: "weekend_poster",
			Message: "Focus your weekend posting to unlock this badge!",
		})
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// sanitizeAnalytics reduces the snapshot to the rounded subset exposed to
// clients and emails.
func sanitizeAnalytics(snapshot model.AnalyticsSnapshot) model.SanitizedAnalytics {
	return model.SanitizedAnalytics{
		Activity: model.SanitizedActivity{
			TotalPosts:     snapshot.Activity.TotalPosts,
			AvgPostsPerDay: util.Round1(snapshot.Activity.AvgPostsPerDay),
			IsActiveUser:   snapshot.Activity.IsActiveUser,
		},
		Engagement: model.SanitizedEngagement{
			AvgLikesPerPost: util.Round1(snapshot.Social.AvgLikesPerPost),
			EngagementScore: util.Round1(snapshot.Engagement.AvgEngagementPerPost),
		},
		Patterns: model.SanitizedPatterns{
			MostActiveHour:    snapshot.Temporal.MostActiveHour,
			WeekendPercentage: int(math.Round(snapshot.Temporal.WeekendPercentage)),
			ReplyPercentage:   int(math.Round(snapshot.Content.RepliesPercentage)),
		},
	}
}
