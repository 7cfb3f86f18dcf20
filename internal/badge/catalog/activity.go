package catalog

import "skyscore-srv/internal/model"

// ActivityDefinitions builds the activity badge set. Registration order here
// doubles as the tie-break order for equal priorities.
func ActivityDefinitions(t Thresholds) []Definition {
	return []Definition{
		{
			ID:          "ghost",
			Name:        "Ghost",
			Emoji:       "👻",
			Description: "Silent observer - no posts detected",
			Category:    model.BadgeCategoryActivity,
			Priority:    10,
			Predicate: func(_ model.RawUserData, s model.AnalyticsSnapshot) bool {
				return s.Activity.TotalPosts == 0
			},
		},
		{
			ID:          "newbie",
			Name:        "Newbie",
			Emoji:       "🌱",
			Description: "Just getting started on the journey",
			Category:    model.BadgeCategoryActivity,
			Priority:    8,
			Predicate: func(_ model.RawUserData, s model.AnalyticsSnapshot) bool {
				return s.Activity.TotalPosts > 0 && s.Activity.TotalPosts < t.NewbieMaxPosts
			},
		},
		{
			ID:          "sky_addict",
			Name:        "Sky Addict",
			Emoji:       "🔥",
			Description: "Lives and breathes Bluesky - posts constantly",
			Category:    model.BadgeCategoryActivity,
			Priority:    7,
			Predicate: func(_ model.RawUserData, s model.AnalyticsSnapshot) bool {
				return s.Activity.AvgPostsPerDay > t.SkyAddictPostsPerDay
			},
		},
		{
			ID:          "weekend_poster",
			Name:        "Weekend Poster",
			Emoji:       "🎉",
			Description: "Saves all the energy for Saturday and Sunday",
			Category:    model.BadgeCategoryActivity,
			Priority:    5,
			Predicate: func(_ model.RawUserData, s model.AnalyticsSnapshot) bool {
				return s.Temporal.WeekendPercentage >= t.WeekendPosterPercentage
			},
		},
		{
			ID:          "daily_grinder",
			Name:        "Daily Grinder",
			Emoji:       "⚡",
			Description: "Never misses a day - consistency champion",
			Category:    model.BadgeCategoryActivity,
			Priority:    9,
			Predicate: func(_ model.RawUserData, s model.AnalyticsSnapshot) bool {
				return s.Activity.PostingConsistency > t.DailyGrinderConsistency &&
					s.Activity.AvgPostsPerDay > t.DailyGrinderPostsPerDay
			},
		},
		{
			ID:          "comeback_kid",
			Name:        "Comeback Kid",
			Emoji:       "🎭",
			Description: "Disappeared for a while, then made a triumphant return",
			Category:    model.BadgeCategoryActivity,
			Priority:    6,
			Predicate: func(_ model.RawUserData, s model.AnalyticsSnapshot) bool {
				return s.Activity.LongestGapDays > t.ComebackGapDays && s.Activity.HasRecentActivity
			},
		},
		{
			ID:          "midlife_crisis",
			Name:        "Midlife Crisis",
			Emoji:       "🚗",
			Description: "Went from silence to posting storm overnight",
			Category:    model.BadgeCategoryActivity,
			Priority:    4,
			Predicate: func(_ model.RawUserData, s model.AnalyticsSnapshot) bool {
				// A last-7-days burst of more than double the usual weekly volume.
				return float64(s.Activity.PostsLast7Days) > s.Activity.AvgPostsPerDay*7*2 &&
					s.Patterns.HasLongSilences
			},
		},
		{
			ID:          "echo",
			Name:        "Echo",
			Emoji:       "🔁",
			Description: "Rarely starts conversations, prefers to join them",
			Category:    model.BadgeCategoryActivity,
			Priority:    5,
			Predicate: func(_ model.RawUserData, s model.AnalyticsSnapshot) bool {
				return s.Content.RepliesPercentage > t.EchoRepliesPercentage &&
					s.Activity.TotalPosts > t.EchoMinPosts
			},
		},
		{
			ID:          "time_traveler",
			Name:        "Time Traveler",
			Emoji:       "⏰",
			Description: "Posts across all hours like time zones mean nothing",
			Category:    model.BadgeCategoryActivity,
			Priority:    3,
			Predicate: func(_ model.RawUserData, s model.AnalyticsSnapshot) bool {
				return s.Temporal.HourSpread >= t.TimeTravelerHourSpread &&
					s.Activity.TotalPosts > t.TimeTravelerMinPosts
			},
		},
		{
			ID:          "sky_tourist",
			Name:        "Sky Tourist",
			Emoji:       "📸",
			Description: "Took one look around and left",
			Category:    model.BadgeCategoryActivity,
			Priority:    8,
			Predicate: func(_ model.RawUserData, s model.AnalyticsSnapshot) bool {
				return s.Activity.TotalPosts == 1 &&
					s.Metadata.AnalysisWindowDays > t.SkyTouristWindowDays
			},
		},
	}
}

// NewDefault builds the full production catalog.
func NewDefault(t Thresholds) (*Catalog, error) {
	c := New()
	if err := c.RegisterCategory(ActivityDefinitions(t)); err != nil {
		return nil, err
	}
	return c, nil
}
