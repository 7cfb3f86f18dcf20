package model

// Badge category constants
const (
	BadgeCategoryActivity = "activity"
)

// EarnedBadge is a badge a user unlocked, with its display metadata.
type EarnedBadge struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Emoji       string  `json:"emoji"`
	Category    string  `json:"category"`
	Priority    int     `json:"priority"`
	Rarity      float64 `json:"rarity"`
}

// Suggestion points at a badge the user is close to earning.
type Suggestion struct {
	BadgeID string `json:"badge_id"`
	Message string `json:"message"`
}

// SanitizedAnalytics is the reduced, rounded analytics view safe for
// external display. Never expose the full snapshot.
type SanitizedAnalytics struct {
	Activity   SanitizedActivity   `json:"activity"`
	Engagement SanitizedEngagement `json:"engagement"`
	Patterns   SanitizedPatterns   `json:"patterns"`
}

type SanitizedActivity struct {
	TotalPosts     int     `json:"total_posts"`
	AvgPostsPerDay float64 `json:"avg_posts_per_day"`
	IsActiveUser   bool    `json:"is_active_user"`
}

type SanitizedEngagement struct {
	AvgLikesPerPost float64 `json:"avg_likes_per_post"`
	EngagementScore float64 `json:"engagement_score"`
}

type SanitizedPatterns struct {
	MostActiveHour    int `json:"most_active_hour"`
	WeekendPercentage int `json:"weekend_percentage"`
	ReplyPercentage   int `json:"reply_percentage"`
}

// SelectionMetadata describes a badge selection run.
type SelectionMetadata struct {
	TotalEarned   int    `json:"total_earned"`
	TotalSelected int    `json:"total_selected"`
	Personality   string `json:"personality"`
	Error         string `json:"error,omitempty"`
}

// SelectionResult is the final outcome of badge evaluation and aggregation.
type SelectionResult struct {
	SelectedBadges  []EarnedBadge      `json:"selected_badges"`
	AllEarnedBadges []EarnedBadge      `json:"all_earned_badges"`
	Analytics       SanitizedAnalytics `json:"analytics"`
	Suggestions     []Suggestion       `json:"suggestions"`
	Metadata        SelectionMetadata  `json:"metadata"`
}
