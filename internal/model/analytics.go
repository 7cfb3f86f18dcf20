package model

import "time"

// AnalyticsSnapshot is the full processed view of a user's collected data.
// It is immutable once built; badge predicates read it concurrently.
type AnalyticsSnapshot struct {
	Profile    ProfileReport     `json:"profile"`
	Activity   ActivityReport    `json:"activity"`
	Temporal   TemporalReport    `json:"temporal"`
	Content    ContentReport     `json:"content"`
	Social     SocialReport      `json:"social"`
	Engagement EngagementReport  `json:"engagement"`
	Patterns   PatternReport     `json:"patterns"`
	Metadata   AnalyticsMetadata `json:"metadata"`
}

// ProfileReport holds profile-derived ratios.
type ProfileReport struct {
	Handle         string  `json:"handle"`
	Followers      int     `json:"followers"`
	Following      int     `json:"following"`
	PostsCount     int     `json:"posts_count"`
	AccountAgeDays int     `json:"account_age_days"`
	FollowerRatio  float64 `json:"follower_ratio"`
	FollowingRatio float64 `json:"following_ratio"`
}

// ActivityReport holds posting-volume metrics.
type ActivityReport struct {
	TotalPosts         int     `json:"total_posts"`
	PostsLast7Days     int     `json:"posts_last_7_days"`
	PostsLast30Days    int     `json:"posts_last_30_days"`
	AvgPostsPerDay     float64 `json:"avg_posts_per_day"`
	LongestGapDays     int     `json:"longest_gap_days"`
	HasRecentActivity  bool    `json:"has_recent_activity"`
	IsActiveUser       bool    `json:"is_active_user"`
	PostingConsistency float64 `json:"posting_consistency"`
}

// TemporalReport holds when-the-user-posts metrics. Percentages are in [0,100].
type TemporalReport struct {
	HourlyDistribution  [24]int `json:"hourly_distribution"`
	DailyDistribution   [7]int  `json:"daily_distribution"` // index 0 = Sunday
	MonthlyDistribution [12]int `json:"monthly_distribution"`

	NightPostsPercentage   float64 `json:"night_posts_percentage"`
	EarlyMorningPercentage float64 `json:"early_morning_percentage"`
	WorkHourPercentage     float64 `json:"work_hour_percentage"`
	WeekendPercentage      float64 `json:"weekend_percentage"`
	LunchTimePercentage    float64 `json:"lunch_time_percentage"`
	SiestaTimePercentage   float64 `json:"siesta_time_percentage"`

	MostActiveHour int `json:"most_active_hour"`
	MostActiveDay  int `json:"most_active_day"`
	HourSpread     int `json:"hour_spread"`
}

// ContentReport holds what-the-user-posts metrics.
type ContentReport struct {
	AvgPostLength      float64      `json:"avg_post_length"`
	AvgHashtagsPerPost float64      `json:"avg_hashtags_per_post"`
	EmojiPercentage    float64      `json:"emoji_percentage"`
	LinkPercentage     float64      `json:"link_percentage"`
	RepliesPercentage  float64      `json:"replies_percentage"`
	ReplyToPostRatio   float64      `json:"reply_to_post_ratio"`
	TotalReplies       int          `json:"total_replies"`
	TotalOriginalPosts int          `json:"total_original_posts"`
	Style              ContentStyle `json:"style"`
}

// ContentStyle holds coarse writing-style flags.
type ContentStyle struct {
	IsMinimalist     bool `json:"is_minimalist"`
	IsVerbose        bool `json:"is_verbose"`
	HasPhilosophical bool `json:"has_philosophical"`
	HasHumor         bool `json:"has_humor"`
	IsControversial  bool `json:"is_controversial"`
}

// SocialReport holds received-engagement metrics.
type SocialReport struct {
	TotalLikes           int     `json:"total_likes"`
	TotalReplies         int     `json:"total_replies"`
	TotalReposts         int     `json:"total_reposts"`
	AvgLikesPerPost      float64 `json:"avg_likes_per_post"`
	AvgRepliesPerPost    float64 `json:"avg_replies_per_post"`
	AvgRepostsPerPost    float64 `json:"avg_reposts_per_post"`
	ViralPostsCount      int     `json:"viral_posts_count"`
	BestPostLikes        int     `json:"best_post_likes"`
	EngagementRate       float64 `json:"engagement_rate"`
	GivesToReceivesRatio float64 `json:"gives_to_receives_ratio"`
}

// EngagementReport holds the weighted engagement score.
type EngagementReport struct {
	EngagementScore      float64 `json:"engagement_score"`
	AvgEngagementPerPost float64 `json:"avg_engagement_per_post"`
	InteractionsGiven    int     `json:"interactions_given"`
	InteractionsReceived int     `json:"interactions_received"`
}

// PatternReport holds behavioral flags.
type PatternReport struct {
	IsGhost           bool `json:"is_ghost"`
	IsNewbie          bool `json:"is_newbie"`
	IsLurker          bool `json:"is_lurker"`
	IsReplyHeavy      bool `json:"is_reply_heavy"`
	HasPostingStreaks bool `json:"has_posting_streaks"`
	HasLongSilences   bool `json:"has_long_silences"`
	PostedToday       bool `json:"posted_today"`
	PostedThisWeek    bool `json:"posted_this_week"`
}

// AnalyticsMetadata describes the calculation itself.
type AnalyticsMetadata struct {
	CalculatedAt       time.Time `json:"calculated_at"`
	PostsAnalyzed      int       `json:"posts_analyzed"`
	AnalysisWindowDays int       `json:"analysis_window_days"`
}
