package email

type EmailMeta struct {
	Recipient    string
	CC           []string
	TemplateType string
}

type Email struct {
	Recipient string
	Subject   string
	Body      string
	CC        []string
}

// These types are used to apply data to email templates
type ScoreReport struct {
	Handle          string
	Score           int
	Archetype       string
	Article         string // "a" or "an", depends on the archetype
	Badges          []ScoreReportBadge
	Metrics         ScoreReportMetrics
	CardURL         string
	HasBadges       bool
	BadgeCountLabel string
}

type ScoreReportBadge struct {
	Emoji       string
	Name        string
	Description string
}

type ScoreReportMetrics struct {
	TotalPosts      int
	AvgPostsPerDay  float64
	AvgLikesPerPost float64
	WeekendActivity int
}
