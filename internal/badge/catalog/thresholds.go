package catalog

// Thresholds parameterizes the badge predicates so limits live in
// configuration rather than inside predicate bodies.
type Thresholds struct {
	NewbieMaxPosts          int
	SkyAddictPostsPerDay    float64
	WeekendPosterPercentage float64
	DailyGrinderConsistency float64
	DailyGrinderPostsPerDay float64
	ComebackGapDays         int
	EchoRepliesPercentage   float64
	EchoMinPosts            int
	TimeTravelerHourSpread  int
	TimeTravelerMinPosts    int
	SkyTouristWindowDays    int
}

// DefaultThresholds returns the production tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		NewbieMaxPosts:          5,
		SkyAddictPostsPerDay:    5,
		WeekendPosterPercentage: 80,
		DailyGrinderConsistency: 0.8,
		DailyGrinderPostsPerDay: 0.8,
		ComebackGapDays:         30,
		EchoRepliesPercentage:   80,
		EchoMinPosts:            5,
		TimeTravelerHourSpread:  16,
		TimeTravelerMinPosts:    10,
		SkyTouristWindowDays:    7,
	}
}
