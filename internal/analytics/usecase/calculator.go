package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"skyscore-srv/internal/model"
)

// Time-of-day window boundaries. Hours are local to the post timestamp.
const (
	nightStartHour  = 23
	nightEndHour    = 7
	earlyMorningEnd = 7
	workStartHour   = 9
	workEndHour     = 17
	lunchStartHour  = 12
	lunchEndHour    = 14
	siestaStartHour = 14
	siestaEndHour   = 16
)

// Calculate builds the full analytics snapshot from collected data.
// Input ordering is not trusted; posts are re-sorted newest first on a copy.
func (uc *implUseCase) Calculate(ctx context.Context, data model.RawUserData) model.AnalyticsSnapshot {
	now := uc.cfg.Now()

	if len(data.Posts) == 0 {
		uc.l.Infof(ctx, "analytics.usecase.Calculate: no posts for %s, returning ghost snapshot", data.Profile.Handle)
		return uc.emptySnapshot(data.Profile, now)
	}

	posts := make([]model.Post, len(data.Posts))
	copy(posts, data.Posts)
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return model.AnalyticsSnapshot{
		Profile:    uc.profileReport(data.Profile, now),
		Activity:   uc.activityReport(posts, now),
		Temporal:   uc.temporalReport(posts),
		Content:    uc.contentReport(posts),
		Social:     uc.socialReport(posts, data.Interactions, data.Profile),
		Engagement: uc.engagementReport(posts, data.Interactions),
		Patterns:   uc.patternReport(posts, now),
		Metadata: model.AnalyticsMetadata{
			CalculatedAt:       now,
			PostsAnalyzed:      len(posts),
			AnalysisWindowDays: analysisWindowDays(posts, now),
		},
	}
}

// emptySnapshot is the ghost sentinel: zero-valued, IsGhost set, never nil.
func (uc *implUseCase) emptySnapshot(profile model.Profile, now time.Time) model.AnalyticsSnapshot {
	return model.AnalyticsSnapshot{
		Profile:  uc.profileReport(profile, now),
		Patterns: model.PatternReport{IsGhost: true},
		Metadata: model.AnalyticsMetadata{
			CalculatedAt:  now,
			PostsAnalyzed: 0,
		},
	}
}

func (uc *implUseCase) profileReport(profile model.Profile, now time.Time) model.ProfileReport {
	report := model.ProfileReport{
		Handle:     profile.Handle,
		Followers:  profile.Followers,
		Following:  profile.Following,
		PostsCount: profile.PostsCount,
	}
	if !profile.JoinedDate.IsZero() {
		report.AccountAgeDays = int(now.Sub(profile.JoinedDate).Hours() / 24)
	}
	if profile.Following > 0 {
		report.FollowerRatio = float64(profile.Followers) / float64(profile.Following)
	}
	if profile.Followers > 0 {
		report.FollowingRatio = float64(profile.Following) / float64(profile.Followers)
	}
	return report
}

func (uc *implUseCase) activityReport(posts []model.Post, now time.Time) model.ActivityReport {
	var last7Days, last30Days int
	for _, post := range posts {
		age := now.Sub(post.CreatedAt)
		if age < 7*24*time.Hour {
			last7Days++
		}
		if age < 30*24*time.Hour {
			last30Days++
		}
	}

	window := analysisWindowDays(posts, now)
	avgPostsPerDay := float64(len(posts)) / float64(window)

	gaps := postingGaps(posts)
	longestGap := 0
	for _, gap := range gaps {
		if gap > longestGap {
			longestGap = gap
		}
	}

	return model.ActivityReport{
		TotalPosts:         len(posts),
		PostsLast7Days:     last7Days,
		PostsLast30Days:    last30Days,
		AvgPostsPerDay:     avgPostsPerDay,
		LongestGapDays:     longestGap,
		HasRecentActivity:  last7Days > 0,
		IsActiveUser:       avgPostsPerDay > activePostsPerDay,
		PostingConsistency: weekdayConsistency(posts),
	}
}

func (uc *implUseCase) temporalReport(posts []model.Post) model.TemporalReport {
	var report model.TemporalReport
	var night, earlyMorning, work, weekend, lunch, siesta int

	for _, post := range posts {
		hour := post.CreatedAt.Hour()
		day := int(post.CreatedAt.Weekday())
		month := int(post.CreatedAt.Month()) - 1

		report.HourlyDistribution[hour]++
		report.DailyDistribution[day]++
		report.MonthlyDistribution[month]++

		if hour >= nightStartHour || hour < nightEndHour {
			night++
		}
		if hour < earlyMorningEnd {
			earlyMorning++
		}
		if hour >= workStartHour && hour < workEndHour {
			work++
		}
		if day == 0 || day == 6 {
			weekend++
		}
		if hour >= lunchStartHour && hour < lunchEndHour {
			lunch++
		}
		if hour >= siestaStartHour && hour < siestaEndHour {
			siesta++
		}
	}

	total := len(posts)
	report.NightPostsPercentage = percentage(night, total)
	report.EarlyMorningPercentage = percentage(earlyMorning, total)
	report.WorkHourPercentage = percentage(work, total)
	report.WeekendPercentage = percentage(weekend, total)
	report.LunchTimePercentage = percentage(lunch, total)
	report.SiestaTimePercentage = percentage(siesta, total)

	report.MostActiveHour = indexOfMax(report.HourlyDistribution[:])
	report.MostActiveDay = indexOfMax(report.DailyDistribution[:])
	report.HourSpread = hourSpread(report.HourlyDistribution)

	return report
}

func (uc *implUseCase) contentReport(posts []model.Post) model.ContentReport {
	var totalChars, totalHashtags, withEmojis, withLinks, replies, originals int
	texts := make([]string, 0, len(posts))

	for _, post := range posts {
		totalChars += len(post.Text)
		totalHashtags += post.HashtagCount
		texts = append(texts, strings.ToLower(post.Text))
		if post.HasEmojis {
			withEmojis++
		}
		if post.HasLinks {
			withLinks++
		}
		if post.IsReply {
			replies++
		} else {
			originals++
		}
	}

	total := len(posts)
	report := model.ContentReport{
		AvgPostLength:      float64(totalChars) / float64(total),
		AvgHashtagsPerPost: float64(totalHashtags) / float64(total),
		EmojiPercentage:    percentage(withEmojis, total),
		LinkPercentage:     percentage(withLinks, total),
		RepliesPercentage:  percentage(replies, total),
		TotalReplies:       replies,
		TotalOriginalPosts: originals,
		Style:              analyzeStyle(texts),
	}
	if originals > 0 {
		report.ReplyToPostRatio = float64(replies) / float64(originals)
	}
	return report
}

func (uc *implUseCase) socialReport(posts []model.Post, interactions model.InteractionSummary, profile model.Profile) model.SocialReport {
	var totalLikes, totalReplies, totalReposts, viral, bestLikes int
	for _, post := range posts {
		totalLikes += post.Likes
		totalReplies += post.Replies
		totalReposts += post.Reposts
		if post.Likes > uc.cfg.ViralLikesThreshold {
			viral++
		}
		if post.Likes > bestLikes {
			bestLikes = post.Likes
		}
	}

	total := len(posts)
	report := model.SocialReport{
		TotalLikes:        totalLikes,
		TotalReplies:      totalReplies,
		TotalReposts:      totalReposts,
		AvgLikesPerPost:   float64(totalLikes) / float64(total),
		AvgRepliesPerPost: float64(totalReplies) / float64(total),
		AvgRepostsPerPost: float64(totalReposts) / float64(total),
		ViralPostsCount:   viral,
		BestPostLikes:     bestLikes,
	}

	totalEngagement := totalLikes + totalReplies + totalReposts
	if profile.Followers > 0 && total > 0 {
		report.EngagementRate = float64(totalEngagement) / (float64(total) * float64(profile.Followers))
	}

	given := interactions.LikesGiven + interactions.RepliesGiven
	if totalEngagement > 0 {
		report.GivesToReceivesRatio = float64(given) / float64(totalEngagement)
	}

	return report
}

func (uc *implUseCase) engagementReport(posts []model.Post, interactions model.InteractionSummary) model.EngagementReport {
	var score float64
	var received int
	for _, post := range posts {
		score += float64(post.Likes) + float64(post.Replies)*2 + float64(post.Reposts)*1.5
		received += post.Likes + post.Replies + post.Reposts
	}

	return model.EngagementReport{
		EngagementScore:      score,
		AvgEngagementPerPost: score / float64(len(posts)),
		InteractionsGiven:    interactions.LikesGiven + interactions.RepliesGiven,
		InteractionsReceived: received,
	}
}

func (uc *implUseCase) patternReport(posts []model.Post, now time.Time) model.PatternReport {
	var replies, originals int
	for _, post := range posts {
		if post.IsReply {
			replies++
		} else {
			originals++
		}
	}

	total := len(posts)
	gaps := postingGaps(posts)
	hasLongSilences := false
	for _, gap := range gaps {
		if gap > 7 {
			hasLongSilences = true
			break
		}
	}

	return model.PatternReport{
		IsGhost:           total == 0,
		IsNewbie:          total < 5,
		IsLurker:          float64(originals) < float64(total)*0.2,
		IsReplyHeavy:      float64(replies) > float64(total)*0.7,
		HasPostingStreaks: total > 5,
		HasLongSilences:   hasLongSilences,
		PostedToday:       postedWithin(posts, now, 24*time.Hour),
		PostedThisWeek:    postedWithin(posts, now, 7*24*time.Hour),
	}
}
