package usecase

import (
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"skyscore-srv/internal/model"
	"skyscore-srv/pkg/util"
)

// Keyword lists for coarse style flags.
var (
	philosophicalKeywords = []string{"philosophy", "meaning"}
	humorKeywords         = []string{"lol", "haha"}
	controversialKeywords = []string{"controversial", "hot take"}
)

// percentage returns part/total as a value in [0,100]; 0 when total is 0.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// analysisWindowDays is the whole-day span from oldest to newest post,
// minimum 1 for any non-empty input. A lone post has no span of its own,
// so its window runs from the post up to now; that staleness is what the
// sky tourist predicate keys on.
func analysisWindowDays(posts []model.Post, now time.Time) int {
	if len(posts) == 0 {
		return 0
	}
	newest := posts[0].CreatedAt
	oldest := posts[len(posts)-1].CreatedAt
	if len(posts) == 1 {
		newest = now
	}
	days := util.DaysBetween(oldest, newest)
	if days < 1 {
		return 1
	}
	return days
}

// postingGaps returns the whole-day gap between each consecutive pair of
// posts (newest first). A single post yields [0].
func postingGaps(posts []model.Post) []int {
	if len(posts) < 2 {
		return []int{0}
	}
	gaps := make([]int, 0, len(posts)-1)
	for i := 1; i < len(posts); i++ {
		gaps = append(gaps, util.DaysBetween(posts[i].CreatedAt, posts[i-1].CreatedAt))
	}
	return gaps
}

// weekdayConsistency scores how evenly posts spread over weekdays:
// 1 - stddev/mean over the 7 buckets, clamped to [0,1]. Needs at least 7
// posts to be meaningful; returns 0 below that.
func weekdayConsistency(posts []model.Post) float64 {
	if len(posts) < 7 {
		return 0
	}

	buckets := make([]float64, 7)
	for _, post := range posts {
		buckets[int(post.CreatedAt.Weekday())]++
	}

	mean, err := stats.Mean(buckets)
	if err != nil || mean == 0 {
		return 0
	}
	sd, err := stats.StandardDeviationPopulation(buckets)
	if err != nil {
		return 0
	}

	return util.Clamp(1-sd/mean, 0, 1)
}

// hourSpread counts hours of the day with at least one post.
func hourSpread(hourly [24]int) int {
	active := 0
	for _, count := range hourly {
		if count > 0 {
			active++
		}
	}
	return active
}

// indexOfMax returns the first index holding the maximum value.
func indexOfMax(values []int) int {
	maxIdx := 0
	for i, v := range values {
		if v > values[maxIdx] {
			maxIdx = i
		}
	}
	return maxIdx
}

// postedWithin reports whether any post is newer than now-d.
func postedWithin(posts []model.Post, now time.Time, d time.Duration) bool {
	cutoff := now.Add(-d)
	for _, post := range posts {
		if post.CreatedAt.After(cutoff) {
			return true
		}
	}
	return false
}

func analyzeStyle(loweredTexts []string) model.ContentStyle {
	allText := strings.Join(loweredTexts, " ")

	style := model.ContentStyle{
		IsMinimalist:     len(loweredTexts) > 0,
		HasPhilosophical: containsAny(allText, philosophicalKeywords),
		HasHumor:         containsAny(allText, humorKeywords),
		IsControversial:  containsAny(allText, controversialKeywords),
	}
	for _, text := range loweredTexts {
		if len(text) >= 50 {
			style.IsMinimalist = false
		}
		if len(text) > 200 {
			style.IsVerbose = true
		}
	}
	return style
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
