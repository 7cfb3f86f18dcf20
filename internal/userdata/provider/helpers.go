package provider

import (
	"sort"
	"strings"

	"skyscore-srv/internal/model"
)

// sortPostsNewestFirst enforces the ordering the analytics layer expects.
func sortPostsNewestFirst(posts []model.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

// containsLink reports whether the post text carries an http(s) URL.
func containsLink(text string) bool {
	return strings.Contains(text, "http://") || strings.Contains(text, "https://")
}

// containsEmoji reports whether the text contains a character in the common
// emoji/symbol blocks.
func containsEmoji(text string) bool {
	for _, r := range text {
		if (r >= 0x1F300 && r <= 0x1FAFF) || (r >= 0x2600 && r <= 0x27BF) {
			return true
		}
	}
	return false
}

// countHashtags counts whitespace-separated tokens starting with '#'.
func countHashtags(text string) int {
	count := 0
	for _, field := range strings.Fields(text) {
		if len(field) > 1 && strings.HasPrefix(field, "#") {
			count++
		}
	}
	return count
}
