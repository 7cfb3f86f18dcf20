package model

import "time"

// Profile represents a Bluesky user profile.
type Profile struct {
	Handle      string    `json:"handle"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PostsCount  int       `json:"posts_count"`
	JoinedDate  time.Time `json:"joined_date"`
}

// Post is a single post with engagement counts and content flags derived
// from its text at collection time.
type Post struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	Likes        int       `json:"likes"`
	Replies      int       `json:"replies"`
	Reposts      int       `json:"reposts"`
	IsReply      bool      `json:"is_reply"`
	HasLinks     bool      `json:"has_links"`
	HasEmojis    bool      `json:"has_emojis"`
	HashtagCount int       `json:"hashtag_count"`
}

// InteractionSummary aggregates interactions given and received by the user.
type InteractionSummary struct {
	TotalLikes    int `json:"total_likes"`
	TotalReplies  int `json:"total_replies"`
	TotalReposts  int `json:"total_reposts"`
	LikesGiven    int `json:"likes_given"`
	RepliesGiven  int `json:"replies_given"`
	MentionsCount int `json:"mentions_count"`
}

// RawUserData is the complete collected input for analytics.
// Posts are ordered newest first.
type RawUserData struct {
	Profile      Profile            `json:"profile"`
	Posts        []Post             `json:"posts"`
	Interactions InteractionSummary `json:"interactions"`
	CollectedAt  time.Time          `json:"collected_at"`
}
