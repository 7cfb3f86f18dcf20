package provider

import (
	"encoding/json"
	"time"
)

// Wire types for the Bluesky public XRPC API. Only the fields we read.

type blueskyProfile struct {
	Handle         string    `json:"handle"`
	DisplayName    string    `json:"displayName"`
	Description    string    `json:"description"`
	FollowersCount int       `json:"followersCount"`
	FollowsCount   int       `json:"followsCount"`
	PostsCount     int       `json:"postsCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

type blueskyFeedResponse struct {
	Feed []blueskyFeedItem `json:"feed"`
}

type blueskyFeedItem struct {
	Post blueskyPost `json:"post"`
}

type blueskyPost struct {
	URI         string            `json:"uri"`
	LikeCount   int               `json:"likeCount"`
	ReplyCount  int               `json:"replyCount"`
	RepostCount int               `json:"repostCount"`
	Record      blueskyPostRecord `json:"record"`
}

type blueskyPostRecord struct {
	Text      string          `json:"text"`
	CreatedAt time.Time       `json:"createdAt"`
	Reply     json.RawMessage `json:"reply,omitempty"`
}
