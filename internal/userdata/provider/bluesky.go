package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"skyscore-srv/internal/model"
	"skyscore-srv/internal/userdata"
	pkgHTTP "skyscore-srv/pkg/http"
	"skyscore-srv/pkg/log"
)

const (
	getProfilePath    = "/xrpc/app.bsky.actor.getProfile"
	getAuthorFeedPath = "/xrpc/app.bsky.feed.getAuthorFeed"
)

// BlueskyConfig holds the upstream endpoint settings.
type BlueskyConfig struct {
	ServiceURL string
	PostLimit  int
}

type blueskyProvider struct {
	client pkgHTTP.IClient
	l      log.Logger
	cfg    BlueskyConfig
}

// NewBluesky creates a Provider backed by the Bluesky public XRPC API.
func NewBluesky(client pkgHTTP.IClient, l log.Logger, cfg BlueskyConfig) userdata.Provider {
	if cfg.PostLimit <= 0 {
		cfg.PostLimit = 100
	}
	cfg.ServiceURL = strings.TrimRight(cfg.ServiceURL, "/")
	return &blueskyProvider{
		client: client,
		l:      l,
		cfg:    cfg,
	}
}

func (p *blueskyProvider) Collect(ctx context.Context, handle string) (model.RawUserData, error) {
	profile, err := p.getProfile(ctx, handle)
	if err != nil {
		return model.RawUserData{}, err
	}

	posts, err := p.getPosts(ctx, handle)
	if err != nil {
		return model.RawUserData{}, err
	}

	return model.RawUserData{
		Profile:      profile,
		Posts:        posts,
		Interactions: summarizeInteractions(posts),
		CollectedAt:  time.Now(),
	}, nil
}

func (p *blueskyProvider) getProfile(ctx context.Context, handle string) (model.Profile, error) {
	reqURL := fmt.Sprintf("%s%s?actor=%s", p.cfg.ServiceURL, getProfilePath, url.QueryEscape(handle))

	body, status, err := p.client.Get(ctx, reqURL, nil)
	if err != nil {
		p.l.Errorf(ctx, "userdata.provider.bluesky.getProfile: request failed: %v", err)
		return model.Profile{}, userdata.ErrProviderUnavailable
	}
	if status == http.StatusBadRequest || status == http.StatusNotFound {
		return model.Profile{}, userdata.ErrProfileNotFound
	}
	if status != http.StatusOK {
		p.l.Warnf(ctx, "userdata.provider.bluesky.getProfile: unexpected status %d for %s", status, handle)
		return model.Profile{}, userdata.ErrProviderUnavailable
	}

	var wire blueskyProfile
	if err := json.Unmarshal(body, &wire); err != nil {
		return model.Profile{}, fmt.Errorf("failed to decode profile response: %w", err)
	}

	return model.Profile{
		Handle:      wire.Handle,
		DisplayName: wire.DisplayName,
		Bio:         wire.Description,
		Followers:   wire.FollowersCount,
		Following:   wire.FollowsCount,
		PostsCount:  wire.PostsCount,
		JoinedDate:  wire.CreatedAt,
	}, nil
}

func (p *blueskyProvider) getPosts(ctx context.Context, handle string) ([]model.Post, error) {
	reqURL := fmt.Sprintf("%s%s?actor=%s&limit=%d&filter=posts_with_replies",
		p.cfg.ServiceURL, getAuthorFeedPath, url.QueryEscape(handle), p.cfg.PostLimit)

	body, status, err := p.client.Get(ctx, reqURL, nil)
	if err != nil {
		p.l.Errorf(ctx, "userdata.provider.bluesky.getPosts: request failed: %v", err)
		return nil, userdata.ErrProviderUnavailable
	}
	if status != http.StatusOK {
		p.l.Warnf(ctx, "userdata.provider.bluesky.getPosts: unexpected status %d for %s", status, handle)
		return nil, userdata.ErrProviderUnavailable
	}

	var wire blueskyFeedResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	posts := make([]model.Post, 0, len(wire.Feed))
	for _, item := range wire.Feed {
		posts = append(posts, mapPost(item.Post))
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

func mapPost(wire blueskyPost) model.Post {
	text := wire.Record.Text
	return model.Post{
		ID:           wire.URI,
		Text:         text,
		CreatedAt:    wire.Record.CreatedAt,
		Likes:        wire.LikeCount,
		Replies:      wire.ReplyCount,
		Reposts:      wire.RepostCount,
		IsReply:      len(wire.Record.Reply) > 0,
		HasLinks:     containsLink(text),
		HasEmojis:    containsEmoji(text),
		HashtagCount: countHashtags(text),
	}
}

func summarizeInteractions(posts []model.Post) model.InteractionSummary {
	var s model.InteractionSummary
	for _, post := range posts {
		s.TotalLikes += post.Likes
		s.TotalReplies += post.Replies
		s.TotalReposts += post.Reposts
	}
	return s
}
