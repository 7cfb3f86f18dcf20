package provider

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"skyscore-srv/internal/model"
	"skyscore-srv/internal/userdata"
)

// User archetypes the mock reproduces. Which one a handle gets is a pure
// function of the handle, so repeated calls return identical data.
const (
	archetypeNewbie     = "newbie"
	archetypeActive     = "active"
	archetypeLurker     = "lurker"
	archetypeInfluencer = "influencer"
	archetypeBot        = "bot"
)

var mockArchetypes = []string{
	archetypeNewbie,
	archetypeActive,
	archetypeLurker,
	archetypeInfluencer,
	archetypeBot,
}

type mockProfileShape struct {
	maxFollowers  int
	minFollowing  int
	maxFollowing  int
	maxPosts      int
	minPosts      int
	maxAgeDays    int
	replyChance   float64
	likesBase     int
	repliesBase   int
	repostsBase   float64
	postHour      func(rng *rand.Rand) int
	postTemplates []string
}

var mockShapes = map[string]mockProfileShape{
	archetypeNewbie: {
		maxFollowers: 50, minFollowing: 20, maxFollowing: 120,
		maxPosts: 10, maxAgeDays: 30,
		replyChance: 0.1, likesBase: 2, repliesBase: 1, repostsBase: 0.5,
		postHour: func(rng *rand.Rand) int { return 8 + rng.Intn(12) },
		postTemplates: []string{
			"Just joined Bluesky! Still figuring things out 😅",
			"Hello world! First post here",
			"Learning how this works...",
			"Anyone have tips for new users?",
		},
	},
	archetypeActive: {
		maxFollowers: 500, minFollowing: 50, maxFollowing: 350,
		minPosts: 100, maxPosts: 500, maxAgeDays: 365,
		replyChance: 0.3, likesBase: 10, repliesBase: 3, repostsBase: 2,
		postHour: func(rng *rand.Rand) int { return rng.Intn(24) },
		postTemplates: []string{
			"Just had an amazing coffee this morning ☕",
			"Working on some exciting projects today!",
			"Beautiful sunset tonight 🌅",
			"Love this community already!",
			"Sharing some thoughts on today's events...",
		},
	},
	archetypeLurker: {
		maxFollowers: 100, minFollowing: 200, maxFollowing: 1200,
		maxPosts: 20, maxAgeDays: 200,
		replyChance: 0.05, likesBase: 1, repliesBase: 1, repostsBase: 0.2,
		postHour: func(rng *rand.Rand) int { return 18 + rng.Intn(6) },
		postTemplates: []string{
			"Rare post from me 👻",
			"Finally posting something...",
			"Breaking my silence",
		},
	},
	archetypeInfluencer: {
		maxFollowers: 5000, minFollowing: 100, maxFollowing: 600,
		minPosts: 500, maxPosts: 2000, maxAgeDays: 500,
		replyChance: 0.2, likesBase: 50, repliesBase: 15, repostsBase: 10,
		postHour: func(rng *rand.Rand) int {
			if rng.Float64() < 0.5 {
				return 9 + rng.Intn(3)
			}
			return 18 + rng.Intn(4)
		},
		postTemplates: []string{
			"Here's my take on the latest trends...",
			"Excited to share this breakthrough with you all!",
			"Thanks for all the support, community! 🙏",
			"Thread: Let me explain why this matters... 1/",
		},
	},
	archetypeBot: {
		maxFollowers: 20, minFollowing: 0, maxFollowing: 50,
		minPosts: 200, maxPosts: 1000, maxAgeDays: 100,
		replyChance: 0.02, likesBase: 1, repliesBase: 1, repostsBase: 0.1,
		postHour: func(rng *rand.Rand) int { return rng.Intn(24) },
		postTemplates: []string{
			"Automated update: System running normally",
			"Daily reminder: Stay hydrated! 💧",
			"Random fact of the day",
		},
	},
}

const maxMockPosts = 100

type mockProvider struct {
	now func() time.Time
}

// NewMock creates a deterministic Provider for development and tests.
// now may be nil; time.Now is used.
func NewMock(now func() time.Time) userdata.Provider {
	if now == nil {
		now = time.Now
	}
	return &mockProvider{now: now}
}

func (p *mockProvider) Collect(_ context.Context, handle string) (model.RawUserData, error) {
	if handle == "" {
		return model.RawUserData{}, userdata.ErrInvalidHandle
	}

	rng := rand.New(rand.NewSource(int64(handleSeed(handle))))
	archetype := mockArchetypes[rng.Intn(len(mockArchetypes))]
	shape := mockShapes[archetype]
	now := p.now()

	profile := p.buildProfile(rng, handle, archetype, shape, now)
	posts := p.buildPosts(rng, profile, shape, now)

	interactions := summarizeInteractions(posts)
	interactions.RepliesGiven = rng.Intn(len(posts)*2 + 1)
	interactions.LikesGiven = rng.Intn(len(posts)*10 + 1)
	interactions.MentionsCount = rng.Intn(len(posts)/2 + 1)

	return model.RawUserData{
		Profile:      profile,
		Posts:        posts,
		Interactions: interactions,
		CollectedAt:  now,
	}, nil
}

func (p *mockProvider) buildProfile(rng *rand.Rand, handle, archetype string, shape mockProfileShape, now time.Time) model.Profile {
	postsCount := shape.minPosts
	if shape.maxPosts > shape.minPosts {
		postsCount += rng.Intn(shape.maxPosts - shape.minPosts)
	}
	return model.Profile{
		Handle:      handle,
		DisplayName: fmt.Sprintf("User %s", handle),
		Bio:         fmt.Sprintf("Mock bio for %s (%s)", handle, archetype),
		Followers:   rng.Intn(shape.maxFollowers + 1),
		Following:   shape.minFollowing + rng.Intn(shape.maxFollowing-shape.minFollowing+1),
		PostsCount:  postsCount,
		JoinedDate:  now.AddDate(0, 0, -rng.Intn(shape.maxAgeDays+1)),
	}
}

func (p *mockProvider) buildPosts(rng *rand.Rand, profile model.Profile, shape mockProfileShape, now time.Time) []model.Post {
	count := profile.PostsCount
	if count > maxMockPosts {
		count = maxMockPosts
	}

	posts := make([]model.Post, 0, count)
	for i := 0; i < count; i++ {
		daysAgo := rng.Intn(30)
		createdAt := now.AddDate(0, 0, -daysAgo)
		createdAt = time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(),
			shape.postHour(rng), rng.Intn(60), 0, 0, createdAt.Location())

		text := shape.postTemplates[rng.Intn(len(shape.postTemplates))]
		if rng.Float64() < 0.3 {
			text += " #bluesky #social"
		}

		posts = append(posts, model.Post{
			ID:           fmt.Sprintf("post_%d", i),
			Text:         text,
			CreatedAt:    createdAt,
			Likes:        mockEngagement(rng, shape.likesBase),
			Replies:      mockEngagement(rng, shape.repliesBase),
			Reposts:      mockEngagement(rng, int(shape.repostsBase)+1),
			IsReply:      rng.Float64() < shape.replyChance,
			HasLinks:     containsLink(text) || rng.Float64() < 0.2,
			HasEmojis:    containsEmoji(text),
			HashtagCount: countHashtags(text),
		})
	}
	sortPostsNewestFirst(posts)
	return posts
}

func mockEngagement(rng *rand.Rand, base int) int {
	if base <= 0 {
		base = 1
	}
	return rng.Intn(base * 3)
}

func handleSeed(handle string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(handle))
	return h.Sum32()
}
