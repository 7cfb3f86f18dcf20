package http

import (
	"strings"

	"skyscore-srv/internal/model"
	"skyscore-srv/internal/score"
	"skyscore-srv/pkg/response"
)

type processScoreReq struct {
	Email         string `json:"email"`
	BlueskyHandle string `json:"bluesky_handle"`
}

// normalizedHandle strips a leading @ so both "@user.bsky.social" and
// "user.bsky.social" are accepted.
func (r processScoreReq) normalizedHandle() string {
	return strings.TrimPrefix(strings.TrimSpace(r.BlueskyHandle), "@")
}

func (r processScoreReq) toInput() score.ProcessInput {
	return score.ProcessInput{
		Email:  strings.TrimSpace(r.Email),
		Handle: r.normalizedHandle(),
	}
}

type badgeResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    int    `json:"priority"`
}

type processScoreResp struct {
	Message     string           `json:"message"`
	Score       int              `json:"score"`
	Archetype   string           `json:"archetype"`
	Cached      bool             `json:"cached"`
	CardURL     string           `json:"card_url,omitempty"`
	Badges      []badgeResp      `json:"badges"`
	Personality string           `json:"personality,omitempty"`
	Suggestions []suggestionResp `json:"suggestions,omitempty"`
}

type suggestionResp struct {
	BadgeID string `json:"badge_id"`
	Message string `json:"message"`
}

func newProcessScoreResp(output score.ProcessOutput) processScoreResp {
	message := "SkyScore calculated successfully! Check your email."
	if output.Cached {
		message = "SkyScore already calculated! Check your email."
	}

	resp := processScoreResp{
		Message:     message,
		Score:       output.Score,
		Archetype:   output.Archetype,
		Cached:      output.Cached,
		CardURL:     output.CardURL,
		Badges:      newBadgeResps(output.Badges.SelectedBadges),
		Personality: output.Badges.Metadata.Personality,
	}
	for _, s := range output.Badges.Suggestions {
		resp.Suggestions = append(resp.Suggestions, suggestionResp{BadgeID: s.BadgeID, Message: s.Message})
	}
	return resp
}

func newBadgeResps(badges []model.EarnedBadge) []badgeResp {
	out := make([]badgeResp, 0, len(badges))
	for _, b := range badges {
		out = append(out, badgeResp{
			ID:          b.ID,
			Name:        b.Name,
			Emoji:       b.Emoji,
			Description: b.Description,
			Category:    b.Category,
			Priority:    b.Priority,
		})
	}
	return out
}

type getUserResp struct {
	Email         string            `json:"email"`
	BlueskyHandle string            `json:"bluesky_handle"`
	Score         int               `json:"sky_score"`
	Archetype     string            `json:"archetype"`
	CreatedAt     response.DateTime `json:"created_at"`
}

func newGetUserResp(record model.ScoreRecord) getUserResp {
	return getUserResp{
		Email:         record.Email,
		BlueskyHandle: record.Handle,
		Score:         record.Score,
		Archetype:     record.Archetype,
		CreatedAt:     response.DateTime(record.CreatedAt),
	}
}

type listBadgesResp struct {
	Total  int         `json:"total"`
	Badges []badgeResp `json:"badges"`
}
