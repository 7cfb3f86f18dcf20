package model

import "time"

// EventScoreComputed is the Kafka event name for a freshly computed score.
const EventScoreComputed = "score.computed"

// ScoreComputedEvent is published after a score is persisted. It carries
// everything the email consumer needs so it never recomputes analytics.
type ScoreComputedEvent struct {
	ID            string             `json:"id"`
	Event         string             `json:"event"`
	Email         string             `json:"email"`
	Handle        string             `json:"handle"`
	Score         int                `json:"score"`
	Archetype     string             `json:"archetype"`
	CardObjectKey string             `json:"card_object_key"`
	Badges        []EarnedBadge      `json:"badges"`
	Metrics       SanitizedAnalytics `json:"metrics"`
	ComputedAt    time.Time          `json:"computed_at"`
}
