package model

import "time"

// Archetype constants, in descending score order.
const (
	ArchetypeInfluencer = "Influencer"
	ArchetypeConnector  = "Connector"
	ArchetypeExplorer   = "Explorer"
	ArchetypeRookie     = "Rookie"
)

// ScoreRecord is a stored SkyScore computation for one (email, handle) pair.
type ScoreRecord struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Handle        string    `json:"handle"`
	Score         int       `json:"score"`
	Archetype     string    `json:"archetype"`
	CardObjectKey string    `json:"card_object_key"`
	CreatedAt     time.Time `json:"created_at"`
}
