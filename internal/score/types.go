package score

import "skyscore-srv/internal/model"

// ProcessInput carries a validated, normalized score request.
type ProcessInput struct {
	Email  string
	Handle string
}

// ProcessOutput is the outcome of one score computation. Cached is true when
// the (email, handle) pair was scored before; in that case the stored score
// is returned and nothing new is rendered, saved or published.
type ProcessOutput struct {
	Score     int
	Archetype string
	Cached    bool
	CardURL   string
	Badges    model.SelectionResult
}
