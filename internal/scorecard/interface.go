package scorecard

// CardData is everything the renderer needs for one score card.
type CardData struct {
	Handle    string
	Score     int
	Archetype string
}

// Renderer draws a shareable score card image.
//
//go:generate mockery --name Renderer
type Renderer interface {
	Render(data CardData) ([]byte, error)
}
