package scorecard

import (
	"image/color"

	"skyscore-srv/internal/model"
)

const defaultDescription = "Your unique Bluesky presence is developing beautifully."

var archetypeDescriptions = map[string]string{
	model.ArchetypeInfluencer: "You're a powerhouse on Bluesky! Your content resonates widely and drives meaningful conversations.",
	model.ArchetypeConnector:  "You excel at bringing people together and fostering community connections across the platform.",
	model.ArchetypeExplorer:   "You're actively discovering and engaging with diverse content, building your unique voice.",
	model.ArchetypeRookie:     "You're just getting started on your Bluesky journey. Great potential ahead!",
}

var archetypeColors = map[string]color.RGBA{
	model.ArchetypeInfluencer: {R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF},
	model.ArchetypeConnector:  {R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF},
	model.ArchetypeExplorer:   {R: 0x45, G: 0xB7, B: 0xD1, A: 0xFF},
	model.ArchetypeRookie:     {R: 0x96, G: 0xCE, B: 0xB4, A: 0xFF},
}

// ArchetypeDescription returns the one-line blurb shown under the archetype.
func ArchetypeDescription(archetype string) string {
	if d, ok := archetypeDescriptions[archetype]; ok {
		return d
	}
	return defaultDescription
}

// ArchetypeColor returns the accent color for an archetype.
func ArchetypeColor(archetype string) color.RGBA {
	if c, ok := archetypeColors[archetype]; ok {
		return c
	}
	return archetypeColors[model.ArchetypeExplorer]
}
