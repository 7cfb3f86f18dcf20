package scorecard

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	cardWidth    = 800
	cardHeight   = 600
	cardPadding  = 60
	cornerRadius = 20

	glyphWidth  = 7 // basicfont.Face7x13 advance
	glyphHeight = 13
	glyphAscent = 11
)

var (
	gradientTop    = color.RGBA{R: 0x66, G: 0x7E, B: 0xEA, A: 0xFF}
	gradientBottom = color.RGBA{R: 0x76, G: 0x4B, B: 0xA2, A: 0xFF}
	brandBlue      = color.RGBA{R: 0x1D, G: 0xA1, B: 0xF2, A: 0xFF}
	textDark       = color.RGBA{R: 0x14, G: 0x17, B: 0x1A, A: 0xFF}
	textMuted      = color.RGBA{R: 0x65, G: 0x77, B: 0x86, A: 0xFF}
	textFaint      = color.RGBA{R: 0xAA, G: 0xB8, B: 0xC2, A: 0xFF}
	cardWhite      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

type implRenderer struct{}

// New creates the PNG score card renderer. Output is deterministic for a
// given CardData, which keeps card storage idempotent.
func New() Renderer {
	return &implRenderer{}
}

func (r *implRenderer) Render(data CardData) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))

	drawGradient(img)
	drawDotPattern(img)
	drawRoundedRect(img,
		image.Rect(cardPadding, cardPadding, cardWidth-cardPadding, cardHeight-cardPadding),
		cornerRadius, cardWhite)

	// Branding row.
	drawText(img, "SkyScore", cardPadding+30, cardPadding+45, 2, brandBlue, alignLeft)
	drawText(img, data.Handle, cardPadding+30, cardPadding+100, 2, textDark, alignLeft)

	// The score itself dominates the card.
	accent := ArchetypeColor(data.Archetype)
	drawText(img, strconv.Itoa(data.Score), cardWidth/2, cardPadding+250, 9, accent, alignCenter)
	drawText(img, "SkyScore", cardWidth/2, cardPadding+280, 2, textMuted, alignCenter)
	drawText(img, data.Archetype, cardWidth/2, cardPadding+340, 3, textDark, alignCenter)

	// Description, wrapped to the card width.
	maxChars := (cardWidth - cardPadding*2 - 60) / glyphWidth
	lines := wrapText(ArchetypeDescription(data.Archetype), maxChars)
	for i, line := range lines {
		drawText(img, line, cardWidth/2, cardPadding+380+i*24, 1, textMuted, alignCenter)
	}

	drawText(img, "Get your SkyScore at skyscore.app", cardWidth/2, cardHeight-cardPadding-20, 1, textFaint, alignCenter)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode score card: %w", err)
	}
	return buf.Bytes(), nil
}

func drawGradient(img *image.RGBA) {
	b := img.Bounds()
	span := float64(b.Dx() + b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t := float64(x+y) / span
			img.SetRGBA(x, y, lerpRGBA(gradientTop, gradientBottom, t))
		}
	}
}

// drawDotPattern overlays a faint white dot every 50 pixels.
func drawDotPattern(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 50 {
		for x := b.Min.X; x < b.Max.X; x += 50 {
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					bg := img.RGBAAt(x+dx, y+dy)
					img.SetRGBA(x+dx, y+dy, lerpRGBA(bg, cardWhite, 0.1))
				}
			}
		}
	}
}

func drawRoundedRect(img *image.RGBA, rect image.Rectangle, radius int, fill color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if insideRounded(x, y, rect, radius) {
				img.SetRGBA(x, y, fill)
			}
		}
	}
}

func insideRounded(x, y int, rect image.Rectangle, radius int) bool {
	cx, cy := x, y
	switch {
	case x < rect.Min.X+radius && y < rect.Min.Y+radius:
		cx, cy = rect.Min.X+radius, rect.Min.Y+radius
	case x >= rect.Max.X-radius && y < rect.Min.Y+radius:
		cx, cy = rect.Max.X-radius-1, rect.Min.Y+radius
	case x < rect.Min.X+radius && y >= rect.Max.Y-radius:
		cx, cy = rect.Min.X+radius, rect.Max.Y-radius-1
	case x >= rect.Max.X-radius && y >= rect.Max.Y-radius:
		cx, cy = rect.Max.X-radius-1, rect.Max.Y-radius-1
	default:
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
)

// drawText renders s with the bitmap face scaled by an integer factor.
// x is the left edge or center depending on align; y is the baseline.
func drawText(img *image.RGBA, s string, x, y, scale int, col color.Color, align alignment) {
	if s == "" {
		return
	}

	// Render at native size first, then scale up with nearest neighbour to
	// keep the crisp bitmap look.
	w := len(s) * glyphWidth
	tmp := image.NewRGBA(image.Rect(0, 0, w, glyphHeight))
	drawer := font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, glyphAscent),
	}
	drawer.DrawString(s)

	scaledW := w * scale
	scaledH := glyphHeight * scale
	left := x
	if align == alignCenter {
		left = x - scaledW/2
	}
	top := y - glyphAscent*scale

	target := image.Rect(left, top, left+scaledW, top+scaledH)
	xdraw.NearestNeighbor.Scale(img, target, tmp, tmp.Bounds(), xdraw.Over, nil)
}

func wrapText(s string, maxChars int) []string {
	words := strings.Fields(s)
	lines := make([]string, 0, 4)
	var current string
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if len(candidate) > maxChars && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xFF}
}
