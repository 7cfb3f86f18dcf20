package scorecard

import (
	"bytes"
	"image/png"
	"testing"

	"skyscore-srv/internal/model"
)

func TestRender(t *testing.T) {
	r := New()

	t.Run("produces a decodable card-sized png", func(t *testing.T) {
		out, err := r.Render(CardData{
			Handle:    "@alice.bsky.social",
			Score:     87,
			Archetype: model.ArchetypeInfluencer,
		})
		if err != nil {
			t.Fatalf("render: %v", err)
		}

		img, err := png.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != cardWidth || b.Dy() != cardHeight {
			t.Errorf("bounds: got %dx%d, want %dx%d", b.Dx(), b.Dy(), cardWidth, cardHeight)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		data := CardData{Handle: "@bob.test", Score: 42, Archetype: model.ArchetypeExplorer}
		first, err := r.Render(data)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		second, err := r.Render(data)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Error("expected identical output for identical input")
		}
	})

	t.Run("unknown archetype falls back", func(t *testing.T) {
		if _, err := r.Render(CardData{Handle: "@x.test", Score: 1, Archetype: "Wanderer"}); err != nil {
			t.Fatalf("render: %v", err)
		}
	})
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}
