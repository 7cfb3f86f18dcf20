package catalog

import (
	"testing"

	"skyscore-srv/internal/model"
)

func truePredicate(_ model.RawUserData, _ model.AnalyticsSnapshot) bool { return true }

func TestCatalogRegister(t *testing.T) {
	t.Run("rejects duplicate id", func(t *testing.T) {
		c := New()
		def := Definition{ID: "a", Name: "A", Predicate: truePredicate}
		if err := c.Register(def); err != nil {
			t.Fatalf("first register: %v", err)
		}
		if err := c.Register(def); err == nil {
			t.Error("expected duplicate id error")
		}
	})

	t.Run("rejects incomplete definitions", func(t *testing.T) {
		c := New()
		cases := []Definition{
			{Name: "no id", Predicate: truePredicate},
			{ID: "no_name", Predicate: truePredicate},
			{ID: "no_predicate", Name: "No Predicate"},
		}
		for _, def := range cases {
			if err := c.Register(def); err == nil {
				t.Errorf("expected error for %+v", def)
			}
		}
		if c.Size() != 0 {
			t.Errorf("expected empty catalog, got %d", c.Size())
		}
	})

	t.Run("preserves registration order", func(t *testing.T) {
		c := New()
		for _, id := range []string{"first", "second", "third"} {
			if err := c.Register(Definition{ID: id, Name: id, Predicate: truePredicate}); err != nil {
				t.Fatalf("register %s: %v", id, err)
			}
		}

		all := c.All()
		want := []string{"first", "second", "third"}
		for i, id := range want {
			if all[i].ID != id {
				t.Errorf("position %d: got %s, want %s", i, all[i].ID, id)
			}
			if c.Order(id) != i {
				t.Errorf("order of %s: got %d, want %d", id, c.Order(id), i)
			}
		}
		if c.Order("unknown") != c.Size() {
			t.Error("unknown id must sort last")
		}
	})
}

func TestDefaultCatalog(t *testing.T) {
	c, err := NewDefault(DefaultThresholds())
	if err != nil {
		t.Fatalf("build default catalog: %v", err)
	}

	if c.Size() != 10 {
		t.Fatalf("expected 10 badges, got %d", c.Size())
	}

	for _, def := range c.All() {
		if def.Category != model.BadgeCategoryActivity {
			t.Errorf("badge %s has category %s", def.ID, def.Category)
		}
		if def.Emoji == "" || def.Description == "" {
			t.Errorf("badge %s missing display metadata", def.ID)
		}
	}

	if _, ok := c.ByID("ghost"); !ok {
		t.Error("ghost badge not registered")
	}
}

func TestActivityPredicates(t *testing.T) {
	c, err := NewDefault(DefaultThresholds())
	if err != nil {
		t.Fatalf("build default catalog: %v", err)
	}

	mustBadge := func(id string) Definition {
		t.Helper()
		def, ok := c.ByID(id)
		if !ok {
			t.Fatalf("badge %s not found", id)
		}
		return def
	}

	var data model.RawUserData

	t.Run("ghost requires zero posts", func(t *testing.T) {
		def := mustBadge("ghost")
		if !def.Predicate(data, model.AnalyticsSnapshot{}) {
			t.Error("expected ghost for empty snapshot")
		}
		s := model.AnalyticsSnapshot{}
		s.Activity.TotalPosts = 1
		if def.Predicate(data, s) {
			t.Error("ghost must not trigger with posts")
		}
	})

	t.Run("newbie excludes ghosts", func(t *testing.T) {
		def := mustBadge("newbie")
		if def.Predicate(data, model.AnalyticsSnapshot{}) {
			t.Error("newbie must not trigger for zero posts")
		}
		s := model.AnalyticsSnapshot{}
		s.Activity.TotalPosts = 4
		if !def.Predicate(data, s) {
			t.Error("expected newbie at 4 posts")
		}
		s.Activity.TotalPosts = 5
		if def.Predicate(data, s) {
			t.Error("newbie threshold is exclusive")
		}
	})

	t.Run("sky addict threshold is strict", func(t *testing.T) {
		def := mustBadge("sky_addict")
		s := model.AnalyticsSnapshot{}
		s.Activity.AvgPostsPerDay = 5
		if def.Predicate(data, s) {
			t.Error("exactly 5 per day must not qualify")
		}
		s.Activity.AvgPostsPerDay = 5.1
		if !def.Predicate(data, s) {
			t.Error("expected sky addict above 5 per day")
		}
	})

	t.Run("weekend poster threshold is inclusive", func(t *testing.T) {
		def := mustBadge("weekend_poster")
		s := model.AnalyticsSnapshot{}
		s.Temporal.WeekendPercentage = 80
		if !def.Predicate(data, s) {
			t.Error("expected weekend poster at exactly 80 percent")
		}
	})

	t.Run("sky tourist needs one stale post", func(t *testing.T) {
		def := mustBadge("sky_tourist")
		s := model.AnalyticsSnapshot{}
		s.Activity.TotalPosts = 1
		s.Metadata.AnalysisWindowDays = 10
		if !def.Predicate(data, s) {
			t.Error("expected sky tourist for one post over a 10-day window")
		}
		s.Metadata.AnalysisWindowDays = 7
		if def.Predicate(data, s) {
			t.Error("window of exactly 7 days must not qualify")
		}
	})

	t.Run("echo needs replies and volume", func(t *testing.T) {
		def := mustBadge("echo")
		s := model.AnalyticsSnapshot{}
		s.Content.RepliesPercentage = 90
		s.Activity.TotalPosts = 5
		if def.Predicate(data, s) {
			t.Error("echo needs more than 5 posts")
		}
		s.Activity.TotalPosts = 6
		if !def.Predicate(data, s) {
			t.Error("expected echo for 90 percent replies over 6 posts")
		}
	})
}
