package catalog

import (
	"fmt"

	"skyscore-srv/internal/model"
)

// Predicate decides whether one badge is earned. It must be pure: no
// mutation of its inputs and no shared state, so the evaluation engine can
// run predicates concurrently.
type Predicate func(data model.RawUserData, snapshot model.AnalyticsSnapshot) bool

// Definition is an immutable badge descriptor plus its predicate.
type Definition struct {
	ID          string
	Name        string
	Description string
	Emoji       string
	Category    string
	Priority    int
	Predicate   Predicate
}

// Catalog holds registered badge definitions in registration order.
// Registration order is the deterministic tie-break when priorities collide,
// so it is part of the catalog's contract.
type Catalog struct {
	definitions []Definition
	byID        map[string]int
	categories  map[string][]string
}

func New() *Catalog {
	return &Catalog{
		byID:       make(map[string]int),
		categories: make(map[string][]string),
	}
}

// Register adds one definition. It fails fast on an incomplete definition or
// a duplicate id so a bad catalog is caught at startup, not per request.
func (c *Catalog) Register(def Definition) error {
	switch {
	case def.ID == "":
		return fmt.Errorf("badge definition missing id (name %q)", def.Name)
	case def.Name == "":
		return fmt.Errorf("badge %s missing name", def.ID)
	case def.Predicate == nil:
		return fmt.Errorf("badge %s missing predicate", def.ID)
	}
	if _, ok := c.byID[def.ID]; ok {
		return fmt.Errorf("badge %s registered twice", def.ID)
	}

	c.byID[def.ID] = len(c.definitions)
	c.definitions = append(c.definitions, def)
	c.categories[def.Category] = append(c.categories[def.Category], def.ID)
	return nil
}

// RegisterCategory registers a batch of definitions, stopping at the first
// failure.
func (c *Catalog) RegisterCategory(defs []Definition) error {
	for _, def := range defs {
		if err := c.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// All returns the definitions in registration order. The returned slice is a
// copy; callers cannot mutate the catalog through it.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.definitions))
	copy(out, c.definitions)
	return out
}

// ByID returns the definition with the given id, if registered.
func (c *Catalog) ByID(id string) (Definition, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Definition{}, false
	}
	return c.definitions[idx], true
}

// Order returns the registration index of id, used as a sort tie-break.
// Unknown ids sort last.
func (c *Catalog) Order(id string) int {
	if idx, ok := c.byID[id]; ok {
		return idx
	}
	return len(c.definitions)
}

// Size returns the number of registered badges.
func (c *Catalog) Size() int {
	return len(c.definitions)
}

// Categories returns the registered category names.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.categories))
	for name := range c.categories {
		out = append(out, name)
	}
	return out
}
