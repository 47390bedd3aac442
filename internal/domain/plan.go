package domain

import (
	"fmt"
	"slices"
)

// Plan is a named, ordered collection of entries.
type Plan struct {
	ID      string
	Name    string
	Entries []Entry
}

// Entry belongs to exactly one plan.
type Entry struct {
	ID   string
	Name string
}

// Clone returns a deep copy so callers can't reach the original entries slice.
func (p Plan) Clone() Plan {
	p.Entries = slices.Clone(p.Entries)
	return p
}

// Validate checks the plan's own fields and that entry IDs are unique within it.
func (p Plan) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("plan id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("plan %q: name is required", p.ID)
	}
	seen := make(map[string]bool, len(p.Entries))
	for i, e := range p.Entries {
		if e.ID == "" {
			return fmt.Errorf("plan %q: entry %d: id is required", p.ID, i)
		}
		if e.Name == "" {
			return fmt.Errorf("plan %q: entry %q: name is required", p.ID, e.ID)
		}
		if seen[e.ID] {
			return fmt.Errorf("plan %q: duplicate entry id %q", p.ID, e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
