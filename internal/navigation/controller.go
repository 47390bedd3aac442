// Package navigation owns the ordered stack of screens a session is showing.
//
// The Controller is the only writer. Readers get immutable Snapshots: every
// mutation builds a fresh backing array, so a snapshot taken earlier can never
// observe a later push, pop or replace. Subscribers receive the full new
// snapshot once per mutation, never a diff. When an observer mutates the
// stack during delivery, observers not yet reached skip the superseded
// snapshot and only see the newer one.
//
// A Controller is not safe for concurrent mutation. All writes are expected
// to come from a single event loop (the TUI's Update, or a replay loop).
package navigation

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/planstack/internal/domain"
)

// Snapshot is an immutable view of the stack, root (index 0) to top.
type Snapshot struct {
	screens []domain.Screen
	version uint64
}

// Len returns the stack depth.
func (s Snapshot) Len() int { return len(s.screens) }

// At returns the screen at position i.
func (s Snapshot) At(i int) domain.Screen { return s.screens[i] }

// Screens returns a copy of the stack contents.
func (s Snapshot) Screens() []domain.Screen { return slices.Clone(s.screens) }

// Top returns the last screen, if any.
func (s Snapshot) Top() (domain.Screen, bool) {
	if len(s.screens) == 0 {
		return domain.Screen{}, false
	}
	return s.screens[len(s.screens)-1], true
}

// Version increases by one with every mutation. The initial snapshot is 0.
func (s Snapshot) Version() uint64 { return s.version }

// Equal reports whether both snapshots hold the same screens in the same order.
func (s Snapshot) Equal(other Snapshot) bool { return slices.Equal(s.screens, other.screens) }

func (s Snapshot) String() string { return domain.FormatScreens(s.screens) }

// Observer receives the full stack after each mutation.
type Observer func(Snapshot)

// Option configures a Controller.
type Option func(*Controller)

// WithObserver subscribes o from construction onwards.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.Subscribe(o)
	}
}

// Controller manages a navigation stack.
type Controller struct {
	current   Snapshot
	observers map[int]Observer
	order     []int
	nextID    int
}

// New creates a controller seeded with initial. Any sequence is a valid
// starting point, including multi-screen stacks that skip the root; it is
// kept exactly as given.
func New(initial []domain.Screen, opts ...Option) *Controller {
	c := &Controller{
		current:   Snapshot{screens: slices.Clone(initial)},
		observers: make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers o for every future mutation and returns a function
// that removes it.
func (c *Controller) Subscribe(o Observer) (cancel func()) {
	if o == nil {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.observers[id] = o
	c.order = append(c.order, id)
	return func() {
		delete(c.observers, id)
		c.order = slices.DeleteFunc(c.order, func(v int) bool { return v == id })
	}
}

// Snapshot returns the current stack.
func (c *Controller) Snapshot() Snapshot { return c.current }

// Len returns the current stack depth.
func (c *Controller) Len() int { return c.current.Len() }

// CurrentTop returns the top screen, if any.
func (c *Controller) CurrentTop() (domain.Screen, bool) { return c.current.Top() }

// Push appends s. The depth grows by exactly one and every prior position
// is left untouched.
func (c *Controller) Push(s domain.Screen) {
	next := make([]domain.Screen, len(c.current.screens), len(c.current.screens)+1)
	copy(next, c.current.screens)
	c.commit(append(next, s))
}

// Pop removes the top screen and returns it. Popping an empty stack is a
// no-op and reports false.
func (c *Controller) Pop() (domain.Screen, bool) {
	top, ok := c.current.Top()
	if !ok {
		return domain.Screen{}, false
	}
	c.commit(slices.Clone(c.current.screens[:len(c.current.screens)-1]))
	return top, true
}

// PopToRoot empties the stack, leaving only the implicit root. It is
// idempotent; an already-empty stack is left alone.
func (c *Controller) PopToRoot() {
	if c.current.Len() == 0 {
		return
	}
	c.commit(nil)
}

// ReplaceTop swaps the top screen for s. It fails with
// domain.ErrInvalidState on an empty stack, leaving nothing changed.
func (c *Controller) ReplaceTop(s domain.Screen) error {
	n := c.current.Len()
	if n == 0 {
		return fmt.Errorf("replacing top with %s: stack is empty: %w", s, domain.ErrInvalidState)
	}
	next := slices.Clone(c.current.screens)
	next[n-1] = s
	c.commit(next)
	return nil
}

func (c *Controller) commit(screens []domain.Screen) {
	c.current = Snapshot{screens: screens, version: c.current.version + 1}
	snap := c.current
	for _, id := range slices.Clone(c.order) {
		// An observer that mutated the stack has already delivered the
		// newer snapshot to everyone; this one is stale.
		if c.current.version != snap.version {
			return
		}
		if o, ok := c.observers[id]; ok {
			o(snap)
		}
	}
}
