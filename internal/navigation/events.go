package navigation

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planstack/internal/domain"
)

// Event is a discrete navigation request coming from the view layer.
type Event interface {
	isEvent()
	String() string
}

// LinkActivated pushes Screen.
type LinkActivated struct{ Screen domain.Screen }

// BackRequested pops the top screen.
type BackRequested struct{}

// RootRequested pops to the root.
type RootRequested struct{}

// ReplaceRequested replaces the top screen with Screen.
type ReplaceRequested struct{ Screen domain.Screen }

func (LinkActivated) isEvent()    {}
func (BackRequested) isEvent()    {}
func (RootRequested) isEvent()    {}
func (ReplaceRequested) isEvent() {}

func (e LinkActivated) String() string    { return "push=" + e.Screen.String() }
func (BackRequested) String() string      { return "pop" }
func (RootRequested) String() string      { return "root" }
func (e ReplaceRequested) String() string { return "replace=" + e.Screen.String() }

// Dispatch applies ev to the controller.
func (c *Controller) Dispatch(ev Event) error {
	switch ev := ev.(type) {
	case LinkActivated:
		c.Push(ev.Screen)
	case BackRequested:
		c.Pop()
	case RootRequested:
		c.PopToRoot()
	case ReplaceRequested:
		return c.ReplaceTop(ev.Screen)
	default:
		return fmt.Errorf("unhandled navigation event %T: %w", ev, domain.ErrInvariantViolation)
	}
	return nil
}

// ParseEvent parses the textual step form used by replay scripts:
// "push=<screen>", "pop", "root" or "replace=<screen>".
// "back" is accepted as an alias for pop.
func ParseEvent(input string) (Event, error) {
	verb, arg, hasArg := strings.Cut(strings.TrimSpace(input), "=")
	switch strings.ToLower(verb) {
	case "push", "replace":
		if !hasArg {
			return nil, fmt.Errorf("step %q: %s needs a screen, e.g. %s=plan:0", input, verb, verb)
		}
		s, err := domain.ParseScreen(arg)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", input, err)
		}
		if strings.EqualFold(verb, "push") {
			return LinkActivated{Screen: s}, nil
		}
		return ReplaceRequested{Screen: s}, nil
	case "pop", "back":
		if hasArg {
			return nil, fmt.Errorf("step %q: %s takes no argument", input, verb)
		}
		return BackRequested{}, nil
	case "root":
		if hasArg {
			return nil, fmt.Errorf("step %q: root takes no argument", input)
		}
		return RootRequested{}, nil
	default:
		return nil, fmt.Errorf("unknown step %q (expected push=, pop, root or replace=)", input)
	}
}
