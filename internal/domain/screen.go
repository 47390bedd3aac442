package domain

import (
	"fmt"
	"strings"
)

// ScreenKind tags the variant of a Screen.
type ScreenKind int

const (
	ScreenAllPlans ScreenKind = iota + 1
	ScreenPlanDetail
	ScreenEntryDetail
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenAllPlans:
		return "plans"
	case ScreenPlanDetail:
		return "plan"
	case ScreenEntryDetail:
		return "entry"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Screen describes one navigable destination. It is a comparable value:
// two screens are equal when both kind and ID match, so a Screen can be used
// as a map key and compared with ==.
type Screen struct {
	Kind ScreenKind
	ID   string
}

// AllPlans is the catalog overview. It carries no ID.
func AllPlans() Screen { return Screen{Kind: ScreenAllPlans} }

// PlanDetail lists the entries of the plan with the given ID.
func PlanDetail(planID string) Screen { return Screen{Kind: ScreenPlanDetail, ID: planID} }

// EntryDetail shows a single entry.
func EntryDetail(entryID string) Screen { return Screen{Kind: ScreenEntryDetail, ID: entryID} }

// String renders the textual form accepted by ParseScreen:
// "plans", "plan:<id>" or "entry:<id>".
func (s Screen) String() string {
	if s.Kind == ScreenAllPlans {
		return s.Kind.String()
	}
	return s.Kind.String() + ":" + s.ID
}

// ParseScreen parses the textual form produced by Screen.String.
func ParseScreen(input string) (Screen, error) {
	input = strings.TrimSpace(input)
	kind, id, hasID := strings.Cut(input, ":")
	switch strings.ToLower(kind) {
	case "plans", "all":
		if hasID {
			return Screen{}, fmt.Errorf("screen %q: plans takes no id", input)
		}
		return AllPlans(), nil
	case "plan":
		if id == "" {
			return Screen{}, fmt.Errorf("screen %q: plan id is required", input)
		}
		return PlanDetail(id), nil
	case "entry":
		if id == "" {
			return Screen{}, fmt.Errorf("screen %q: entry id is required", input)
		}
		return EntryDetail(id), nil
	default:
		return Screen{}, fmt.Errorf("unknown screen %q (expected plans, plan:<id> or entry:<id>)", input)
	}
}

// ParseScreens parses a comma-separated list of screens. Blank items are skipped.
func ParseScreens(input string) ([]Screen, error) {
	var screens []Screen
	for _, part := range strings.Split(input, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := ParseScreen(part)
		if err != nil {
			return nil, err
		}
		screens = append(screens, s)
	}
	return screens, nil
}

// FormatScreens renders screens as a bracketed, comma-separated list.
func FormatScreens(screens []Screen) string {
	parts := make([]string, len(screens))
	for i, s := range screens {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
