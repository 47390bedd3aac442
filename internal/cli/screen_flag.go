package cli

import (
	"strings"

	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/spf13/pflag"
)

// screenListValue is a pflag.Value holding a stack of screens written as
// "plan:0,entry:1". Repeating the flag appends.
type screenListValue struct {
	screens []domain.Screen
	set     bool
}

var _ pflag.Value = (*screenListValue)(nil)

func (v *screenListValue) String() string {
	parts := make([]string, len(v.screens))
	for i, s := range v.screens {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

func (v *screenListValue) Set(raw string) error {
	screens, err := domain.ParseScreens(raw)
	if err != nil {
		return err
	}
	v.screens = append(v.screens, screens...)
	v.set = true
	return nil
}

func (v *screenListValue) Type() string { return "screens" }
