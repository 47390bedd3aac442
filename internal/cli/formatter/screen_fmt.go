package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/alexanderramin/planstack/internal/resolver"
)

// BreadcrumbSep separates screen titles in a breadcrumb trail.
const BreadcrumbSep = " › "

// FormatPlanList renders the catalog overview as a table in a box.
func FormatPlanList(plans []domain.Plan) string {
	headers := []string{"ID", "NAME", "ENTRIES"}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			displayID(p.ID),
			Bold(p.Name),
			StyleFg.Render(strconv.Itoa(len(p.Entries))),
		})
	}
	if len(rows) == 0 {
		return RenderBox("Plans", Dim("No plans in catalog."))
	}
	return RenderBox("Plans", RenderTable(headers, rows))
}

// FormatRenderModel renders a resolved screen for non-interactive output:
// list screens as a table of rows and their link targets, entry detail as
// a heading and body.
func FormatRenderModel(m resolver.RenderModel) string {
	var b strings.Builder
	b.WriteString(ScreenBadge(m.Screen) + "\n")
	if m.Heading != "" {
		b.WriteString(Bold(m.Heading) + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.IsList() && len(m.Rows) == 0:
		b.WriteString(Dim("Nothing here yet."))
	case m.IsList():
		rows := make([][]string, 0, len(m.Rows))
		for _, r := range m.Rows {
			rows = append(rows, []string{displayID(r.ID), r.Name, ScreenBadge(r.Link)})
		}
		b.WriteString(strings.TrimRight(RenderTable([]string{"ID", "NAME", "OPENS"}, rows), "\n"))
	default:
		b.WriteString(StyleFg.Render(m.Body))
	}
	return RenderBox(m.Title, b.String())
}

// FormatBreadcrumb joins screen titles root to top, highlighting the top.
func FormatBreadcrumb(titles []string) string {
	if len(titles) == 0 {
		return ""
	}
	parts := make([]string, len(titles))
	for i, t := range titles {
		if i == len(titles)-1 {
			parts[i] = StyleHeader.Render(t)
		} else {
			parts[i] = Dim(t)
		}
	}
	return strings.Join(parts, Dim(BreadcrumbSep))
}

// FormatStackLine renders one line of a navigation replay: the event that
// was applied and the resulting stack.
func FormatStackLine(version uint64, event string, screens []domain.Screen) string {
	return fmt.Sprintf("%s  %-18s %s",
		Dim(fmt.Sprintf("v%d", version)),
		event,
		StyleFg.Render(domain.FormatScreens(screens)))
}

// displayID shortens generated UUIDs and leaves short ids readable.
func displayID(id string) string {
	if len(id) == 36 && strings.Count(id, "-") == 4 {
		return TruncID(id)
	}
	return StyleFg.Render(id)
}
