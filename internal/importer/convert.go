package importer

import (
	"github.com/alexanderramin/planstack/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated ImportSchema into domain plans ready for
// persistence. Missing plan and entry ids are filled with fresh UUIDs.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) []domain.Plan {
	plans := make([]domain.Plan, 0, len(schema.Plans))
	for _, p := range schema.Plans {
		plan := domain.Plan{
			ID:   orNewID(p.ID),
			Name: p.Name,
		}
		if len(p.Entries) > 0 {
			plan.Entries = make([]domain.Entry, 0, len(p.Entries))
		}
		for _, e := range p.Entries {
			plan.Entries = append(plan.Entries, domain.Entry{
				ID:   orNewID(e.ID),
				Name: e.Name,
			})
		}
		plans = append(plans, plan)
	}
	return plans
}

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}
