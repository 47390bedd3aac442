package importer

import (
	"fmt"
	"strings"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Plans) == 0 {
		errs = append(errs, fmt.Errorf("plans: at least one plan is required"))
	}

	planIDs := make(map[string]bool)
	for i, p := range schema.Plans {
		prefix := fmt.Sprintf("plans[%d]", i)
		errs = append(errs, validatePlan(prefix, &p)...)

		if p.ID == "" {
			continue
		}
		if planIDs[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate plan id %q", prefix, p.ID))
		}
		planIDs[p.ID] = true
	}

	return errs
}

func validatePlan(prefix string, p *PlanImport) []error {
	var errs []error

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	errs = append(errs, validateID(prefix+".id", p.ID)...)

	entryIDs := make(map[string]bool)
	for j, e := range p.Entries {
		ep := fmt.Sprintf("%s.entries[%d]", prefix, j)
		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", ep))
		}
		errs = append(errs, validateID(ep+".id", e.ID)...)
		if e.ID == "" {
			continue
		}
		if entryIDs[e.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate entry id %q within plan", ep, e.ID))
		}
		entryIDs[e.ID] = true
	}

	return errs
}

// Ids end up in screen text forms like "entry:<id>", so they must survive
// a round-trip through that syntax.
func validateID(field, id string) []error {
	if id == "" {
		return nil
	}
	if strings.TrimSpace(id) != id {
		return []error{fmt.Errorf("%s: %q has surrounding whitespace", field, id)}
	}
	if strings.ContainsAny(id, ",") {
		return []error{fmt.Errorf("%s: %q must not contain commas", field, id)}
	}
	return nil
}
