package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for catalog import.
type ImportSchema struct {
	Plans []PlanImport `json:"plans"`
}

// PlanImport defines one plan in the import file. An empty ID is
// assigned a generated one during conversion.
type PlanImport struct {
	ID      string        `json:"id,omitempty"`
	Name    string        `json:"name"`
	Entries []EntryImport `json:"entries,omitempty"`
}

// EntryImport defines an entry within a plan.
type EntryImport struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// LoadImportSchema reads and parses a catalog import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// ParseImportSchema parses catalog import JSON.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
