// Package dataset loads the literature dataset: a JSON array of flat
// degrader records hand-collected from published studies. The field set is
// not fixed; records are kept as maps and column names are sanitized before
// they reach SQL.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
)

// Record is one flat entry of the degraders dataset. Values are kept as
// decoded JSON (strings in practice, the odd number for Year).
type Record map[string]any

var columnRe = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// SanitizeColumn strips characters that are not safe in a SQL identifier.
func SanitizeColumn(name string) string {
	return columnRe.ReplaceAllString(name, "")
}

// Load reads a JSON dataset file. A missing file is treated as an empty
// dataset, not an error.
func Load(path string) ([]Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return records, nil
}

// Columns returns the sorted union of sanitized field names across records.
func Columns(records []Record) []string {
	seen := map[string]bool{}
	for _, r := range records {
		for k := range r {
			if c := SanitizeColumn(k); c != "" {
				seen[c] = true
			}
		}
	}
	cols := make([]string, 0, len(seen))
	for c := range seen {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// String returns the record field as a string, matching on the sanitized
// column name. Missing or non-string values come back empty.
func (r Record) String(field string) string {
	for k, v := range r {
		if SanitizeColumn(k) != field {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		if v != nil {
			return fmt.Sprint(v)
		}
	}
	return ""
}

// Distinct collects the sorted non-empty values of one field.
func Distinct(records []Record, field string) []string {
	seen := map[string]bool{}
	for _, r := range records {
		if v := r.String(field); v != "" {
			seen[v] = true
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
