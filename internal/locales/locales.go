// Package locales holds the per-language string tables used by prompt
// construction and user-facing notices. Tables are embedded at build time
// so the binary carries all three languages.
package locales

import (
	_ "embed"
	"encoding/json"
	"log"
)

//go:embed locales.json
var localesJSON []byte

const DefaultLanguage = "en"

// Table is the string table for one language.
type Table struct {
	Role           string            `json:"role"`
	WriteIn        string            `json:"write_in"`
	ResponseStyle  string            `json:"response_style"`
	NotSpecified   string            `json:"not_specified"`
	None           string            `json:"none"`
	DefaultAreas   []string          `json:"default_areas"`
	Areas          map[string]string `json:"areas"`
	FallbackNotice string            `json:"fallback_notice"`
}

var tables map[string]Table

func init() {
	if err := json.Unmarshal(localesJSON, &tables); err != nil {
		log.Fatalf("Failed to parse embedded locales.json: %v", err)
	}
	if _, ok := tables[DefaultLanguage]; !ok {
		log.Fatalf("Embedded locales.json is missing the %q table", DefaultLanguage)
	}
}

// Supported reports whether a language code has its own string table.
func Supported(code string) bool {
	_, ok := tables[code]
	return ok
}

// ForLanguage returns the string table for the given language code,
// falling back to English for unknown codes.
func ForLanguage(code string) Table {
	if t, ok := tables[code]; ok {
		return t
	}
	return tables[DefaultLanguage]
}

// AreaName localizes a guidance-area vocabulary key. Unknown keys are
// returned verbatim so user-supplied areas still show up in prompts.
func (t Table) AreaName(key string) string {
	if name, ok := t.Areas[key]; ok {
		return name
	}
	return key
}
