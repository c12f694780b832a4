package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptLanguageSelection(t *testing.T) {
	cases := []struct {
		language string
		want     string
	}{
		{"en", "in clear English"},
		{"ru", "на ясном русском языке"},
		{"uz", "aniq o'zbek tilida"},
		{"fr", "in clear English"}, // unsupported resolves to English
		{"", "in clear English"},
	}

	for _, tc := range cases {
		p := &Profile{YearOfBirth: 1990, PreferredLanguage: tc.language}
		prompt := BuildPrompt(p, 2026)
		assert.Contains(t, prompt, tc.want, "language %q", tc.language)
	}
}

func TestBuildPromptDefaultAreas(t *testing.T) {
	p := &Profile{YearOfBirth: 1990, PreferredLanguage: "en"}
	prompt := BuildPrompt(p, 2026)

	// Empty selection substitutes the fixed four-area list, in order.
	assert.Contains(t, prompt, "1. Breastfeeding")
	assert.Contains(t, prompt, "2. Nutrition")
	assert.Contains(t, prompt, "3. Baby Development")
	assert.Contains(t, prompt, "4. Cycle Tracking")

	ru := &Profile{YearOfBirth: 1990, PreferredLanguage: "ru"}
	ruPrompt := BuildPrompt(ru, 2026)
	assert.Contains(t, ruPrompt, "1. Грудное вскармливание")
	assert.Contains(t, ruPrompt, "4. Отслеживание цикла")
}

func TestBuildPromptSelectedAreasKeepOrder(t *testing.T) {
	p := &Profile{
		YearOfBirth:           1990,
		PreferredLanguage:     "en",
		SelectedGuidanceAreas: []string{"sleep", "mental-health", "nutrition"},
	}
	prompt := BuildPrompt(p, 2026)

	assert.Contains(t, prompt, "1. Sleep")
	assert.Contains(t, prompt, "2. Mental Health")
	assert.Contains(t, prompt, "3. Nutrition")
	assert.NotContains(t, prompt, "4.")
}

func TestBuildPromptUnknownAreaRendersVerbatim(t *testing.T) {
	p := &Profile{
		YearOfBirth:           1990,
		PreferredLanguage:     "en",
		SelectedGuidanceAreas: []string{"postpartum yoga"},
	}
	prompt := BuildPrompt(p, 2026)
	assert.Contains(t, prompt, "1. postpartum yoga")
}

func TestBuildPromptPlaceholders(t *testing.T) {
	p := &Profile{YearOfBirth: 1990, PreferredLanguage: "en"}
	prompt := BuildPrompt(p, 2026)

	assert.Contains(t, prompt, "Child's age: not specified")
	assert.Contains(t, prompt, "Baby's name: not specified")
	assert.Contains(t, prompt, "Breastfeeding status: not specified")
	assert.Contains(t, prompt, "Health concerns: none")
	assert.NotContains(t, prompt, "undefined")

	uz := &Profile{YearOfBirth: 1990, PreferredLanguage: "uz"}
	uzPrompt := BuildPrompt(uz, 2026)
	assert.Contains(t, uzPrompt, "belgilanmagan")
	assert.Contains(t, uzPrompt, "Health concerns: yo'q")
}

func TestBuildPromptAgeDerivation(t *testing.T) {
	p := &Profile{YearOfBirth: 1990, PreferredLanguage: "en"}
	prompt := BuildPrompt(p, 2026)
	assert.Contains(t, prompt, "Current age: 36")

	// Unset year renders placeholders, never a bogus age.
	unset := &Profile{PreferredLanguage: "en"}
	unsetPrompt := BuildPrompt(unset, 2026)
	assert.Contains(t, unsetPrompt, "Year of birth: not specified")
	assert.Contains(t, unsetPrompt, "Current age: not specified")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	p := &Profile{
		YearOfBirth:           1992,
		PregnancyStatus:       StatusBreastfeeding,
		PreferredLanguage:     "ru",
		SelectedGuidanceAreas: []string{"breastfeeding", "cycle"},
	}
	first := BuildPrompt(p, 2026)
	second := BuildPrompt(p, 2026)
	assert.Equal(t, first, second)
	assert.False(t, strings.Contains(first, "%!"), "prompt must not contain formatting artifacts")
}
