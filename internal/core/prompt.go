package core

import (
	"fmt"
	"strings"

	"lactamira.uz/backend/internal/locales"
)

// BuildPrompt assembles the provider-facing instruction text for a profile.
// The currentYear parameter is injected so the mother's age derivation
// (currentYear - yearOfBirth, a calendar-year approximation) stays
// deterministic under test. The construction is pure and total: absent
// optional fields render as the language's "not specified" placeholder and
// an empty area selection substitutes the default four-area list.
func BuildPrompt(p *Profile, currentYear int) string {
	lang := p.Language()
	t := locales.ForLanguage(string(lang))

	var b strings.Builder
	b.WriteString(t.Role)
	b.WriteString("\n\n")
	b.WriteString(t.WriteIn)
	b.WriteString("\n\n")

	b.WriteString("Mother profile:\n")
	fmt.Fprintf(&b, "- Year of birth: %s\n", orPlaceholder(yearString(p.YearOfBirth), t))
	fmt.Fprintf(&b, "- Current age: %s\n", ageString(p.YearOfBirth, currentYear, t))
	fmt.Fprintf(&b, "- Status: %s\n", orPlaceholder(string(p.PregnancyStatus), t))
	fmt.Fprintf(&b, "- Number of children: %d\n", p.NumberOfChildren)
	fmt.Fprintf(&b, "- Child's age: %s\n", orPlaceholder(p.ChildAge, t))
	fmt.Fprintf(&b, "- Baby's name: %s\n", orPlaceholder(p.BabyName, t))
	fmt.Fprintf(&b, "- Breastfeeding status: %s\n", orPlaceholder(string(p.BreastfeedingStatus), t))
	if p.HealthConcerns != "" {
		fmt.Fprintf(&b, "- Health concerns: %s\n", p.HealthConcerns)
	} else {
		fmt.Fprintf(&b, "- Health concerns: %s\n", t.None)
	}

	b.WriteString("\nThe user asked for support in the following areas:\n")
	for i, area := range selectedAreas(p, t) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, area)
	}

	b.WriteString("\nProvide a separate, clearly structured section for each selected area.\n")
	b.WriteString("Keep the tone warm, respectful and empathetic, as if speaking to a mother.\n")
	b.WriteString("Give real-life examples where helpful and avoid generic advice.\n")
	b.WriteString("Use paragraphs, bullet points and warm encouragement. Avoid technical medical jargon unless necessary.\n")
	b.WriteString("The response should be around 400-500 words.\n\n")
	b.WriteString(t.ResponseStyle)

	return b.String()
}

// selectedAreas localizes the chosen guidance areas, substituting the fixed
// default list when the selection is empty.
func selectedAreas(p *Profile, t locales.Table) []string {
	if len(p.SelectedGuidanceAreas) == 0 {
		return t.DefaultAreas
	}
	out := make([]string, len(p.SelectedGuidanceAreas))
	for i, key := range p.SelectedGuidanceAreas {
		out[i] = t.AreaName(key)
	}
	return out
}

func orPlaceholder(v string, t locales.Table) string {
	if strings.TrimSpace(v) == "" {
		return t.NotSpecified
	}
	return v
}

func yearString(year FlexInt) string {
	if year == 0 {
		return ""
	}
	return fmt.Sprintf("%d", year)
}

func ageString(year FlexInt, currentYear int, t locales.Table) string {
	if year == 0 {
		return t.NotSpecified
	}
	return fmt.Sprintf("%d", currentYear-int(year))
}
