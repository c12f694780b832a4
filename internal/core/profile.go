package core

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"lactamira.uz/backend/internal/locales"
)

// Language is a supported guidance language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"
	LanguageUzbek   Language = "uz"
)

// ResolveLanguage maps an arbitrary language code to a supported Language.
// Anything that is not exactly one of the supported codes resolves to
// English. This never fails.
func ResolveLanguage(code string) Language {
	if locales.Supported(code) {
		return Language(code)
	}
	return LanguageEnglish
}

type PregnancyStatus string

const (
	StatusPregnant      PregnancyStatus = "pregnant"
	StatusPostpartum    PregnancyStatus = "postpartum"
	StatusBreastfeeding PregnancyStatus = "breastfeeding"
	StatusPlanning      PregnancyStatus = "planning"
)

func (s PregnancyStatus) Valid() bool {
	switch s {
	case StatusPregnant, StatusPostpartum, StatusBreastfeeding, StatusPlanning, "":
		return true
	}
	return false
}

type BreastfeedingStatus string

const (
	FeedingExclusive     BreastfeedingStatus = "exclusive"
	FeedingCombination   BreastfeedingStatus = "combination"
	FeedingFormula       BreastfeedingStatus = "formula"
	FeedingWeaning       BreastfeedingStatus = "weaning"
	FeedingNotApplicable BreastfeedingStatus = "not-applicable"
)

func (s BreastfeedingStatus) Valid() bool {
	switch s {
	case FeedingExclusive, FeedingCombination, FeedingFormula, FeedingWeaning, FeedingNotApplicable, "":
		return true
	}
	return false
}

// FlexInt decodes from either a JSON number or a numeric string. The mobile
// client historically sent numeric profile fields as strings ("1990"), so
// both shapes must be accepted on the wire. It marshals back as a number.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("value %q is not an integer", s)
	}
	*n = FlexInt(v)
	return nil
}

// Profile describes the mother/baby situation and preferences used to
// personalize guidance. Field names follow the client's wire format.
type Profile struct {
	YearOfBirth           FlexInt             `json:"yearOfBirth"`
	PregnancyStatus       PregnancyStatus     `json:"pregnancyStatus,omitempty"`
	NumberOfChildren      FlexInt             `json:"numberOfChildren,omitempty"`
	ChildAge              string              `json:"childAge,omitempty"`
	BabyName              string              `json:"babyName,omitempty"`
	BreastfeedingStatus   BreastfeedingStatus `json:"breastfeedingStatus,omitempty"`
	HealthConcerns        string              `json:"healthConcerns,omitempty"`
	PreferredLanguage     string              `json:"preferredLanguage,omitempty"`
	SelectedGuidanceAreas []string            `json:"selectedGuidanceAreas,omitempty"`
	PreferredProvider     string              `json:"preferredProvider,omitempty"`
}

// Language returns the resolved guidance language for this profile.
func (p *Profile) Language() Language {
	return ResolveLanguage(p.PreferredLanguage)
}

// Normalize trims free-text fields and drops empty guidance-area entries.
// It never rejects a profile; the guidance path must accept anything.
func (p *Profile) Normalize() {
	p.ChildAge = strings.TrimSpace(p.ChildAge)
	p.BabyName = strings.TrimSpace(p.BabyName)
	p.HealthConcerns = strings.TrimSpace(p.HealthConcerns)
	p.PreferredLanguage = strings.TrimSpace(p.PreferredLanguage)
	p.PreferredProvider = strings.TrimSpace(p.PreferredProvider)
	if p.NumberOfChildren < 0 {
		p.NumberOfChildren = 0
	}

	areas := p.SelectedGuidanceAreas[:0]
	for _, a := range p.SelectedGuidanceAreas {
		if a = strings.TrimSpace(a); a != "" {
			areas = append(areas, a)
		}
	}
	p.SelectedGuidanceAreas = areas
}

// Validate checks a profile for persistence via the profile resource. The
// guidance path deliberately does not use it: generation accepts any input.
func (p *Profile) Validate() error {
	if p.YearOfBirth != 0 && (p.YearOfBirth < 1000 || p.YearOfBirth > 9999) {
		return fmt.Errorf("yearOfBirth must be a 4-digit year, got %d", p.YearOfBirth)
	}
	if !p.PregnancyStatus.Valid() {
		return fmt.Errorf("unknown pregnancyStatus %q", p.PregnancyStatus)
	}
	if !p.BreastfeedingStatus.Valid() {
		return fmt.Errorf("unknown breastfeedingStatus %q", p.BreastfeedingStatus)
	}
	if p.NumberOfChildren < 0 {
		return fmt.Errorf("numberOfChildren cannot be negative")
	}
	return nil
}
