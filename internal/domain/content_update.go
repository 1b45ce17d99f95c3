package domain

import "strings"

// Impact grades how much a content update affects classroom practice.
type Impact string

// Possible impact values
const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// IntegrationStatus filters content updates by whether they were integrated.
type IntegrationStatus string

// Possible integration filter values; the zero value matches everything.
const (
	IntegrationAny           IntegrationStatus = ""
	IntegrationIntegrated    IntegrationStatus = "integrated"
	IntegrationNotIntegrated IntegrationStatus = "not_integrated"
)

// ContentUpdate is a curriculum, research or policy change teachers can
// fold into their lessons.
type ContentUpdate struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Date       string `json:"date"`
	Source     string `json:"source"`
	Summary    string `json:"summary"`
	Impact     Impact `json:"impact"`
	Integrated bool   `json:"integrated"`
}

// UpdateFilter selects content updates. Empty fields match everything.
type UpdateFilter struct {
	Category    string
	Impact      Impact
	Integration IntegrationStatus
}

// Matches reports whether u passes every populated criterion.
// Category and impact comparisons ignore case.
func (f UpdateFilter) Matches(u ContentUpdate) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, u.Category) {
		return false
	}
	if f.Impact != "" && !strings.EqualFold(string(f.Impact), string(u.Impact)) {
		return false
	}
	switch f.Integration {
	case IntegrationIntegrated:
		return u.Integrated
	case IntegrationNotIntegrated:
		return !u.Integrated
	}
	return true
}

// ParseIntegrationStatus accepts "", "all", "integrated" and "not_integrated".
func ParseIntegrationStatus(s string) (IntegrationStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return IntegrationAny, nil
	case string(IntegrationIntegrated):
		return IntegrationIntegrated, nil
	case string(IntegrationNotIntegrated):
		return IntegrationNotIntegrated, nil
	default:
		return IntegrationAny, ErrInvalidIntegrationStatus
	}
}
