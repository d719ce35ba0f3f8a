package domain

import "strings"

// Investor is a venture capital profile from the investor catalog.
// Investors are immutable once loaded.
type Investor struct {
	// ID is the unique identifier for the investor.
	ID string `json:"id" yaml:"id"`

	// Name is the investor's full name.
	Name string `json:"name" yaml:"name"`

	// Firm is the fund or firm the investor represents.
	Firm string `json:"firm" yaml:"firm"`

	// Role is the investor's title at the firm (e.g., "Partner").
	Role string `json:"role" yaml:"role"`

	// FocusAreas are thesis tags matched against founder preference text.
	FocusAreas []string `json:"focusAreas" yaml:"focus_areas"`

	// Industries are the sectors the investor backs.
	Industries []string `json:"industries" yaml:"industries"`

	// Stages are the funding stages the investor accepts.
	Stages []string `json:"stages" yaml:"stages"`

	// CheckSize is the typical cheque range.
	CheckSize CheckSize `json:"checkSize" yaml:"-"`

	// Location is where the investor is based.
	Location string `json:"location" yaml:"location"`

	// Portfolio lists notable portfolio company names.
	Portfolio []string `json:"portfolio" yaml:"portfolio"`

	// Avatar is a reference to the investor's picture.
	Avatar string `json:"avatar,omitempty" yaml:"avatar"`
}

// CheckSize is an inclusive cheque range in whole dollars.
type CheckSize struct {
	Min   int64  `json:"min"`
	Max   int64  `json:"max"`
	Label string `json:"label"`
}

// Contains reports whether amount lies within [Min, Max].
func (c CheckSize) Contains(amount int64) bool {
	return amount >= c.Min && amount <= c.Max
}

// String returns the original label, or a formatted range.
func (c CheckSize) String() string {
	if c.Label != "" {
		return c.Label
	}
	return FormatAmount(c.Min) + "-" + FormatAmount(c.Max)
}

// FirstFocusArea returns the lead focus area, or fallback when none is set.
func (i *Investor) FirstFocusArea(fallback string) string {
	if len(i.FocusAreas) == 0 {
		return fallback
	}
	return i.FocusAreas[0]
}

// PortfolioCompany returns the n-th portfolio company, or fallback.
func (i *Investor) PortfolioCompany(n int, fallback string) string {
	if n < 0 || n >= len(i.Portfolio) {
		return fallback
	}
	return i.Portfolio[n]
}

// AcceptsStage reports whether stage is one of the investor's stages (exact match).
func (i *Investor) AcceptsStage(stage string) bool {
	for _, s := range i.Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// CoversIndustry reports whether industry matches any investor industry tag.
// The comparison is a case-insensitive substring check in either direction.
func (i *Investor) CoversIndustry(industry string) bool {
	needle := strings.ToLower(strings.TrimSpace(industry))
	if needle == "" {
		return false
	}
	for _, tag := range i.Industries {
		t := strings.ToLower(tag)
		if t == "" {
			continue
		}
		if strings.Contains(t, needle) || strings.Contains(needle, t) {
			return true
		}
	}
	return false
}
