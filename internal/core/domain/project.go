package domain

import "time"

// Project is a founder's company profile and its outreach history.
// Projects are created by a founder and never deleted within a session.
type Project struct {
	// ID is the unique identifier for the project.
	ID string `json:"id"`

	// Name is the company or product name.
	Name string `json:"name"`

	// Description is the free-text pitch.
	Description string `json:"description"`

	// CreatedAt is when the project was created.
	CreatedAt time.Time `json:"createdAt"`

	// Profile is the structured extraction, nil until entered or parsed.
	Profile *ProjectProfile `json:"profile,omitempty"`

	// ShortlistedInvestors holds investor IDs, deduplicated, in insertion order.
	ShortlistedInvestors []string `json:"shortlistedInvestors"`

	// SentMessages holds outreach message IDs in send order.
	SentMessages []string `json:"sentMessages"`
}

// ProjectProfile is the structured data extracted from a pitch or entered by hand.
// Every field is optional; zero values mean "absent".
type ProjectProfile struct {
	Industry      string   `json:"industry,omitempty"`
	Stage         string   `json:"stage,omitempty"`
	FundingNeeded string   `json:"fundingNeeded,omitempty"`
	TeamSize      int      `json:"teamSize,omitempty"`
	Founded       string   `json:"founded,omitempty"`
	Location      string   `json:"location,omitempty"`
	Revenue       string   `json:"revenue,omitempty"`
	Growth        string   `json:"growth,omitempty"`
	Customers     int      `json:"customers,omitempty"`
	Retention     string   `json:"retention,omitempty"`
	NPS           int      `json:"nps,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
}

// Clone returns a deep copy of the profile. A nil profile clones to nil.
func (p *ProjectProfile) Clone() *ProjectProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.Highlights = append([]string(nil), p.Highlights...)
	return &c
}

// Clone returns a deep copy of the project.
func (p *Project) Clone() Project {
	c := *p
	c.Profile = p.Profile.Clone()
	c.ShortlistedInvestors = append([]string(nil), p.ShortlistedInvestors...)
	c.SentMessages = append([]string(nil), p.SentMessages...)
	return c
}

// Industry returns the profile industry, or "" when there is no profile.
func (p *Project) Industry() string {
	if p.Profile == nil {
		return ""
	}
	return p.Profile.Industry
}

// Stage returns the profile funding stage, or "" when there is no profile.
func (p *Project) Stage() string {
	if p.Profile == nil {
		return ""
	}
	return p.Profile.Stage
}

// ProjectUpdate is a partial update. Nil fields are left unchanged.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Profile     *ProjectProfile
}

// UploadedFile describes a pitch document handed to the document parser.
// Content may be empty when only the file's name and size are known.
type UploadedFile struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MIMEType string `json:"mimeType,omitempty"`
	Content  []byte `json:"-"`
}
