package model

// NotProvided is the placeholder for required profile fields the parser could not fill.
const NotProvided = "Not provided"

// ParsedProfile is the structured form of free profile text. It is never persisted.
type ParsedProfile struct {
	Name           string           `json:"name"`
	Title          string           `json:"title"`
	Summary        string           `json:"summary"`
	Skills         []string         `json:"skills"`
	Experience     []map[string]any `json:"experience"`
	Education      []map[string]any `json:"education"`
	Certifications []string         `json:"certifications"`
	Languages      []string         `json:"languages"`
}

// DefaultProfile returns a fresh placeholder result.
func DefaultProfile() ParsedProfile {
	p := ParsedProfile{}
	p.Fill()
	return p
}

// Fill replaces empty required fields with NotProvided and nil lists with empty ones.
func (p *ParsedProfile) Fill() {
	if p.Name == "" {
		p.Name = NotProvided
	}
	if p.Title == "" {
		p.Title = NotProvided
	}
	if p.Summary == "" {
		p.Summary = NotProvided
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []map[string]any{}
	}
	if p.Education == nil {
		p.Education = []map[string]any{}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	if p.Languages == nil {
		p.Languages = []string{}
	}
}
