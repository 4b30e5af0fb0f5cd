package model

import "time"

// Template names a résumé may be rendered with.
const (
	TemplateModern       = "modern"
	TemplateProfessional = "professional"
	TemplateCreative     = "creative"
	TemplateMinimal      = "minimal"
)

type Experience struct {
	Company      string   `json:"company" bson:"company" validate:"required"`
	Position     string   `json:"position" bson:"position" validate:"required"`
	StartDate    Date     `json:"start_date" bson:"start_date" validate:"required"`
	EndDate      *Date    `json:"end_date" bson:"end_date"`
	Description  string   `json:"description" bson:"description"`
	Achievements []string `json:"achievements" bson:"achievements"`
}

type Education struct {
	Institution  string   `json:"institution" bson:"institution" validate:"required"`
	Degree       string   `json:"degree" bson:"degree" validate:"required"`
	Field        string   `json:"field" bson:"field"`
	StartDate    Date     `json:"start_date" bson:"start_date" validate:"required"`
	EndDate      *Date    `json:"end_date" bson:"end_date"`
	GPA          *float64 `json:"gpa" bson:"gpa"`
	Achievements []string `json:"achievements" bson:"achievements"`
}

type SkillCategory struct {
	Category string   `json:"category" bson:"category" validate:"required"`
	Items    []string `json:"items" bson:"items"`
}

type Project struct {
	Name         string   `json:"name" bson:"name" validate:"required"`
	Description  string   `json:"description" bson:"description"`
	Technologies []string `json:"technologies" bson:"technologies"`
	Link         *string  `json:"link" bson:"link"`
}

type Certification struct {
	Name   string  `json:"name" bson:"name" validate:"required"`
	Issuer string  `json:"issuer" bson:"issuer" validate:"required"`
	Date   Date    `json:"date" bson:"date" validate:"required"`
	Link   *string `json:"link" bson:"link"`
}

type Language struct {
	Language    string `json:"language" bson:"language" validate:"required"`
	Proficiency string `json:"proficiency" bson:"proficiency" validate:"required"`
}

// PersonalInfo is the header block of a résumé.
type PersonalInfo struct {
	Name           string  `json:"name" bson:"name" validate:"required"`
	Email          string  `json:"email" bson:"email" validate:"required"`
	Phone          string  `json:"phone" bson:"phone"`
	Location       string  `json:"location" bson:"location"`
	Summary        string  `json:"summary" bson:"summary"`
	ProfilePicture *string `json:"profile_picture" bson:"profile_picture"`
}

// ResumeContent is everything a user authors. It is the body of create and update
// requests and is stored verbatim.
type ResumeContent struct {
	Title          string          `json:"title" bson:"title" validate:"required"`
	Template       string          `json:"template" bson:"template" validate:"required,oneof=modern professional creative minimal"`
	PersonalInfo   PersonalInfo    `json:"personal_info" bson:"personal_info"`
	Experience     []Experience    `json:"experience" bson:"experience" validate:"dive"`
	Education      []Education     `json:"education" bson:"education" validate:"dive"`
	Skills         []SkillCategory `json:"skills" bson:"skills" validate:"dive"`
	Projects       []Project       `json:"projects" bson:"projects" validate:"dive"`
	Certifications []Certification `json:"certifications" bson:"certifications" validate:"dive"`
	Languages      []Language      `json:"languages" bson:"languages" validate:"dive"`
}

// Normalize replaces nil lists with empty ones so they serialise as [].
func (c *ResumeContent) Normalize() {
	if c.Experience == nil {
		c.Experience = []Experience{}
	}
	if c.Education == nil {
		c.Education = []Education{}
	}
	if c.Skills == nil {
		c.Skills = []SkillCategory{}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
	if c.Certifications == nil {
		c.Certifications = []Certification{}
	}
	if c.Languages == nil {
		c.Languages = []Language{}
	}
}

// Resume is a stored résumé. ID and User are opaque strings whose format is owned by
// the store that produced them.
type Resume struct {
	ID string `json:"_id"`
	ResumeContent
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
