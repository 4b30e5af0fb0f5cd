package llm

import "fmt"

const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultTemperature = float32(0.3)
)

const systemPrompt = "You are a professional resume parser. Extract structured information from profile text. Always provide values for required fields."

const userPromptTemplate = `Parse the following profile text into structured data. Return a JSON object with these fields:
- name: Full name (required)
- title: Current job title (required)
- summary: Professional summary (required)
- skills: List of technical and soft skills
- experience: List of work experience objects with fields: company, title, duration, description
- education: List of education objects with fields: institution, degree, year
- certifications: List of certifications (if any)
- languages: List of languages spoken (if any)

Important: Please provide values for name, title, and summary. If you cannot determine these from the text, use "Not provided" as the value.

Profile text:
%s
`

// SystemPrompt returns the fixed system message.
func SystemPrompt() string { return systemPrompt }

// BuildPrompt returns the user message for profileText.
func BuildPrompt(profileText string) string {
	return fmt.Sprintf(userPromptTemplate, profileText)
}
