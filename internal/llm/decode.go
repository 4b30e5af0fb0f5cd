package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"resumeapi/internal/model"
)

const fence = "```"

const profileSchema = `{
  "type": "object",
  "properties": {
    "name":           {"type": ["string", "null"]},
    "title":          {"type": ["string", "null"]},
    "summary":        {"type": ["string", "null"]},
    "skills":         {"type": ["array", "null"], "items": {"type": "string"}},
    "experience":     {"type": ["array", "null"], "items": {"type": "object"}},
    "education":      {"type": ["array", "null"], "items": {"type": "object"}},
    "certifications": {"type": ["array", "null"], "items": {"type": "string"}},
    "languages":      {"type": ["array", "null"], "items": {"type": "string"}}
  }
}`

var compiledSchema = mustSchema(profileSchema)

func mustSchema(s string) *gojsonschema.Schema {
	sc, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(err)
	}
	return sc
}

// ExtractJSON strips Markdown code fences from a completion. With a "```json" marker
// the text up to the next fence is taken; otherwise the text inside the first fence
// pair. Content without fences is returned trimmed.
func ExtractJSON(content string) string {
	if i := strings.Index(content, fence+"json"); i >= 0 {
		rest := content[i+len(fence+"json"):]
		if j := strings.Index(rest, fence); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}
	if i := strings.Index(content, fence); i >= 0 {
		rest := content[i+len(fence):]
		if j := strings.Index(rest, fence); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(content)
}

// DecodeProfile parses raw completion content into a filled profile.
func DecodeProfile(content string) (model.ParsedProfile, error) {
	raw := ExtractJSON(content)

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return model.ParsedProfile{}, fmt.Errorf("decode profile json: %w", err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return model.ParsedProfile{}, errors.New("profile json is not an object")
	}

	res, err := compiledSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return model.ParsedProfile{}, err
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return model.ParsedProfile{}, fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
	}

	var p model.ParsedProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return model.ParsedProfile{}, fmt.Errorf("decode profile fields: %w", err)
	}
	p.Fill()
	return p, nil
}
