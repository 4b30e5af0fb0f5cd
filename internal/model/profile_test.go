package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()

	assert.Equal(t, NotProvided, p.Name)
	assert.Equal(t, NotProvided, p.Title)
	assert.Equal(t, NotProvided, p.Summary)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Not provided",
		"title": "Not provided",
		"summary": "Not provided",
		"skills": [],
		"experience": [],
		"education": [],
		"certifications": [],
		"languages": []
	}`, string(b))
}

func TestParsedProfile_FillKeepsValues(t *testing.T) {
	p := ParsedProfile{Name: "Ada", Skills: []string{"go"}}
	p.Fill()

	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, NotProvided, p.Title)
	assert.Equal(t, []string{"go"}, p.Skills)
	assert.NotNil(t, p.Languages)
}

func TestResumeContent_Normalize(t *testing.T) {
	c := ResumeContent{Title: "CV", Template: TemplateModern}
	c.Normalize()

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"experience":[]`)
	assert.Contains(t, string(b), `"languages":[]`)
}
