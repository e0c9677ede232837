package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("synthesis.json", "generate-search-queries")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "{{.QueryCount}}")
	assert.Contains(t, prompt, "{{.Role}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("synthesis.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		prompt := MustGet("report.json", "summarize-jobs")
		assert.NotEmpty(t, prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "Find {{.QueryCount}} jobs for {{.Role}} in {{.Location}}"
	result := Format(template, map[string]string{
		"QueryCount": "10",
		"Role":       "AI/ML Engineer",
		"Location":   "Egypt",
	})
	assert.Equal(t, "Find 10 jobs for AI/ML Engineer in Egypt", result)
}

func TestFormat_MissingKeyLeftIntact(t *testing.T) {
	template := "Role: {{.Role}}, Language: {{.Language}}"
	result := Format(template, map[string]string{"Role": "Engineer"})
	assert.Equal(t, "Role: Engineer, Language: {{.Language}}", result)
}
