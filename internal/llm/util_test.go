package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON untouched",
			input: `{"queries": ["a", "b"]}`,
			want:  `{"queries": ["a", "b"]}`,
		},
		{
			name:  "json fenced block",
			input: "```json\n{\"queries\": []}\n```",
			want:  `{"queries": []}`,
		},
		{
			name:  "generic fenced block",
			input: "```\n{\"ok\": true}\n```",
			want:  `{"ok": true}`,
		},
		{
			name:  "fenced block with language identifier",
			input: "```javascript\n{\"ok\": true}\n```",
			want:  `{"ok": true}`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n{\"ok\": true}\n  ",
			want:  `{"ok": true}`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestConfig_GetModel(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
}

func TestConfig_GetModel_Fallback(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "lite-model"},
	}
	// Unknown tier falls back through standard to lite
	assert.Equal(t, "lite-model", cfg.GetModel(TierAdvanced))
}

func TestConfig_WithModel(t *testing.T) {
	cfg := DefaultConfig()
	custom := cfg.WithModel(TierLite, "custom-model")

	assert.Equal(t, "custom-model", custom.GetModel(TierLite))
	// Original config is unchanged
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
}
