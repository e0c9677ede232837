package config

import (
	"fmt"
	"os"
)

// Environment variable names for the required provider credentials.
const (
	EnvGeminiAPIKey      = "GEMINI_API_KEY"
	EnvTavilyAPIKey      = "TAVILY_API_KEY"
	EnvScrapeGraphAPIKey = "SCRAPEGRAPH_API_KEY"
	EnvAgentOpsAPIKey    = "AGENTOPS_API_KEY"
)

// Optional environment variables for the Google Custom Search provider.
const (
	EnvGoogleSearchAPIKey = "GOOGLE_SEARCH_API_KEY"
	EnvGoogleSearchCX     = "GOOGLE_SEARCH_CX"
)

// Secrets holds the API credentials for the external providers. All four are
// required and checked before any network call is attempted.
type Secrets struct {
	GeminiAPIKey      string
	TavilyAPIKey      string
	ScrapeGraphAPIKey string
	AgentOpsAPIKey    string

	// Only required when the "google" search provider is selected.
	GoogleSearchAPIKey string
	GoogleSearchCX     string
}

// MissingSecretError reports a required credential that was not set.
type MissingSecretError struct {
	Variable string
}

func (e *MissingSecretError) Error() string {
	return fmt.Sprintf("missing required environment variable %s", e.Variable)
}

// LoadSecrets reads the provider credentials from the environment.
// It fails on the first missing required variable and names it in the error.
func LoadSecrets() (*Secrets, error) {
	secrets := &Secrets{
		GeminiAPIKey:       os.Getenv(EnvGeminiAPIKey),
		TavilyAPIKey:       os.Getenv(EnvTavilyAPIKey),
		ScrapeGraphAPIKey:  os.Getenv(EnvScrapeGraphAPIKey),
		AgentOpsAPIKey:     os.Getenv(EnvAgentOpsAPIKey),
		GoogleSearchAPIKey: os.Getenv(EnvGoogleSearchAPIKey),
		GoogleSearchCX:     os.Getenv(EnvGoogleSearchCX),
	}

	required := []struct {
		name  string
		value string
	}{
		{EnvGeminiAPIKey, secrets.GeminiAPIKey},
		{EnvTavilyAPIKey, secrets.TavilyAPIKey},
		{EnvScrapeGraphAPIKey, secrets.ScrapeGraphAPIKey},
		{EnvAgentOpsAPIKey, secrets.AgentOpsAPIKey},
	}
	for _, v := range required {
		if v.value == "" {
			return nil, &MissingSecretError{Variable: v.name}
		}
	}

	return secrets, nil
}

// ValidateGoogleProvider checks the optional Google Custom Search credentials.
// Only called when the "google" search provider is selected.
func (s *Secrets) ValidateGoogleProvider() error {
	if s.GoogleSearchAPIKey == "" {
		return &MissingSecretError{Variable: EnvGoogleSearchAPIKey}
	}
	if s.GoogleSearchCX == "" {
		return &MissingSecretError{Variable: EnvGoogleSearchCX}
	}
	return nil
}
