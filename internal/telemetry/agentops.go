// Package telemetry reports pipeline runs to the AgentOps collector.
// Telemetry is strictly best-effort: a failed call is logged and never
// interrupts the run.
package telemetry

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rankyx/jobscout/internal/fetch"
)

const defaultAgentOpsBaseURL = "https://api.agentops.ai/v2"

// Session represents one tracked pipeline run. A nil *Session is valid and
// records nothing, which is how tests and offline runs disable telemetry.
type Session struct {
	apiKey    string
	baseURL   string
	sessionID uuid.UUID
	logger    zerolog.Logger
}

// NewSession creates a telemetry session for one pipeline run.
func NewSession(apiKey string, logger zerolog.Logger) *Session {
	return &Session{
		apiKey:    apiKey,
		baseURL:   defaultAgentOpsBaseURL,
		sessionID: uuid.New(),
		logger:    logger,
	}
}

// WithBaseURL overrides the collector endpoint. Used by tests.
func (s *Session) WithBaseURL(baseURL string) *Session {
	s.baseURL = strings.TrimSuffix(baseURL, "/")
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	if s == nil {
		return uuid.Nil
	}
	return s.sessionID
}

// Start registers the session with the collector.
func (s *Session) Start(ctx context.Context, tags []string) {
	if s == nil {
		return
	}
	s.post(ctx, "/create_session", map[string]any{
		"session": map[string]any{
			"session_id":     s.sessionID.String(),
			"tags":           tags,
			"init_timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// RecordEvent reports one named event (typically a completed stage).
func (s *Session) RecordEvent(ctx context.Context, name string, attrs map[string]any) {
	if s == nil {
		return
	}
	event := map[string]any{
		"session_id": s.sessionID.String(),
		"event_type": name,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range attrs {
		event[k] = v
	}
	s.post(ctx, "/create_events", map[string]any{
		"events": []map[string]any{event},
	})
}

// End closes the session with a final state ("Success" or "Fail").
func (s *Session) End(ctx context.Context, endState string) {
	if s == nil {
		return
	}
	s.post(ctx, "/update_session", map[string]any{
		"session": map[string]any{
			"session_id":    s.sessionID.String(),
			"end_state":     endState,
			"end_timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// post sends one collector call and swallows any failure.
func (s *Session) post(ctx context.Context, path string, payload any) {
	opts := fetch.DefaultOptions()
	opts.Timeout = 10 * time.Second
	opts.Headers = map[string]string{
		"X-Agentops-Api-Key": s.apiKey,
	}

	if _, err := fetch.PostJSON(ctx, s.baseURL+path, payload, nil, opts); err != nil {
		s.logger.Warn().Str("path", path).Err(err).Msg("telemetry call failed")
	}
}
