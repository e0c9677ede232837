package main

import (
	"fmt"
	"os"

	"github.com/rankyx/jobscout/internal/artifacts"
	"github.com/rankyx/jobscout/internal/config"
	"github.com/rankyx/jobscout/internal/schemas"
)

// apiKeyFromFlagOrEnv resolves a credential from a flag value, falling back
// to the named environment variable.
func apiKeyFromFlagOrEnv(flagValue, envVar string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}
	return "", &config.MissingSecretError{Variable: envVar}
}

// writeStageCheckpoint persists a stage artifact and validates the written
// bytes against the named schema.
func writeStageCheckpoint(store *artifacts.Store, file, schema string, v any) error {
	if _, err := store.WriteJSON(file, v); err != nil {
		return fmt.Errorf("failed to write checkpoint %s: %w", file, err)
	}
	doc, err := store.ReadBytes(file)
	if err != nil {
		return fmt.Errorf("failed to read checkpoint %s: %w", file, err)
	}
	if err := schemas.ValidateBytes(schema, doc); err != nil {
		return fmt.Errorf("checkpoint %s does not validate against schema: %w", file, err)
	}
	return nil
}
