package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-md2note/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // MD2NOTE_CONFIG: config file name or path
	SettingsPath string // MD2NOTE_SETTINGS: settings file path
	InputDir     string // MD2NOTE_INPUT_DIR: default input directory
	OutputDir    string // MD2NOTE_OUTPUT_DIR: default output directory
	EditorURL    string // MD2NOTE_EDITOR_URL: note.com editor page
	LogLevel     string // MD2NOTE_LOG_LEVEL: zerolog level name
	Workers      int    // MD2NOTE_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2NOTE_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2NOTE_CONFIG":     true,
	"MD2NOTE_SETTINGS":   true,
	"MD2NOTE_INPUT_DIR":  true,
	"MD2NOTE_OUTPUT_DIR": true,
	"MD2NOTE_EDITOR_URL": true,
	"MD2NOTE_LOG_LEVEL":  true,
	"MD2NOTE_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("MD2NOTE_CONFIG"),
		SettingsPath: os.Getenv("MD2NOTE_SETTINGS"),
		InputDir:     os.Getenv("MD2NOTE_INPUT_DIR"),
		OutputDir:    os.Getenv("MD2NOTE_OUTPUT_DIR"),
		EditorURL:    os.Getenv("MD2NOTE_EDITOR_URL"),
		LogLevel:     os.Getenv("MD2NOTE_LOG_LEVEL"),
	}

	// Invalid or non-positive values are ignored
	if workers := os.Getenv("MD2NOTE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized MD2NOTE_* variable.
func warnUnknownEnvVars(logger zerolog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "MD2NOTE_") {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			logger.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig fills empty config values from the environment.
// This keeps the order: CLI flags > env vars > config file > defaults
// (flags are applied afterwards by the caller).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.EditorURL != "" && (cfg.Export.EditorURL == "" || cfg.Export.EditorURL == config.DefaultEditorURL) {
		cfg.Export.EditorURL = env.EditorURL
	}
}
