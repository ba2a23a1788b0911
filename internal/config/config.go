// internal/config/config.go
package config

import (
	"os"
	"path/filepath"
)

// Config holds all application configuration paths
type Config struct {
	HomeDir      string
	AgentdeckDir string
	DatabasePath string
	KeymapPath   string
	LogDir       string
}

// Load creates a Config instance with resolved paths
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	agentdeckDir := filepath.Join(home, ".agentdeck")
	logDir := filepath.Join(agentdeckDir, "logs")

	// Ensure directories exist
	for _, dir := range []string{agentdeckDir, logDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	return &Config{
		HomeDir:      home,
		AgentdeckDir: agentdeckDir,
		DatabasePath: filepath.Join(agentdeckDir, "settings.db"),
		KeymapPath:   filepath.Join(agentdeckDir, "keymap.yaml"),
		LogDir:       logDir,
	}, nil
}
