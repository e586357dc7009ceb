package cli

import (
	"fmt"
	"net/url"
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("TOURNEY_SERVER", "http://localhost:8080"),
		Output:    "text",
	}
}

// Validate checks the output format and server URL
func (c *Config) Validate() error {
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("unknown output format %q (want text or json)", c.Output)
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server URL %q", c.ServerURL)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
