package config

import "os"

// Config holds process-wide settings. It is built once at startup from the
// environment and treated as immutable afterwards.
type Config struct {
	Port             string
	NewsAPIKey       string
	GuardianAPIKey   string
	MediaStackAPIKey string
}

// Load reads the configuration from environment variables.
func Load() Config {
	return Config{
		Port:             GetEnvOrDefault("PORT", "8080"),
		NewsAPIKey:       os.Getenv("NEWS_API_KEY"),
		GuardianAPIKey:   os.Getenv("GUARDIAN_API_KEY"),
		MediaStackAPIKey: os.Getenv("MEDIASTACK_API_KEY"),
	}
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
