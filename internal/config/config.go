package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server configuration
type Config struct {
	LogLevel           string `validate:"required,oneof=debug info warn warning error"`
	LogFormat          string `validate:"required,oneof=text json"`
	Environment        string `validate:"required"`
	ServiceName        string `validate:"required"`
	Version            string
	BindAddr           string   `validate:"required"`
	Port               int      `validate:"min=1,max=65535"`
	StaticDir          string   `validate:"required"`
	CORSAllowedOrigins []string `validate:"dive,url|eq=*"`
}

// Load loads the configuration from environment variables.
// Validation is a separate step so command-line overrides can be applied first.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:          strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:        getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:        DefaultServiceName,
		Version:            getEnv(EnvVersion, DefaultVersion),
		BindAddr:           getEnv(EnvBindAddr, DefaultBindAddr),
		StaticDir:          getEnv(EnvStaticDir, DefaultStaticDir),
		CORSAllowedOrigins: getEnvList(EnvCORSAllowedOrigins),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// ListenAddr joins the bind address and port
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.BindAddr, strconv.Itoa(c.Port))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ServerURL returns the base URL the client talks to
func ServerURL() string {
	_ = godotenv.Load()
	return strings.TrimRight(getEnv(EnvServerURL, DefaultServerURL), "/")
}
