package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cardtable/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(config.EnvPort, "8080")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := loadConfig(cmd, options{})
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv(config.EnvPort, "3000")
	t.Setenv(config.EnvBindAddr, "0.0.0.0")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-p", "9000", "--static-dir", "/srv/www", "-l", "DEBUG"}))

	port, err := cmd.Flags().GetInt("port")
	require.NoError(t, err)
	dir, err := cmd.Flags().GetString("static-dir")
	require.NoError(t, err)
	level, err := cmd.Flags().GetString("log")
	require.NoError(t, err)

	cfg, err := loadConfig(cmd, options{port: port, staticDir: dir, logLevel: level})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/srv/www", cfg.StaticDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.BindAddr, "unset flags keep the environment value")
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--port", "70000"}))

	_, err := loadConfig(cmd, options{port: 70000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port: must be at most 65535")
}
