package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
port: 8080
log:
  level: debug
scheduler:
  default_policy: rr
  round_robin:
    time_quantum: 4
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &SchedulerConfig{
		Port:                  8080,
		LogLevel:              "debug",
		DefaultPolicy:         "rr",
		RoundRobinTimeQuantum: 4,
	}, cfg)
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	path := writeConfig(t, "port: 7000\n")
	t.Setenv("SCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "fcfs", cfg.DefaultPolicy)
	assert.Equal(t, 3, cfg.RoundRobinTimeQuantum)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 0\n")
	_, err = Load(path)
	assert.ErrorContains(t, err, "time_quantum must be positive")
}
