package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GENERATION_TIMEOUT", "")
	t.Setenv("MAX_ACTIONS_PER_TURN", "")
	t.Setenv("STORE_DRIVER", "MEMORY")

	cfg := Load()

	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, 30*time.Second, cfg.Advising.GenerationTimeout)
	assert.Equal(t, 3, cfg.Advising.MaxActionsPerTurn)
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("X_DURATION", "1500ms")
	assert.Equal(t, 1500*time.Millisecond, getEnvAsDuration("X_DURATION", time.Second))

	t.Setenv("X_DURATION", "45")
	assert.Equal(t, 45*time.Second, getEnvAsDuration("X_DURATION", time.Second))

	t.Setenv("X_DURATION", "soon")
	assert.Equal(t, time.Second, getEnvAsDuration("X_DURATION", time.Second))
}
