package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connect4/internal/bot"
	"connect4/internal/game"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, game.DefaultRows, cfg.Rows)
	assert.Equal(t, bot.Minimax, cfg.Strategy)
	assert.Equal(t, bot.Params{Depth: bot.DefaultDepth}, cfg.Params())
	assert.False(t, cfg.KafkaEnabled)
	assert.Len(t, cfg.EngineOptions(), 1)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"CONNECT4_ROWS":     "7",
		"CONNECT4_COLS":     "8",
		"CONNECT4_STRATEGY": "medium",
		"CONNECT4_DEPTH":    "6",
		"CONNECT4_WORKERS":  "4",
		"CONNECT4_SEED":     "99",
		"LOG_LEVEL":         "DEBUG",
		"LOG_PRETTY":        "false",
		"KAFKA_ENABLED":     "TRUE",
		"KAFKA_BROKER":      "kafka:9092",
		"KAFKA_TOPIC":       "connect4",
	}))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Rows)
	assert.Equal(t, 8, cfg.Cols)
	assert.Equal(t, bot.Greedy, cfg.Strategy)
	assert.Equal(t, 6, cfg.Depth)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, "kafka:9092", cfg.KafkaBroker)
	assert.Equal(t, "connect4", cfg.KafkaTopic)
	assert.Len(t, cfg.EngineOptions(), 2)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]map[string]string{
		"non-numeric depth": {"CONNECT4_DEPTH": "deep"},
		"zero workers":      {"CONNECT4_WORKERS": "0"},
		"bad strategy":      {"CONNECT4_STRATEGY": "chess"},
		"negative seed":     {"CONNECT4_SEED": "-1"},
		"bad bool":          {"LOG_PRETTY": "sometimes"},
		"tiny board":        {"CONNECT4_ROWS": "2", "CONNECT4_COLS": "3"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := load(env(vars))
			assert.Error(t, err)
		})
	}

	_, err := load(env(map[string]string{"CONNECT4_STRATEGY": "chess"}))
	assert.ErrorIs(t, err, bot.ErrUnknownStrategy)
	_, err = load(env(map[string]string{"CONNECT4_ROWS": "2", "CONNECT4_COLS": "3"}))
	assert.ErrorIs(t, err, game.ErrInvalidDimensions)
}
