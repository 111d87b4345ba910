package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"connect4/internal/bot"
	"connect4/internal/game"
)

type Config struct {
	Rows     int
	Cols     int
	Strategy bot.Strategy
	Depth    int
	Workers  int
	// Seed of zero leaves the random source time-seeded.
	Seed     uint64

	LogLevel  string
	LogPretty bool

	KafkaEnabled bool
	KafkaBroker  string
	KafkaTopic   string
}

func Default() Config {
	return Config{
		Rows:        game.DefaultRows,
		Cols:        game.DefaultCols,
		Strategy:    bot.Minimax,
		Depth:       bot.DefaultDepth,
		Workers:     1,
		LogLevel:    "info",
		LogPretty:   true,
		KafkaBroker: "localhost:9092",
		KafkaTopic:  "game-events",
	}
}

// Load starts from Default and applies any environment overrides.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	ints := []struct {
		key string
		dst *int
		min int
	}{
		{"CONNECT4_ROWS", &cfg.Rows, 1},
		{"CONNECT4_COLS", &cfg.Cols, 1},
		{"CONNECT4_DEPTH", &cfg.Depth, 1},
		{"CONNECT4_WORKERS", &cfg.Workers, 1},
	}
	for _, v := range ints {
		raw, ok := lookup(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", v.key, err)
		}
		if n < v.min {
			return cfg, fmt.Errorf("%s: must be at least %d, got %d", v.key, v.min, n)
		}
		*v.dst = n
	}

	if raw, ok := lookup("CONNECT4_STRATEGY"); ok && raw != "" {
		s, err := bot.ParseStrategy(raw)
		if err != nil {
			return cfg, fmt.Errorf("CONNECT4_STRATEGY: %w", err)
		}
		cfg.Strategy = s
	}

	if raw, ok := lookup("CONNECT4_SEED"); ok && raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("CONNECT4_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if raw, ok := lookup("LOG_LEVEL"); ok && raw != "" {
		cfg.LogLevel = strings.ToLower(raw)
	}
	if raw, ok := lookup("LOG_PRETTY"); ok && raw != "" {
		pretty, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, fmt.Errorf("LOG_PRETTY: %w", err)
		}
		cfg.LogPretty = pretty
	}

	if raw, ok := lookup("KAFKA_ENABLED"); ok {
		cfg.KafkaEnabled = strings.ToLower(raw) == "true"
	}
	if raw, ok := lookup("KAFKA_BROKER"); ok && raw != "" {
		cfg.KafkaBroker = raw
	}
	if raw, ok := lookup("KAFKA_TOPIC"); ok && raw != "" {
		cfg.KafkaTopic = raw
	}

	if _, err := game.NewBoard(cfg.Rows, cfg.Cols); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Params returns the search parameters for the configured strategy.
func (c Config) Params() bot.Params {
	return bot.Params{Depth: c.Depth}
}

// EngineOptions translates the config into bot.Engine options.
func (c Config) EngineOptions() []bot.Option {
	opts := []bot.Option{bot.WithWorkers(c.Workers)}
	if c.Seed != 0 {
		opts = append(opts, bot.WithSeed(c.Seed))
	}
	return opts
}
