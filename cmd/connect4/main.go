package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	"connect4/internal/bot"
	"connect4/internal/config"
	"connect4/internal/game"
	"connect4/internal/kafka"
	"connect4/internal/logging"
	"connect4/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	strategy := flag.String("strategy", cfg.Strategy.String(), "bot strategy: random, greedy or minimax")
	easy := flag.Bool("easy", false, "shorthand for -strategy=random")
	medium := flag.Bool("medium", false, "shorthand for -strategy=greedy")
	hard := flag.Bool("hard", false, "shorthand for -strategy=minimax")
	depth := flag.Int("depth", cfg.Depth, "minimax search depth in plies")
	workers := flag.Int("workers", cfg.Workers, "goroutines for top-level minimax branches")
	seed := flag.Uint64("seed", cfg.Seed, "random seed, 0 for time-based")
	name := flag.String("name", "Player", "your display name")
	botFirst := flag.Bool("bot-first", false, "let the bot open the game")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level")
	flag.Parse()

	switch {
	case *easy:
		*strategy = "random"
	case *medium:
		*strategy = "greedy"
	case *hard:
		*strategy = "minimax"
	}

	logging.Setup(*logLevel, cfg.LogPretty)

	s, err := bot.ParseStrategy(*strategy)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid strategy")
	}
	cfg.Strategy = s
	cfg.Depth = *depth
	cfg.Workers = *workers
	cfg.Seed = *seed

	producer := kafka.NewProducer(kafka.Config{
		Enabled: cfg.KafkaEnabled,
		Broker:  cfg.KafkaBroker,
		Topic:   cfg.KafkaTopic,
	})
	defer producer.Close()
	log.Info().Bool("publishing", producer.Enabled()).Msg("game event publisher ready")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := bot.New(cfg.EngineOptions()...)
	manager, err := session.NewManager(engine, cfg.Strategy, cfg.Params(), cfg.Rows, cfg.Cols)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game setup")
	}
	manager.SetEventCallback(func(eventType string, data interface{}) {
		if err := producer.ProduceEvent(ctx, eventType, data); err != nil {
			log.Warn().Err(err).Str("event", eventType).Msg("failed to publish game event")
		}
	})

	if err := run(ctx, manager, *name, !*botFirst, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("game aborted")
		os.Exit(1)
	}
}

// run plays one game, reading column numbers from in until the game ends,
// in is exhausted or ctx is cancelled.
func run(ctx context.Context, manager *session.Manager, name string, humanFirst bool, in io.Reader, out io.Writer) error {
	gameState, err := manager.Start(name, humanFirst)
	if err != nil {
		return err
	}
	defer manager.Remove(gameState.ID)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for !gameState.IsFinished {
		render(out, gameState.Board)
		fmt.Fprintf(out, "%s, pick a column (0-%d): ", name, gameState.Board.Cols()-1)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return io.ErrUnexpectedEOF
			}
			line = strings.TrimSpace(l)
		}
		if line == "q" || line == "quit" {
			return nil
		}

		column, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(out, "%q is not a column\n", line)
			continue
		}

		_, reply, err := manager.Play(gameState.ID, column)
		switch {
		case errors.Is(err, game.ErrColumnFull), errors.Is(err, game.ErrInvalidColumn):
			fmt.Fprintf(out, "cannot play there: %v\n", err)
			continue
		case err != nil:
			return err
		}
		if reply != nil {
			fmt.Fprintf(out, "%s plays column %d\n", bot.BotUsername, reply.Column)
		}
	}

	render(out, gameState.Board)
	if gameState.Winner == game.DrawWinner {
		fmt.Fprintln(out, "Draw!")
	} else {
		fmt.Fprintf(out, "%s wins!\n", gameState.Winner)
	}
	return nil
}
