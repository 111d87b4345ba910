package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const (
	EventGameStarted = "game_started"
	EventMoveMade    = "move_made"
	EventGameEnded   = "game_ended"
)

type Config struct {
	Enabled bool
	Broker  string
	Topic   string
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
	At   time.Time   `json:"at"`
}

// Producer publishes game events. A disabled producer accepts and drops
// every event.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(cfg Config) *Producer {
	if !cfg.Enabled {
		log.Info().Msg("kafka disabled, game events will not be published")
		return &Producer{writer: nil}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Broker),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}

	log.Info().Str("broker", cfg.Broker).Str("topic", cfg.Topic).Msg("kafka producer initialized")
	return &Producer{writer: writer}
}

func (p *Producer) Enabled() bool {
	return p.writer != nil
}

func encodeEvent(eventType string, data interface{}, at time.Time) (kafka.Message, error) {
	value, err := json.Marshal(Event{Type: eventType, Data: data, At: at})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(eventType),
		Value: value,
		Time:  at,
	}, nil
}

func (p *Producer) ProduceEvent(ctx context.Context, eventType string, data interface{}) error {
	if p.writer == nil {
		return nil
	}

	msg, err := encodeEvent(eventType, data, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Error().Err(err).Str("event", eventType).Msg("failed to produce kafka event")
		return err
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
