package repository

import (
	"context"
	"time"

	"PriceFeed/internal/domain/models"
	domrepo "PriceFeed/internal/domain/repository"
	pkgkafka "PriceFeed/pkg/kafka"
)

type batchProducer interface {
	PublishBatch(ctx context.Context, topic string, messages []pkgkafka.Message) error
	Close() error
}

// tickMessage is the wire shape of a tick on the Kafka topic.
type tickMessage struct {
	Symbol     string  `json:"symbol"`
	Bid        float64 `json:"bid"`
	Ask        float64 `json:"ask"`
	Mid        float64 `json:"mid"`
	Volatility float64 `json:"volatility"`
	Regime     string  `json:"regime"`
	Timestamp  string  `json:"timestamp"`
	Timeframe  string  `json:"timeframe"`
	Source     string  `json:"source"`
}

// KafkaTickPublisher publishes ticks keyed by symbol, so one symbol stays on one partition.
type KafkaTickPublisher struct {
	producer batchProducer
	topic    string
}

func NewKafkaTickPublisher(producer *pkgkafka.Producer, topic string) *KafkaTickPublisher {
	return &KafkaTickPublisher{producer: producer, topic: topic}
}

func (p *KafkaTickPublisher) PublishBatch(ctx context.Context, ticks []models.Tick) error {
	if len(ticks) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, len(ticks))
	for i, t := range ticks {
		msgs[i] = pkgkafka.Message{
			Key: []byte(t.Symbol),
			Value: tickMessage{
				Symbol:     t.Symbol,
				Bid:        t.Bid,
				Ask:        t.Ask,
				Mid:        t.Mid,
				Volatility: t.Volatility,
				Regime:     string(t.Regime),
				Timestamp:  t.Timestamp.UTC().Format(time.RFC3339Nano),
				Timeframe:  t.Timeframe,
				Source:     t.Source,
			},
		}
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func (p *KafkaTickPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

var _ domrepo.TickPublisher = (*KafkaTickPublisher)(nil)
