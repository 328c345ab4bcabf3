// Package kafka publishes storm bulletins to a sink topic so downstream
// alerting services can consume them.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/stormwatch/tropics-dashboard/internal/config"
	"github.com/stormwatch/tropics-dashboard/internal/domain"
	"github.com/stormwatch/tropics-dashboard/internal/observability"
)

// Writer produces bulletin messages to a Kafka topic.
type Writer struct {
	writer  *kafkago.Writer
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewWriter creates a Kafka producer for the configured bulletin topic.
func NewWriter(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, metrics: metrics, logger: logger}
}

// PublishBulletins serializes and publishes the report's bulletins in a
// single WriteMessages call. Keyed by source so each feed's bulletins land
// on one partition in fetch order.
func (w *Writer) PublishBulletins(ctx context.Context, generatedAt time.Time, bulletins []domain.FeedSummary) error {
	if len(bulletins) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(bulletins))
	for i := range bulletins {
		msg, err := serializeToMessage(generatedAt, bulletins[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}

	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		w.metrics.PublishErrors.Inc()
		return err
	}
	w.metrics.BulletinsPublished.Add(float64(len(msgs)))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// bulletinPayload is the wire form of one published bulletin.
type bulletinPayload struct {
	Source      string    `json:"source"`
	Summary     string    `json:"summary"`
	GeneratedAt time.Time `json:"generated_at"`
}

// serializeToMessage marshals a bulletin into a Kafka message.
func serializeToMessage(generatedAt time.Time, bulletin domain.FeedSummary) (kafkago.Message, error) {
	data, err := json.Marshal(bulletinPayload{
		Source:      bulletin.Source,
		Summary:     bulletin.Summary,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize bulletin: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(bulletin.Source),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte(bulletin.Source)},
			{Key: "generated_at", Value: []byte(generatedAt.Format(time.RFC3339))},
		},
	}, nil
}
