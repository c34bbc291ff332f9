package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	kgo "github.com/segmentio/kafka-go"
)

type Writer interface {
	WriteJSON(ctx context.Context, v any) error
	Close() error
}

type writer struct {
	w *kgo.Writer
}

func NewWriter(brokerURL, topic string) Writer {
	addr := strings.TrimSpace(brokerURL)
	if addr == "" {
		addr = "localhost:9092"
	}
	w := &kgo.Writer{
		Addr:         kgo.TCP(addr),
		Topic:        topic,
		Balancer:     &kgo.LeastBytes{},
		RequiredAcks: kgo.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &writer{w: w}
}

func (wr *writer) WriteJSON(ctx context.Context, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return wr.w.WriteMessages(ctx, kgo.Message{Value: b, Time: time.Now()})
}

func (wr *writer) Close() error { return wr.w.Close() }
