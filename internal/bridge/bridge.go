package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	natsjetstream "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/olta-art/editions-indexer/internal/adapter"
	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/indexer"
	"github.com/olta-art/editions-indexer/internal/logger"
	"github.com/olta-art/editions-indexer/internal/metrics"
	"github.com/olta-art/editions-indexer/internal/providers/jetstream"
)

// Config holds the configuration for the event bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// Bridge consumes contract events from JetStream and feeds them to the
// mapping core, one at a time in stream order
type Bridge interface {
	// Run starts the event bridge
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc      adapter.NatsConn
	js      adapter.JetStream
	indexer indexer.Indexer
	json    adapter.JSON
	config  Config
}

// NewBridge creates a new event bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	idx indexer.Indexer,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	opts := jetstream.ConnectOptions(jetstream.Config{
		ConnectionName: cfg.ConnectionName,
		MaxReconnects:  cfg.MaxReconnects,
		ReconnectWait:  cfg.ReconnectWait,
	})

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:      nc,
		js:      js,
		indexer: idx,
		json:    jsonAdapter,
		config:  cfg,
	}, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge", zap.String("stream", b.config.StreamName), zap.String("consumer", b.config.ConsumerName))

	consumerConfig := natsjetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     natsjetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: "editions.events.>",
		// Handlers assume log order, never hand out more than one message
		MaxAckPending: 1,
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	// Strictly sequential, entity updates depend on everything that came
	// before
	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down event bridge")
			return ctx.Err()
		case msg := <-msgChan:
			b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single NATS message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	metadata, _ := msg.Metadata()

	var event domain.ContractEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal event"))
		metrics.EventsTerminated.Inc()
		// Redelivery cannot fix a malformed payload
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	if !event.Valid() {
		logger.WarnCtx(ctx, "Event payload does not match its type", zap.String("event", event.String()))
		metrics.EventsTerminated.Inc()
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	if metadata != nil {
		logger.DebugCtx(ctx, "Received event",
			zap.String("event", event.String()),
			zap.Uint64("deliveryCount", metadata.NumDelivered),
		)
	}

	if err := b.indexer.Process(ctx, &event); err != nil {
		if errors.Is(err, indexer.ErrTransient) {
			logger.ErrorCtx(ctx, err, zap.String("message", "Transient failure, requesting redelivery"), zap.String("event", event.String()))
			metrics.EventsRetried.Inc()
			if err := msg.Nak(); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Failed to nak message"))
			}
			return
		}

		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to process event"), zap.String("event", event.String()))
		metrics.EventsTerminated.Inc()
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	metrics.EventsProcessed.WithLabelValues(string(event.Type)).Inc()
	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ack message"))
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
