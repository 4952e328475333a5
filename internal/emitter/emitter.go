package emitter

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/olta-art/editions-indexer/internal/adapter"
	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/logger"
	"github.com/olta-art/editions-indexer/internal/messaging"
	"github.com/olta-art/editions-indexer/internal/store"
)

// Config holds the configuration for the event emitter
type Config struct {
	Chain           string        // cursor key, e.g. "eip155:1"
	StartBlock      uint64        // 0 resumes from the cursor or latest
	CursorSaveFreq  uint64        // Save cursor every N blocks
	CursorSaveDelay time.Duration // Or save cursor every N seconds
}

// Emitter subscribes to contract events and publishes them to NATS
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run starts the event emitter
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

type emitter struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	store      store.Store
	config     Config
	clock      adapter.Clock
}

// NewEmitter creates a new event emitter
func NewEmitter(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	st store.Store,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	return &emitter{
		subscriber: sub,
		publisher:  pub,
		store:      st,
		config:     cfg,
		clock:      clock,
	}
}

// Run starts the event emitter
func (e *emitter) Run(ctx context.Context) error {
	// Project contracts deployed before this run must be in the watched
	// set, the factory only announces new ones
	projects, err := e.store.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list known projects: %w", err)
	}
	for _, project := range projects {
		if err := e.subscriber.WatchAddress(ctx, project.ID); err != nil {
			return fmt.Errorf("failed to watch project %s: %w", project.ID, err)
		}
	}
	logger.Info("Seeded watched project contracts", zap.Int("count", len(projects)))

	// Determine starting block
	startBlock := e.config.StartBlock
	if startBlock == 0 {
		lastBlock, err := e.store.GetBlockCursor(ctx, e.config.Chain)
		if err != nil {
			return fmt.Errorf("failed to get block cursor: %w", err)
		}

		if lastBlock > 0 {
			startBlock = lastBlock + 1
			logger.Info("Resuming from last processed block", zap.String("chain", e.config.Chain), zap.Uint64("block", startBlock))
		} else {
			latestBlock, err := e.subscriber.GetLatestBlock(ctx)
			if err != nil {
				return fmt.Errorf("failed to get latest block number: %w", err)
			}
			startBlock = latestBlock
			logger.Info("Starting from latest block", zap.String("chain", e.config.Chain), zap.Uint64("block", startBlock))
		}
	} else {
		logger.Info("Starting from configured block", zap.String("chain", e.config.Chain), zap.Uint64("block", startBlock))
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("Starting event subscription", zap.String("chain", e.config.Chain))

		lastSavedBlock := uint64(0)
		lastSaveTime := e.clock.Now()

		handler := func(event *domain.ContractEvent) error {
			// Publish to NATS
			if err := e.publisher.PublishEvent(ctx, event); err != nil {
				return fmt.Errorf("failed to publish event %s: %w", event.TxHash, err)
			}

			// A new project contract starts emitting its own events, widen
			// the subscription before any of them can be missed
			if event.Type == domain.EventCreatedProject && event.CreatedProject != nil {
				if err := e.subscriber.WatchAddress(ctx, event.CreatedProject.ProjectAddress); err != nil {
					return fmt.Errorf("failed to watch new project %s: %w", event.CreatedProject.ProjectAddress, err)
				}
			}

			// Save cursor periodically (every N blocks or N seconds)
			shouldSave := event.BlockNumber-lastSavedBlock >= e.config.CursorSaveFreq ||
				e.clock.Since(lastSaveTime) >= e.config.CursorSaveDelay

			if shouldSave {
				if err := e.store.SetBlockCursor(ctx, e.config.Chain, event.BlockNumber); err != nil {
					logger.ErrorCtx(ctx, err, zap.String("message", "Failed to save block cursor"))
				} else {
					lastSavedBlock = event.BlockNumber
					lastSaveTime = e.clock.Now()
				}
			}

			return nil
		}

		if err := e.subscriber.SubscribeEvents(ctx, startBlock, handler); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.subscriber.Close()
}
