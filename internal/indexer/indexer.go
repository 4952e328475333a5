package indexer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/logger"
	"github.com/olta-art/editions-indexer/internal/metrics"
	"github.com/olta-art/editions-indexer/internal/providers/ethereum"
	"github.com/olta-art/editions-indexer/internal/store"
)

// ErrTransient marks failures worth a redelivery: store outages and chain
// read errors. Everything else either succeeds, is skipped as a semantic
// anomaly, or is terminated as unprocessable.
var ErrTransient = errors.New("transient failure")

// transient wraps an error so the bridge requests redelivery
func transient(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}

// Indexer is the event-to-entity mapping core. Process applies one contract
// event to the entity graph; calls must be strictly sequential and in
// blockchain order.
//
//go:generate mockgen -source=indexer.go -destination=../mocks/indexer.go -package=mocks -mock_names=Indexer=MockIndexer
type Indexer interface {
	Process(ctx context.Context, event *domain.ContractEvent) error
}

type indexer struct {
	store    store.Store
	reader   ethereum.ContractReader
	registry *Registry
}

// New creates the mapping core over a store, a contract reader and a
// project registry
func New(st store.Store, reader ethereum.ContractReader, registry *Registry) Indexer {
	return &indexer{
		store:    st,
		reader:   reader,
		registry: registry,
	}
}

// Process applies a single contract event to the entity graph
func (i *indexer) Process(ctx context.Context, event *domain.ContractEvent) error {
	var err error
	switch event.Type {
	case domain.EventCreatedProject:
		err = i.handleCreatedProject(ctx, event)
	case domain.EventCreatorApprovalUpdated:
		err = i.handleCreatorApprovalUpdated(ctx, event)
	case domain.EventTransfer:
		err = i.handleTransfer(ctx, event)
	case domain.EventApproval:
		err = i.handleApproval(ctx, event)
	case domain.EventApprovedMinter:
		err = i.handleApprovedMinter(ctx, event)
	case domain.EventVersionAdded:
		err = i.handleVersionAdded(ctx, event)
	case domain.EventVersionURLUpdated:
		err = i.handleVersionURLUpdated(ctx, event)
	case domain.EventRoyaltyRecipientChanged:
		err = i.handleRoyaltyRecipientChanged(ctx, event)
	case domain.EventAuctionCreated:
		err = i.handleAuctionCreated(ctx, event)
	case domain.EventAuctionApprovalUpdated:
		err = i.handleAuctionApprovalUpdated(ctx, event)
	case domain.EventEditionPurchased, domain.EventSeededEditionPurchased:
		err = i.handleEditionPurchased(ctx, event)
	case domain.EventAskCreated:
		err = i.handleAskCreated(ctx, event)
	case domain.EventAskPriceUpdated:
		err = i.handleAskPriceUpdated(ctx, event)
	case domain.EventAskCanceled:
		err = i.handleAskCanceled(ctx, event)
	case domain.EventAskFilled:
		err = i.handleAskFilled(ctx, event)
	case domain.EventProfileUpdated:
		err = i.handleProfileUpdated(ctx, event)
	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}

	if err != nil {
		return err
	}

	metrics.LastIndexedBlock.Set(float64(event.BlockNumber))
	return nil
}

// skip logs a semantic anomaly and abandons the event without error. All
// subsequent event processing continues unaffected.
func (i *indexer) skip(ctx context.Context, event *domain.ContractEvent, reason string, fields ...zap.Field) error {
	fields = append(fields, zap.String("event", event.String()), zap.String("reason", reason))
	logger.WarnCtx(ctx, "Skipping event", fields...)
	metrics.EventsSkipped.WithLabelValues(reason).Inc()
	return nil
}
