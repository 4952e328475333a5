package messaging

import (
	"context"

	"github.com/olta-art/editions-indexer/internal/domain"
)

// EventHandler is called for each contract event, in log order
type EventHandler func(event *domain.ContractEvent) error

// Subscriber defines the interface for subscribing to on-chain contract
// events
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents subscribes to contract events from the watched
	// address set and blocks until ctx is canceled or the subscription
	// fails.
	// fromBlock: starting block for the subscription (0 for latest)
	// handler: callback invoked for each decoded event
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// WatchAddress adds a contract address to the watched set. The active
	// subscription is recreated to include it, so events from freshly
	// deployed project contracts are picked up without a restart.
	WatchAddress(ctx context.Context, address string) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}
