package messaging

import (
	"context"

	"github.com/olta-art/editions-indexer/internal/domain"
)

// Publisher defines the interface for publishing contract events to the
// message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a contract event to the message broker
	PublishEvent(ctx context.Context, event *domain.ContractEvent) error
	// Close closes the connection
	Close()
}
