package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/olta-art/editions-indexer/internal/adapter"
	"github.com/olta-art/editions-indexer/internal/block"
	"github.com/olta-art/editions-indexer/internal/logger"
	"github.com/olta-art/editions-indexer/internal/messaging"
)

// Config holds the configuration for the Ethereum subscription
type Config struct {
	// Addresses is the initial watched contract set: the factory, the
	// auction house, the asks marketplace, the profile registry and any
	// project contracts already known from a previous run.
	Addresses []string

	// MaxSubscribeInterval caps the resubscribe backoff
	MaxSubscribeInterval time.Duration
}

type ethSubscriber struct {
	client adapter.EthClient
	blocks block.Provider
	clock  adapter.Clock
	config Config

	mu        sync.Mutex
	addresses map[string]struct{}
	resub     chan struct{}
}

// NewSubscriber creates a new Ethereum event subscriber over the watched
// contract address set
func NewSubscriber(cfg Config, client adapter.EthClient, blocks block.Provider, clock adapter.Clock) messaging.Subscriber {
	addresses := make(map[string]struct{}, len(cfg.Addresses))
	for _, addr := range cfg.Addresses {
		addresses[strings.ToLower(addr)] = struct{}{}
	}

	return &ethSubscriber{
		client:    client,
		blocks:    blocks,
		clock:     clock,
		config:    cfg,
		addresses: addresses,
		resub:     make(chan struct{}, 1),
	}
}

// WatchAddress adds a contract address to the watched set and triggers a
// resubscription so its logs start flowing
func (s *ethSubscriber) WatchAddress(ctx context.Context, address string) error {
	address = strings.ToLower(address)

	s.mu.Lock()
	_, known := s.addresses[address]
	s.addresses[address] = struct{}{}
	s.mu.Unlock()

	if known {
		return nil
	}

	logger.InfoCtx(ctx, "Watching new contract", zap.String("address", address))

	// Non-blocking: a pending signal already covers this address
	select {
	case s.resub <- struct{}{}:
	default:
	}
	return nil
}

func (s *ethSubscriber) filterQuery(fromBlock uint64) goethereum.FilterQuery {
	s.mu.Lock()
	addresses := make([]common.Address, 0, len(s.addresses))
	for addr := range s.addresses {
		addresses = append(addresses, common.HexToAddress(addr))
	}
	s.mu.Unlock()

	query := goethereum.FilterQuery{
		Addresses: addresses,
		Topics:    [][]common.Hash{EventTopics()},
	}
	if fromBlock > 0 {
		query.FromBlock = new(big.Int).SetUint64(fromBlock)
	}
	return query
}

// SubscribeEvents subscribes to logs of the watched contracts and feeds each
// decoded event to the handler. The subscription is recreated with backoff
// on errors and immediately when the watched address set grows; fromBlock is
// advanced past delivered events so a resubscription never replays them.
func (s *ethSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = s.config.MaxSubscribeInterval
	bo.MaxElapsedTime = 0 // keep retrying until ctx is canceled

	for {
		err := s.subscribeOnce(ctx, &fromBlock, handler)
		switch {
		case err == nil:
			// Resubscribe requested, new address set takes effect
			bo.Reset()
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			wait := bo.NextBackOff()
			logger.ErrorCtx(ctx, err, zap.String("message", "Subscription failed, retrying"), zap.Duration("backoff", wait))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.clock.After(wait):
			}
		}
	}
}

// subscribeOnce runs a single subscription until ctx is canceled, the
// subscription errors, or a resubscribe is requested. A nil return means
// resubscribe.
func (s *ethSubscriber) subscribeOnce(ctx context.Context, fromBlock *uint64, handler messaging.EventHandler) error {
	logs := make(chan types.Log)
	sub, err := s.client.SubscribeFilterLogs(ctx, s.filterQuery(*fromBlock), logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to filter logs: %w", err)
	}
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.resub:
			logger.InfoCtx(ctx, "Recreating subscription with updated address set")
			return nil
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			if vLog.Removed {
				continue
			}

			event, err := ParseLog(vLog)
			if err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error parsing log"))
				continue
			}
			if event == nil {
				continue
			}

			timestamp, err := s.blocks.GetBlockTimestamp(ctx, vLog.BlockNumber)
			if err != nil {
				return fmt.Errorf("failed to resolve block timestamp: %w", err)
			}
			event.BlockTimestamp = uint64(timestamp.Unix())

			if err := handler(event); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error handling event"), zap.String("event", event.String()))
			}

			// A resubscription resumes from the next block. Events of the
			// same block delivered twice are absorbed by the replay guards
			// downstream.
			*fromBlock = vLog.BlockNumber
		}
	}
}

// GetLatestBlock returns the latest block number
func (s *ethSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// Close closes the connection
func (s *ethSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Ethereum WebSocket connection closed")
}

// fetcher implements block.Fetcher over the Ethereum client
type fetcher struct {
	client adapter.EthClient
	clock  adapter.Clock
}

// NewBlockFetcher creates a block.Fetcher backed by the Ethereum client
func NewBlockFetcher(client adapter.EthClient, clock adapter.Clock) block.Fetcher {
	return &fetcher{client: client, clock: clock}
}

func (f *fetcher) FetchLatestBlock(ctx context.Context) (uint64, error) {
	header, err := f.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest header: %w", err)
	}
	return header.Number.Uint64(), nil
}

func (f *fetcher) FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	header, err := f.client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get header for block %d: %w", blockNumber, err)
	}
	return f.clock.Unix(int64(header.Time), 0), nil //nolint:gosec,G115 // header.Time is a uint64 from geth which is safe to cast
}
