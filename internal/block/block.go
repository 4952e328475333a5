package block

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/olta-art/editions-indexer/internal/adapter"
	"github.com/olta-art/editions-indexer/internal/logger"
)

// latestBlockCache represents the cached latest block number
type latestBlockCache struct {
	Number   uint64
	CachedAt time.Time
}

// timestampCache represents a cached timestamp for a specific block number
type timestampCache struct {
	Timestamp time.Time
	CachedAt  time.Time
}

// Provider provides cached access to the latest block number and to block
// timestamps. Every event of a block carries the same timestamp, so caching
// collapses the per-log header lookups of a busy block into one RPC call.
//
//go:generate mockgen -source=block.go -destination=../mocks/block_provider.go -package=mocks -mock_names=Provider=MockBlockProvider
type Provider interface {
	// GetLatestBlock returns the latest block number, potentially from cache
	GetLatestBlock(ctx context.Context) (uint64, error)

	// GetBlockTimestamp returns the timestamp of a block, potentially from cache
	GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// Fetcher is the interface for fetching block information from the chain
//
//go:generate mockgen -source=block.go -destination=../mocks/block_provider.go -package=mocks -mock_names=Fetcher=MockBlockFetcher
type Fetcher interface {
	// FetchLatestBlock fetches the latest block number from the chain
	FetchLatestBlock(ctx context.Context) (uint64, error)

	// FetchBlockTimestamp fetches the timestamp of a block from the chain
	FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// Config holds configuration for the Provider
type Config struct {
	// TTL is how long to cache the latest block number
	TTL time.Duration

	// StaleWindow is how long to keep serving a stale latest block number
	// when fetching fails. Older than this, the fetch error is returned.
	StaleWindow time.Duration

	// TimestampTTL is how long to cache block timestamps. Timestamps of
	// confirmed blocks are immutable, 0 caches forever.
	TimestampTTL time.Duration
}

type provider struct {
	fetcher Fetcher
	config  Config
	clock   adapter.Clock

	mu         sync.RWMutex
	latest     *latestBlockCache
	timestamps map[uint64]*timestampCache
}

// NewProvider creates a new Provider with caching
func NewProvider(fetcher Fetcher, config Config, clock adapter.Clock) Provider {
	return &provider{
		fetcher:    fetcher,
		config:     config,
		clock:      clock,
		timestamps: make(map[uint64]*timestampCache),
	}
}

// GetLatestBlock returns the latest block number, using cache if valid
func (p *provider) GetLatestBlock(ctx context.Context) (uint64, error) {
	p.mu.RLock()
	cached := p.latest
	p.mu.RUnlock()

	now := p.clock.Now()

	if cached != nil && now.Sub(cached.CachedAt) < p.config.TTL {
		return cached.Number, nil
	}

	blockNumber, err := p.fetcher.FetchLatestBlock(ctx)
	if err != nil {
		if cached != nil && now.Sub(cached.CachedAt) < p.config.StaleWindow {
			logger.DebugCtx(ctx, "Using stale block number", zap.Uint64("block_number", cached.Number))
			return cached.Number, nil
		}
		return 0, fmt.Errorf("failed to fetch latest block and no valid cache available: %w", err)
	}

	p.mu.Lock()
	p.latest = &latestBlockCache{Number: blockNumber, CachedAt: now}
	p.mu.Unlock()

	return blockNumber, nil
}

// GetBlockTimestamp returns the timestamp of a block, using cache if valid
func (p *provider) GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	p.mu.RLock()
	cached := p.timestamps[blockNumber]
	p.mu.RUnlock()

	now := p.clock.Now()

	if cached != nil && (p.config.TimestampTTL == 0 || now.Sub(cached.CachedAt) < p.config.TimestampTTL) {
		return cached.Timestamp, nil
	}

	timestamp, err := p.fetcher.FetchBlockTimestamp(ctx, blockNumber)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to fetch timestamp for block %d: %w", blockNumber, err)
	}

	p.mu.Lock()
	p.timestamps[blockNumber] = &timestampCache{Timestamp: timestamp, CachedAt: now}
	p.mu.Unlock()

	return timestamp, nil
}
