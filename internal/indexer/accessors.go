package indexer

import (
	"context"
	"fmt"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/store/schema"
)

// Entity accessors: load by id, construct and immediately persist a
// zero-valued row when absent. All entity creation goes through these so a
// replayed event never duplicates a row.

// findOrCreateUser returns the User for an address, creating a plain
// account row on first reference
func (i *indexer) findOrCreateUser(ctx context.Context, address string) (*schema.User, error) {
	user, err := i.store.GetUser(ctx, address)
	if err != nil {
		return nil, transient(fmt.Errorf("failed to load user %s: %w", address, err))
	}
	if user != nil {
		return user, nil
	}

	user = &schema.User{
		ID:   address,
		Type: domain.UserTypeUser,
	}
	if err := i.store.SaveUser(ctx, user); err != nil {
		return nil, transient(fmt.Errorf("failed to save user %s: %w", address, err))
	}
	return user, nil
}

// findOrCreateRecipient is findOrCreateUser plus the split-wallet probe.
// The probe reverts for ordinary addresses, which is expected and leaves
// the type as a plain account. Only fresh rows are probed, an address does
// not change nature.
func (i *indexer) findOrCreateRecipient(ctx context.Context, address string) (*schema.User, error) {
	user, err := i.store.GetUser(ctx, address)
	if err != nil {
		return nil, transient(fmt.Errorf("failed to load user %s: %w", address, err))
	}
	if user != nil {
		return user, nil
	}

	userType := domain.UserTypeUser
	if i.reader.IsSplitWallet(ctx, address) {
		userType = domain.UserTypeSplitWallet
	}

	user = &schema.User{
		ID:   address,
		Type: userType,
	}
	if err := i.store.SaveUser(ctx, user); err != nil {
		return nil, transient(fmt.Errorf("failed to save user %s: %w", address, err))
	}
	return user, nil
}

// findOrCreateCurrency returns the Currency for a token address, fetching
// ERC-20 metadata from the chain on first reference. The zero address is
// the native currency and is never probed.
func (i *indexer) findOrCreateCurrency(ctx context.Context, address string) (*schema.Currency, error) {
	currency, err := i.store.GetCurrency(ctx, address)
	if err != nil {
		return nil, transient(fmt.Errorf("failed to load currency %s: %w", address, err))
	}
	if currency != nil {
		return currency, nil
	}

	currency = &schema.Currency{ID: address}
	if address == domain.ZeroAddress {
		currency.Name = "Ethereum"
		currency.Symbol = "ETH"
		currency.Decimals = 18
	} else {
		metadata, err := i.reader.CurrencyMetadata(ctx, address)
		if err != nil {
			return nil, transient(fmt.Errorf("failed to read currency metadata for %s: %w", address, err))
		}
		currency.Name = metadata.Name
		currency.Symbol = metadata.Symbol
		currency.Decimals = metadata.Decimals
	}

	if err := i.store.SaveCurrency(ctx, currency); err != nil {
		return nil, transient(fmt.Errorf("failed to save currency %s: %w", address, err))
	}
	return currency, nil
}

// findOrCreateProjectCreator returns the factory-level approval registry
// row for a factory address
func (i *indexer) findOrCreateProjectCreator(ctx context.Context, factory string) (*schema.ProjectCreator, error) {
	creator, err := i.store.GetProjectCreator(ctx, factory)
	if err != nil {
		return nil, transient(fmt.Errorf("failed to load project creator registry %s: %w", factory, err))
	}
	if creator != nil {
		return creator, nil
	}

	creator = &schema.ProjectCreator{ID: factory}
	if err := i.store.SaveProjectCreator(ctx, creator); err != nil {
		return nil, transient(fmt.Errorf("failed to save project creator registry %s: %w", factory, err))
	}
	return creator, nil
}

// findOrCreateUrlHashPair returns the content slot row for a version,
// creating an empty slot when a URL update arrives for a slot the
// version-added refresh never populated
func (i *indexer) findOrCreateUrlHashPair(ctx context.Context, versionID string, kind domain.URLKind, event *domain.ContractEvent) (*schema.UrlHashPair, error) {
	id := UrlHashPairID(versionID, kind)
	pair, err := i.store.GetUrlHashPair(ctx, id)
	if err != nil {
		return nil, transient(fmt.Errorf("failed to load url hash pair %s: %w", id, err))
	}
	if pair != nil {
		return pair, nil
	}

	pair = &schema.UrlHashPair{
		ID:                   id,
		VersionID:            versionID,
		Kind:                 kind,
		CreatedAtTimestamp:   event.BlockTimestamp,
		CreatedAtBlockNumber: event.BlockNumber,
	}
	if err := i.store.SaveUrlHashPair(ctx, pair); err != nil {
		return nil, transient(fmt.Errorf("failed to save url hash pair %s: %w", id, err))
	}
	return pair, nil
}
