package indexer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/store/schema"
)

// The external marketplace lists assets far beyond this platform; ask
// events only matter when they reference an Edition this indexer tracks.

// handleAskCreated constructs the Active listing keyed by
// {tokenContract}-{tokenId}
func (i *indexer) handleAskCreated(ctx context.Context, event *domain.ContractEvent) error {
	payload := event.AskCreated

	if _, ok := i.registry.Lookup(payload.TokenContract); !ok {
		// Not an error, simply outside the tracked domain
		return nil
	}

	editionID := EditionID(payload.TokenContract, payload.TokenID)
	edition, err := i.store.GetEdition(ctx, editionID)
	if err != nil {
		return transient(fmt.Errorf("failed to load edition %s: %w", editionID, err))
	}
	if edition == nil {
		return i.skip(ctx, event, "ask_for_unknown_edition", zap.String("edition", editionID))
	}

	currency, err := i.findOrCreateCurrency(ctx, payload.Currency)
	if err != nil {
		return err
	}

	askID := AskID(payload.TokenContract, payload.TokenID)
	ask, err := i.store.GetAsk(ctx, askID)
	if err != nil {
		return transient(fmt.Errorf("failed to load ask %s: %w", askID, err))
	}
	if ask != nil {
		return nil
	}

	ask = &schema.Ask{
		ID:                   askID,
		EditionID:            edition.ID,
		Price:                payload.Price,
		CurrencyID:           currency.ID,
		Status:               domain.AskStatusActive,
		CreatedAtTimestamp:   event.BlockTimestamp,
		CreatedAtBlockNumber: event.BlockNumber,
	}
	if err := i.store.SaveAsk(ctx, ask); err != nil {
		return transient(fmt.Errorf("failed to save ask %s: %w", askID, err))
	}
	return nil
}

// handleAskPriceUpdated updates price and currency of an active listing in
// place
func (i *indexer) handleAskPriceUpdated(ctx context.Context, event *domain.ContractEvent) error {
	payload := event.AskPriceUpdated

	askID := AskID(payload.TokenContract, payload.TokenID)
	ask, err := i.store.GetAsk(ctx, askID)
	if err != nil {
		return transient(fmt.Errorf("failed to load ask %s: %w", askID, err))
	}
	if ask == nil {
		return nil
	}

	currency, err := i.findOrCreateCurrency(ctx, payload.Currency)
	if err != nil {
		return err
	}

	ask.Price = payload.Price
	ask.CurrencyID = currency.ID
	if err := i.store.SaveAsk(ctx, ask); err != nil {
		return transient(fmt.Errorf("failed to save ask %s: %w", askID, err))
	}
	return nil
}

// handleAskCanceled deletes the active listing outright, freeing the key
// for a future listing of the same token
func (i *indexer) handleAskCanceled(ctx context.Context, event *domain.ContractEvent) error {
	payload := event.AskCanceled

	askID := AskID(payload.TokenContract, payload.TokenID)
	if err := i.store.DeleteAsk(ctx, askID); err != nil {
		return transient(fmt.Errorf("failed to delete ask %s: %w", askID, err))
	}
	return nil
}

// handleAskFilled settles the listing: stamp collector and fill position,
// archive the row under a key extended with the filling transaction hash,
// and release the active key
func (i *indexer) handleAskFilled(ctx context.Context, event *domain.ContractEvent) error {
	payload := event.AskFilled

	askID := AskID(payload.TokenContract, payload.TokenID)
	ask, err := i.store.GetAsk(ctx, askID)
	if err != nil {
		return transient(fmt.Errorf("failed to load ask %s: %w", askID, err))
	}
	if ask == nil {
		return nil
	}

	collector, err := i.findOrCreateUser(ctx, payload.Buyer)
	if err != nil {
		return err
	}

	timestamp := event.BlockTimestamp
	blockNumber := event.BlockNumber

	archived := *ask
	archived.ID = AskArchiveID(askID, event.TxHash)
	archived.Status = domain.AskStatusFilled
	archived.CollectorID = &collector.ID
	archived.FilledAtTimestamp = &timestamp
	archived.FilledAtBlockNumber = &blockNumber

	if err := i.store.SaveAsk(ctx, &archived); err != nil {
		return transient(fmt.Errorf("failed to save archived ask %s: %w", archived.ID, err))
	}
	if err := i.store.DeleteAsk(ctx, askID); err != nil {
		return transient(fmt.Errorf("failed to delete ask %s: %w", askID, err))
	}
	return nil
}
