package indexer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/logger"
	"github.com/olta-art/editions-indexer/internal/store/schema"
)

// handleAuctionCreated constructs the Auction row in the Pending state
func (i *indexer) handleAuctionCreated(ctx context.Context, event *domain.ContractEvent) error {
	payload := event.AuctionCreated

	if _, ok := i.registry.Lookup(payload.Project); !ok {
		return i.skip(ctx, event, "auction_for_untracked_project", zap.String("project", payload.Project))
	}

	creator, err := i.findOrCreateUser(ctx, payload.Creator)
	if err != nil {
		return err
	}
	curator, err := i.findOrCreateUser(ctx, payload.Curator)
	if err != nil {
		return err
	}
	currency, err := i.findOrCreateCurrency(ctx, payload.Currency)
	if err != nil {
		return err
	}

	auctionID := AuctionID(payload.AuctionID)
	auction, err := i.store.GetAuction(ctx, auctionID)
	if err != nil {
		return transient(fmt.Errorf("failed to load auction %s: %w", auctionID, err))
	}
	if auction != nil {
		return nil
	}

	auction = &schema.Auction{
		ID:                   auctionID,
		ProjectID:            payload.Project,
		CreatorID:            creator.ID,
		CuratorID:            curator.ID,
		Status:               domain.AuctionStatusPending,
		Duration:             payload.Duration,
		StartTimestamp:       payload.StartTimestamp,
		EndTimestamp:         payload.StartTimestamp + payload.Duration,
		StartPrice:           payload.StartPrice,
		EndPrice:             payload.EndPrice,
		NumberOfPriceDrops:   payload.NumberOfPriceDrops,
		CuratorRoyaltyBPS:    payload.CuratorRoyaltyBPS,
		CurrencyID:           currency.ID,
		TxHash:               event.TxHash,
		CreatedAtTimestamp:   event.BlockTimestamp,
		CreatedAtBlockNumber: event.BlockNumber,
	}
	if err := i.store.SaveAuction(ctx, auction); err != nil {
		return transient(fmt.Errorf("failed to save auction %s: %w", auctionID, err))
	}

	logger.InfoCtx(ctx, "Auction created", zap.String("auction", auctionID), zap.String("project", payload.Project))
	return nil
}

// handleAuctionApprovalUpdated moves the auction out of Pending: approved
// auctions go Active, revoked ones Canceled
func (i *indexer) handleAuctionApprovalUpdated(ctx context.Context, event *domain.ContractEvent) error {
	payload := event.AuctionApprovalUpdated

	auctionID := AuctionID(payload.AuctionID)
	auction, err := i.store.GetAuction(ctx, auctionID)
	if err != nil {
		return transient(fmt.Errorf("failed to load auction %s: %w", auctionID, err))
	}
	if auction == nil {
		return i.skip(ctx, event, "approval_for_unknown_auction", zap.String("auction", auctionID))
	}

	auction.Approved = payload.Approved
	if payload.Approved {
		auction.Status = domain.AuctionStatusActive
		timestamp := event.BlockTimestamp
		blockNumber := event.BlockNumber
		auction.ApprovedAtTimestamp = &timestamp
		auction.ApprovedAtBlockNumber = &blockNumber
	} else {
		auction.Status = domain.AuctionStatusCanceled
	}

	if err := i.store.SaveAuction(ctx, auction); err != nil {
		return transient(fmt.Errorf("failed to save auction %s: %w", auctionID, err))
	}
	return nil
}

// handleEditionPurchased records the sale. One function serves both the
// plain and the seeded purchase events, the payloads differ only in the
// seed column which the mint path owns anyway. The Edition link is filled
// by whichever of this handler and the mint handler runs second within the
// transaction.
func (i *indexer) handleEditionPurchased(ctx context.Context, event *domain.ContractEvent) error {
	payload := event.EditionPurchased

	auctionID := AuctionID(payload.AuctionID)
	auction, err := i.store.GetAuction(ctx, auctionID)
	if err != nil {
		return transient(fmt.Errorf("failed to load auction %s: %w", auctionID, err))
	}
	if auction == nil {
		return i.skip(ctx, event, "purchase_for_unknown_auction", zap.String("auction", auctionID))
	}

	collector, err := i.findOrCreateUser(ctx, payload.Buyer)
	if err != nil {
		return err
	}

	purchase, err := i.store.GetPurchase(ctx, event.TxHash)
	if err != nil {
		return transient(fmt.Errorf("failed to load purchase %s: %w", event.TxHash, err))
	}
	if purchase != nil {
		return nil
	}

	purchase = &schema.Purchase{
		ID:                   event.TxHash,
		AuctionID:            auctionID,
		Amount:               payload.Price,
		CollectorID:          collector.ID,
		CurrencyID:           auction.CurrencyID,
		Type:                 domain.PurchaseTypeFinal,
		CreatedAtTimestamp:   event.BlockTimestamp,
		CreatedAtBlockNumber: event.BlockNumber,
	}

	// The mint of the same transaction may already be indexed
	editionID := EditionID(payload.Project, payload.TokenID)
	edition, err := i.store.GetEdition(ctx, editionID)
	if err != nil {
		return transient(fmt.Errorf("failed to load edition %s: %w", editionID, err))
	}
	if edition != nil {
		purchase.EditionID = &edition.ID
	}

	if err := i.store.SavePurchase(ctx, purchase); err != nil {
		return transient(fmt.Errorf("failed to save purchase %s: %w", purchase.ID, err))
	}

	logger.InfoCtx(ctx, "Edition purchased",
		zap.String("auction", auctionID),
		zap.String("collector", collector.ID),
		zap.String("amount", payload.Price),
	)
	return nil
}
