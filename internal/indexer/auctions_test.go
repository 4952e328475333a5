package indexer_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/indexer"
	"github.com/olta-art/editions-indexer/internal/providers/ethereum"
)

func newAuctionCreatedEvent(auctionID uint64, currency string) *domain.ContractEvent {
	event := newEvent(domain.EventAuctionCreated, houseAddress)
	event.AuctionCreated = &domain.AuctionCreatedPayload{
		AuctionID:          auctionID,
		Project:            projectAddress,
		Creator:            creatorAddress,
		Curator:            curatorAddress,
		StartTimestamp:     1700001000,
		Duration:           3600,
		StartPrice:         "2000000000000000000",
		EndPrice:           "500000000000000000",
		NumberOfPriceDrops: 4,
		CuratorRoyaltyBPS:  500,
		Currency:           currency,
	}
	return event
}

func TestHandleAuctionCreated_CreatesPendingAuction(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	event := newAuctionCreatedEvent(1, domain.ZeroAddress)

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)

	auction, err := m.store.GetAuction(ctx, indexer.AuctionID(1))
	assert.NoError(t, err)
	assert.NotNil(t, auction)
	assert.Equal(t, projectAddress, auction.ProjectID)
	assert.Equal(t, creatorAddress, auction.CreatorID)
	assert.Equal(t, curatorAddress, auction.CuratorID)
	assert.Equal(t, domain.AuctionStatusPending, auction.Status)
	assert.False(t, auction.Approved)
	assert.Equal(t, uint64(1700001000), auction.StartTimestamp)
	assert.Equal(t, uint64(1700001000+3600), auction.EndTimestamp)
	assert.Equal(t, "2000000000000000000", auction.StartPrice)
	assert.Equal(t, "500000000000000000", auction.EndPrice)
	assert.Equal(t, uint64(4), auction.NumberOfPriceDrops)
	assert.Equal(t, uint64(500), auction.CuratorRoyaltyBPS)
	assert.Equal(t, event.TxHash, auction.TxHash)

	// The zero-address currency is the native one and is never probed
	currency, err := m.store.GetCurrency(ctx, domain.ZeroAddress)
	assert.NoError(t, err)
	assert.Equal(t, "Ethereum", currency.Name)
	assert.Equal(t, "ETH", currency.Symbol)
	assert.Equal(t, uint8(18), currency.Decimals)

	curator, err := m.store.GetUser(ctx, curatorAddress)
	assert.NoError(t, err)
	assert.NotNil(t, curator)
}

func TestHandleAuctionCreated_ERC20Currency(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	m.reader.EXPECT().
		CurrencyMetadata(gomock.Any(), tokenAddress).
		Return(&ethereum.CurrencyMetadata{
			Name:     "Dai Stablecoin",
			Symbol:   "DAI",
			Decimals: 18,
		}, nil)

	event := newAuctionCreatedEvent(1, tokenAddress)

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)

	currency, err := m.store.GetCurrency(ctx, tokenAddress)
	assert.NoError(t, err)
	assert.Equal(t, "DAI", currency.Symbol)

	auction, err := m.store.GetAuction(ctx, indexer.AuctionID(1))
	assert.NoError(t, err)
	assert.Equal(t, tokenAddress, auction.CurrencyID)
}

func TestHandleAuctionCreated_CurrencyReadFails_Transient(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	m.reader.EXPECT().
		CurrencyMetadata(gomock.Any(), tokenAddress).
		Return(nil, assert.AnError)

	err := m.indexer.Process(ctx, newAuctionCreatedEvent(1, tokenAddress))
	assert.Error(t, err)
	assert.ErrorIs(t, err, indexer.ErrTransient)

	auction, err := m.store.GetAuction(ctx, indexer.AuctionID(1))
	assert.NoError(t, err)
	assert.Nil(t, auction)
}

func TestHandleAuctionCreated_UntrackedProject_Skips(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()

	err := m.indexer.Process(ctx, newAuctionCreatedEvent(1, domain.ZeroAddress))
	assert.NoError(t, err)

	auction, err := m.store.GetAuction(ctx, indexer.AuctionID(1))
	assert.NoError(t, err)
	assert.Nil(t, auction)
}

func TestHandleAuctionCreated_ReplayKeepsExistingRow(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	event := newAuctionCreatedEvent(1, domain.ZeroAddress)
	assert.NoError(t, m.indexer.Process(ctx, event))

	// Move the auction forward, then replay the creation
	auction, err := m.store.GetAuction(ctx, indexer.AuctionID(1))
	assert.NoError(t, err)
	auction.Status = domain.AuctionStatusActive
	assert.NoError(t, m.store.SaveAuction(ctx, auction))

	assert.NoError(t, m.indexer.Process(ctx, event))

	auction, err = m.store.GetAuction(ctx, indexer.AuctionID(1))
	assert.NoError(t, err)
	assert.Equal(t, domain.AuctionStatusActive, auction.Status)
}

func TestHandleAuctionApprovalUpdated_Approves(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	assert.NoError(t, m.indexer.Process(ctx, newAuctionCreatedEvent(1, domain.ZeroAddress)))

	event := newEvent(domain.EventAuctionApprovalUpdated, houseAddress)
	event.TxHash = "0xtx2"
	event.BlockNumber = 105
	event.BlockTimestamp = 1700000300
	event.AuctionApprovalUpdated = &domain.AuctionApprovalUpdatedPayload{
		AuctionID: 1,
		Approved:  true,
	}

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)

	auction, err := m.store.GetAuction(ctx, indexer.AuctionID(1))
	assert.NoError(t, err)
	assert.True(t, auction.Approved)
	assert.Equal(t, domain.AuctionStatusActive, auction.Status)
	assert.Equal(t, uint64(1700000300), *auction.ApprovedAtTimestamp)
	assert.Equal(t, uint64(105), *auction.ApprovedAtBlockNumber)
}

func TestHandleAuctionApprovalUpdated_Revokes(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	assert.NoError(t, m.indexer.Process(ctx, newAuctionCreatedEvent(1, domain.ZeroAddress)))

	event := newEvent(domain.EventAuctionApprovalUpdated, houseAddress)
	event.AuctionApprovalUpdated = &domain.AuctionApprovalUpdatedPayload{
		AuctionID: 1,
		Approved:  false,
	}

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)

	auction, err := m.store.GetAuction(ctx, indexer.AuctionID(1))
	assert.NoError(t, err)
	assert.False(t, auction.Approved)
	assert.Equal(t, domain.AuctionStatusCanceled, auction.Status)
	assert.Nil(t, auction.ApprovedAtTimestamp)
}

func TestHandleAuctionApprovalUpdated_UnknownAuction_Skips(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()

	event := newEvent(domain.EventAuctionApprovalUpdated, houseAddress)
	event.AuctionApprovalUpdated = &domain.AuctionApprovalUpdatedPayload{
		AuctionID: 9,
		Approved:  true,
	}

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)
}

func TestHandleEditionPurchased_CreatesPurchase(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	assert.NoError(t, m.indexer.Process(ctx, newAuctionCreatedEvent(1, domain.ZeroAddress)))

	event := newEvent(domain.EventEditionPurchased, houseAddress)
	event.TxHash = "0xtx2"
	event.EditionPurchased = &domain.EditionPurchasedPayload{
		AuctionID: 1,
		Project:   projectAddress,
		Buyer:     buyerAddress,
		Price:     "1500000000000000000",
		TokenID:   "1",
	}

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)

	purchase, err := m.store.GetPurchase(ctx, "0xtx2")
	assert.NoError(t, err)
	assert.NotNil(t, purchase)
	assert.Equal(t, indexer.AuctionID(1), purchase.AuctionID)
	assert.Equal(t, "1500000000000000000", purchase.Amount)
	assert.Equal(t, buyerAddress, purchase.CollectorID)
	assert.Equal(t, domain.ZeroAddress, purchase.CurrencyID)
	assert.Equal(t, domain.PurchaseTypeFinal, purchase.Type)
	// The mint of the same transaction has not been indexed yet
	assert.Nil(t, purchase.EditionID)
}

func TestHandleEditionPurchased_LinksExistingEdition(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	assert.NoError(t, m.indexer.Process(ctx, newAuctionCreatedEvent(1, domain.ZeroAddress)))

	// The mint arrived first in the same transaction
	m.reader.EXPECT().
		TokenURI(gomock.Any(), projectAddress, "1").
		Return("ipfs://content/1", nil)
	mint := newTransferEvent(domain.ZeroAddress, buyerAddress, "1")
	mint.TxHash = "0xtx2"
	mint.LogIndex = 2
	assert.NoError(t, m.indexer.Process(ctx, mint))

	event := newEvent(domain.EventSeededEditionPurchased, houseAddress)
	event.TxHash = "0xtx2"
	event.LogIndex = 3
	event.EditionPurchased = &domain.EditionPurchasedPayload{
		AuctionID: 1,
		Project:   projectAddress,
		Buyer:     buyerAddress,
		Price:     "1500000000000000000",
		TokenID:   "1",
	}

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)

	purchase, err := m.store.GetPurchase(ctx, "0xtx2")
	assert.NoError(t, err)
	assert.NotNil(t, purchase.EditionID)
	assert.Equal(t, indexer.EditionID(projectAddress, "1"), *purchase.EditionID)
}

func TestHandleEditionPurchased_UnknownAuction_Skips(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()

	event := newEvent(domain.EventEditionPurchased, houseAddress)
	event.EditionPurchased = &domain.EditionPurchasedPayload{
		AuctionID: 9,
		Project:   projectAddress,
		Buyer:     buyerAddress,
		Price:     "1",
		TokenID:   "1",
	}

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)

	purchase, err := m.store.GetPurchase(ctx, event.TxHash)
	assert.NoError(t, err)
	assert.Nil(t, purchase)
}

func TestHandleEditionPurchased_ReplayKeepsExistingRow(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	assert.NoError(t, m.indexer.Process(ctx, newAuctionCreatedEvent(1, domain.ZeroAddress)))

	event := newEvent(domain.EventEditionPurchased, houseAddress)
	event.TxHash = "0xtx2"
	event.EditionPurchased = &domain.EditionPurchasedPayload{
		AuctionID: 1,
		Project:   projectAddress,
		Buyer:     buyerAddress,
		Price:     "1500000000000000000",
		TokenID:   "1",
	}

	assert.NoError(t, m.indexer.Process(ctx, event))
	assert.NoError(t, m.indexer.Process(ctx, event))

	purchase, err := m.store.GetPurchase(ctx, "0xtx2")
	assert.NoError(t, err)
	assert.NotNil(t, purchase)
}
