package schema

import "github.com/olta-art/editions-indexer/internal/domain"

// Auction represents the auctions table - a descending-price auction over a
// project. Keyed by the auction contract's sequence id (decimal string).
type Auction struct {
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ProjectID references the auctioned Project
	ProjectID string `gorm:"column:project_id;not null;type:text;index"`
	CreatorID string `gorm:"column:creator_id;not null;type:text"`
	CuratorID string `gorm:"column:curator_id;not null;type:text"`

	Approved bool                 `gorm:"column:approved;not null;default:false"`
	Status   domain.AuctionStatus `gorm:"column:status;not null;type:text"`

	Duration       uint64 `gorm:"column:duration;not null;default:0"`
	StartTimestamp uint64 `gorm:"column:start_timestamp;not null;default:0"`
	// EndTimestamp is derived: StartTimestamp + Duration
	EndTimestamp uint64 `gorm:"column:end_timestamp;not null;default:0"`
	// StartPrice and EndPrice are wei amounts (decimal strings)
	StartPrice         string `gorm:"column:start_price;not null;type:text;default:'0'"`
	EndPrice           string `gorm:"column:end_price;not null;type:text;default:'0'"`
	NumberOfPriceDrops uint64 `gorm:"column:number_of_price_drops;not null;default:0"`
	CuratorRoyaltyBPS  uint64 `gorm:"column:curator_royalty_bps;not null;default:0"`
	// CurrencyID references the auction Currency
	CurrencyID string `gorm:"column:currency_id;not null;type:text"`

	TxHash               string `gorm:"column:tx_hash;not null;type:text;default:''"`
	CreatedAtTimestamp   uint64 `gorm:"column:created_at_timestamp;not null;default:0"`
	CreatedAtBlockNumber uint64 `gorm:"column:created_at_block_number;not null;default:0"`

	ApprovedAtTimestamp   *uint64 `gorm:"column:approved_at_timestamp"`
	ApprovedAtBlockNumber *uint64 `gorm:"column:approved_at_block_number"`
}

// TableName specifies the table name for the Auction model
func (Auction) TableName() string {
	return "auctions"
}

// Purchase represents the purchases table - keyed by the purchase
// transaction hash. EditionID is filled in lazily by the mint handler when
// the mint for the same transaction is observed, which may happen before or
// after the purchase event.
type Purchase struct {
	ID string `gorm:"column:id;primaryKey;type:text"`
	// AuctionID references the owning Auction
	AuctionID string `gorm:"column:auction_id;not null;type:text;index"`
	// Amount is the wei amount paid (decimal string)
	Amount      string              `gorm:"column:amount;not null;type:text;default:'0'"`
	CollectorID string              `gorm:"column:collector_id;not null;type:text"`
	CurrencyID  string              `gorm:"column:currency_id;not null;type:text"`
	Type        domain.PurchaseType `gorm:"column:type;not null;type:text"`
	// EditionID is nil until the corresponding mint is processed
	EditionID *string `gorm:"column:edition_id;type:text"`

	CreatedAtTimestamp   uint64 `gorm:"column:created_at_timestamp;not null;default:0"`
	CreatedAtBlockNumber uint64 `gorm:"column:created_at_block_number;not null;default:0"`
}

// TableName specifies the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}
