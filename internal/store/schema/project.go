package schema

import "github.com/olta-art/editions-indexer/internal/domain"

// Project represents the projects table - one row per deployed edition
// contract. Created exactly once by the factory's created event, mutated by
// every mint/burn/version/royalty event on that address.
type Project struct {
	// ID is the deployed contract address (lowercase hex)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Implementation is the contract variant (Standard or Seeded)
	Implementation domain.Implementation `gorm:"column:implementation;not null;type:text"`
	// EditionSize is the mint cap (0 = open edition)
	EditionSize uint64 `gorm:"column:edition_size;not null;default:0"`
	// ProjectNumber is the sequence id the factory assigned at creation
	ProjectNumber uint64 `gorm:"column:project_number;not null;default:0"`
	// CreatorID references the User that created the project
	CreatorID *string `gorm:"column:creator_id;type:text"`

	// Descriptive fields, populated lazily on the first version-added event
	// because the factory event does not carry them
	Name        *string `gorm:"column:name;type:text"`
	Symbol      *string `gorm:"column:symbol;type:text"`
	Description *string `gorm:"column:description;type:text"`
	RoyaltyBPS  *uint64 `gorm:"column:royalty_bps"`
	// RoyaltyRecipientID may point to a detected split wallet User
	RoyaltyRecipientID *string `gorm:"column:royalty_recipient_id;type:text"`

	// Supply counters. Invariant: TotalSupply == TotalMinted - TotalBurned.
	TotalMinted int64 `gorm:"column:total_minted;not null;default:0"`
	TotalBurned int64 `gorm:"column:total_burned;not null;default:0"`
	TotalSupply int64 `gorm:"column:total_supply;not null;default:0"`

	// Log position of the last counter-affecting event. Mint/burn replays at
	// or before this position must not touch the counters again.
	CountersBlockNumber uint64 `gorm:"column:counters_block_number;not null;default:0"`
	CountersLogIndex    uint64 `gorm:"column:counters_log_index;not null;default:0"`

	// LastAddedVersionID is nil until the first version-added event; that
	// absence is the signal that the descriptive fields above are not yet
	// initialized
	LastAddedVersionID *string `gorm:"column:last_added_version_id;type:text"`

	CreatedAtTimestamp   uint64 `gorm:"column:created_at_timestamp;not null;default:0"`
	CreatedAtBlockNumber uint64 `gorm:"column:created_at_block_number;not null;default:0"`

	// Removal tombstone, stamped when every ever-minted edition is burned.
	// The row itself is retained.
	RemovedAtTimestamp   *uint64 `gorm:"column:removed_at_timestamp"`
	RemovedAtBlockNumber *uint64 `gorm:"column:removed_at_block_number"`
}

// TableName specifies the table name for the Project model
func (Project) TableName() string {
	return "projects"
}
