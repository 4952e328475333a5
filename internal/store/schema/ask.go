package schema

import "github.com/olta-art/editions-indexer/internal/domain"

// Ask represents the asks table - a marketplace listing. While active the
// row is keyed by {tokenContract}-{tokenId}; on fill it is re-keyed with the
// filling transaction hash appended so the active key becomes free for a
// future listing of the same token. Canceled listings are deleted outright.
type Ask struct {
	ID string `gorm:"column:id;primaryKey;type:text"`
	// EditionID references the listed Edition
	EditionID string `gorm:"column:edition_id;not null;type:text;index"`
	// Price is the wei ask price (decimal string)
	Price      string           `gorm:"column:price;not null;type:text;default:'0'"`
	CurrencyID string           `gorm:"column:currency_id;not null;type:text"`
	Status     domain.AskStatus `gorm:"column:status;not null;type:text"`
	// CollectorID is set once the ask is filled
	CollectorID *string `gorm:"column:collector_id;type:text"`

	CreatedAtTimestamp   uint64 `gorm:"column:created_at_timestamp;not null;default:0"`
	CreatedAtBlockNumber uint64 `gorm:"column:created_at_block_number;not null;default:0"`

	FilledAtTimestamp   *uint64 `gorm:"column:filled_at_timestamp"`
	FilledAtBlockNumber *uint64 `gorm:"column:filled_at_block_number"`
}

// TableName specifies the table name for the Ask model
func (Ask) TableName() string {
	return "asks"
}
