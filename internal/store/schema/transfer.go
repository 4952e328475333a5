package schema

// Transfer represents the transfers table - an immutable audit record of one
// ownership change (mint, ordinary transfer or burn). Keyed by
// {editionId}-{txHash}.
type Transfer struct {
	ID     string `gorm:"column:id;primaryKey;type:text"`
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// EditionID references the moved Edition
	EditionID string `gorm:"column:edition_id;not null;type:text;index"`
	FromID    string `gorm:"column:from_id;not null;type:text"`
	ToID      string `gorm:"column:to_id;not null;type:text"`

	CreatedAtTimestamp   uint64 `gorm:"column:created_at_timestamp;not null;default:0"`
	CreatedAtBlockNumber uint64 `gorm:"column:created_at_block_number;not null;default:0"`
}

// TableName specifies the table name for the Transfer model
func (Transfer) TableName() string {
	return "transfers"
}
