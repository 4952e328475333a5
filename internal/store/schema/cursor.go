package schema

import "time"

// BlockCursor represents the block_cursors table - the last block the
// emitter fully published, keyed by chain identifier
type BlockCursor struct {
	Chain       string    `gorm:"column:chain;primaryKey;type:text"`
	BlockNumber uint64    `gorm:"column:block_number;not null;default:0"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the BlockCursor model
func (BlockCursor) TableName() string {
	return "block_cursors"
}
