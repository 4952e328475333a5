package schema

// Edition represents the editions table - one minted unit within a project.
// Keyed by {project}-{tokenId}.
type Edition struct {
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Number is the token id within the project (decimal string, uint256)
	Number string `gorm:"column:number;not null;type:text"`
	// ProjectID references the owning Project
	ProjectID string `gorm:"column:project_id;not null;type:text;index"`
	// OwnerID is the current owner; the zero address once burned
	OwnerID string `gorm:"column:owner_id;not null;type:text"`
	// PrevOwnerID is the previous holder (zero address right after mint)
	PrevOwnerID string `gorm:"column:prev_owner_id;not null;type:text"`
	// ApprovedID is the approved operator, nil when no approval is set
	ApprovedID *string `gorm:"column:approved_id;type:text"`
	// Seed is only set for editions of Seeded projects
	Seed *string `gorm:"column:seed;type:text"`
	// URI is the off-chain content URI read from the contract at mint time
	URI string `gorm:"column:uri;not null;type:text;default:''"`

	CreatedAtTxHash      string `gorm:"column:created_at_tx_hash;not null;type:text;default:''"`
	CreatedAtTimestamp   uint64 `gorm:"column:created_at_timestamp;not null;default:0"`
	CreatedAtBlockNumber uint64 `gorm:"column:created_at_block_number;not null;default:0"`

	BurnedAtTimestamp   *uint64 `gorm:"column:burned_at_timestamp"`
	BurnedAtBlockNumber *uint64 `gorm:"column:burned_at_block_number"`
}

// TableName specifies the table name for the Edition model
func (Edition) TableName() string {
	return "editions"
}
