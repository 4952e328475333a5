package schema

import "github.com/olta-art/editions-indexer/internal/domain"

// User represents the users table. A row exists for every address any event
// has ever referenced (creator, curator, owner, approved operator, profile
// updater). Rows are never deleted.
type User struct {
	// ID is the lowercase hex address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Type distinguishes plain accounts from detected split-payment wallets
	Type domain.UserType `gorm:"column:type;not null;type:text;default:'User'"`
	// CuratorApproved is the factory-level per-address creation approval flag
	CuratorApproved bool `gorm:"column:curator_approved;not null;default:false"`

	// Profile fields, nil until the profile registry reports them
	Name        *string `gorm:"column:name;type:text"`
	Description *string `gorm:"column:description;type:text"`
	Thumbnail   *string `gorm:"column:thumbnail;type:text"`
	Link        *string `gorm:"column:link;type:text"`

	ProfileUpdatedAtTimestamp   *uint64 `gorm:"column:profile_updated_at_timestamp"`
	ProfileUpdatedAtBlockNumber *uint64 `gorm:"column:profile_updated_at_block_number"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
