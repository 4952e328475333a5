package schema

import "github.com/olta-art/editions-indexer/internal/domain"

// Version represents the versions table - a labeled snapshot of a project's
// off-chain content URLs. Keyed by {project}-{major.minor.patch}.
type Version struct {
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Label is the rendered semantic label, e.g. "1.2.3"
	Label string `gorm:"column:label;not null;type:text"`
	// ProjectID references the owning Project
	ProjectID string `gorm:"column:project_id;not null;type:text;index"`

	CreatedAtTimestamp   uint64 `gorm:"column:created_at_timestamp;not null;default:0"`
	CreatedAtBlockNumber uint64 `gorm:"column:created_at_block_number;not null;default:0"`
}

// TableName specifies the table name for the Version model
func (Version) TableName() string {
	return "versions"
}

// UrlHashPair represents the url_hash_pairs table - one content slot of a
// version. Keyed by {versionId}-{kind}. The URL is mutated in place by
// version-URL-updated events; the hash is only written at version creation,
// so the two can diverge until the next full version refresh. Accepted
// source behavior.
type UrlHashPair struct {
	ID string `gorm:"column:id;primaryKey;type:text"`
	// VersionID references the owning Version
	VersionID string `gorm:"column:version_id;not null;type:text;index"`
	// Kind is the content slot (Image, Animation, PatchNotes)
	Kind domain.URLKind `gorm:"column:kind;not null;type:text"`
	URL  string         `gorm:"column:url;not null;type:text;default:''"`
	Hash string         `gorm:"column:hash;not null;type:text;default:''"`

	CreatedAtTimestamp   uint64 `gorm:"column:created_at_timestamp;not null;default:0"`
	CreatedAtBlockNumber uint64 `gorm:"column:created_at_block_number;not null;default:0"`
}

// TableName specifies the table name for the UrlHashPair model
func (UrlHashPair) TableName() string {
	return "url_hash_pairs"
}

// UrlUpdate represents the url_updates table - an append-only audit record
// of a single URL mutation. Keyed by {txHash}-{logIndex}.
type UrlUpdate struct {
	ID     string `gorm:"column:id;primaryKey;type:text"`
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// FromURL is the slot's URL before the update
	FromURL string `gorm:"column:from_url;not null;type:text;default:''"`
	// ToURL is the slot's URL after the update
	ToURL         string `gorm:"column:to_url;not null;type:text;default:''"`
	ProjectID     string `gorm:"column:project_id;not null;type:text"`
	VersionID     string `gorm:"column:version_id;not null;type:text"`
	UrlHashPairID string `gorm:"column:url_hash_pair_id;not null;type:text"`

	CreatedAtTimestamp   uint64 `gorm:"column:created_at_timestamp;not null;default:0"`
	CreatedAtBlockNumber uint64 `gorm:"column:created_at_block_number;not null;default:0"`
}

// TableName specifies the table name for the UrlUpdate model
func (UrlUpdate) TableName() string {
	return "url_updates"
}
