package schema

// Currency represents the currencies table - keyed by ERC-20 contract
// address, or the zero address for the native currency. Metadata is fetched
// from the chain once at creation and cached permanently.
type Currency struct {
	ID       string `gorm:"column:id;primaryKey;type:text"`
	Name     string `gorm:"column:name;not null;type:text;default:''"`
	Symbol   string `gorm:"column:symbol;not null;type:text;default:''"`
	Decimals uint8  `gorm:"column:decimals;not null;default:0"`
}

// TableName specifies the table name for the Currency model
func (Currency) TableName() string {
	return "currencies"
}
