package schema

// ProjectCreator represents the project_creators table - the factory-level
// approval registry. A single row per factory address tracks whether project
// creation is open to anyone (the wildcard zero-address approval);
// per-address approvals live on the User rows.
type ProjectCreator struct {
	// ID is the factory contract address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// OpenToPublic is set when the zero address is approved as a creator
	OpenToPublic bool `gorm:"column:open_to_public;not null;default:false"`
}

// TableName specifies the table name for the ProjectCreator model
func (ProjectCreator) TableName() string {
	return "project_creators"
}

// ProjectMinterApproval represents the project_minter_approvals table -
// whether a third-party minter (e.g. the auction house) may mint on behalf
// of a project. Keyed by {minter}-{project}.
type ProjectMinterApproval struct {
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ProjectID references the Project the approval is scoped to
	ProjectID string `gorm:"column:project_id;not null;type:text;index"`
	// UserID references the minter User
	UserID   string `gorm:"column:user_id;not null;type:text"`
	Approved bool   `gorm:"column:approved;not null;default:false"`
}

// TableName specifies the table name for the ProjectMinterApproval model
func (ProjectMinterApproval) TableName() string {
	return "project_minter_approvals"
}
