package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/olta-art/editions-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the entity tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.User{},
		&schema.Project{},
		&schema.Edition{},
		&schema.Version{},
		&schema.UrlHashPair{},
		&schema.UrlUpdate{},
		&schema.Transfer{},
		&schema.Auction{},
		&schema.Purchase{},
		&schema.Currency{},
		&schema.Ask{},
		&schema.ProjectCreator{},
		&schema.ProjectMinterApproval{},
		&schema.BlockCursor{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// loadByID fetches a single row by string primary key, mapping
// gorm.ErrRecordNotFound to (nil, nil)
func loadByID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	var model T
	err := db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load record %q: %w", id, err)
	}
	return &model, nil
}

// upsert persists a full replacement of the record
func upsert[T any](ctx context.Context, db *gorm.DB, model *T) error {
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// GetUser retrieves a user by address
func (s *pgStore) GetUser(ctx context.Context, id string) (*schema.User, error) {
	return loadByID[schema.User](ctx, s.db, id)
}

// SaveUser persists a user
func (s *pgStore) SaveUser(ctx context.Context, user *schema.User) error {
	return upsert(ctx, s.db, user)
}

// GetProject retrieves a project by contract address
func (s *pgStore) GetProject(ctx context.Context, id string) (*schema.Project, error) {
	return loadByID[schema.Project](ctx, s.db, id)
}

// SaveProject persists a project
func (s *pgStore) SaveProject(ctx context.Context, project *schema.Project) error {
	return upsert(ctx, s.db, project)
}

// ListProjects returns every tracked project
func (s *pgStore) ListProjects(ctx context.Context) ([]schema.Project, error) {
	var projects []schema.Project
	if err := s.db.WithContext(ctx).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetEdition retrieves an edition by composite id
func (s *pgStore) GetEdition(ctx context.Context, id string) (*schema.Edition, error) {
	return loadByID[schema.Edition](ctx, s.db, id)
}

// SaveEdition persists an edition
func (s *pgStore) SaveEdition(ctx context.Context, edition *schema.Edition) error {
	return upsert(ctx, s.db, edition)
}

// GetVersion retrieves a version by composite id
func (s *pgStore) GetVersion(ctx context.Context, id string) (*schema.Version, error) {
	return loadByID[schema.Version](ctx, s.db, id)
}

// SaveVersion persists a version
func (s *pgStore) SaveVersion(ctx context.Context, version *schema.Version) error {
	return upsert(ctx, s.db, version)
}

// GetUrlHashPair retrieves a url/hash pair by composite id
func (s *pgStore) GetUrlHashPair(ctx context.Context, id string) (*schema.UrlHashPair, error) {
	return loadByID[schema.UrlHashPair](ctx, s.db, id)
}

// SaveUrlHashPair persists a url/hash pair
func (s *pgStore) SaveUrlHashPair(ctx context.Context, pair *schema.UrlHashPair) error {
	return upsert(ctx, s.db, pair)
}

// GetUrlUpdate retrieves a url update audit record
func (s *pgStore) GetUrlUpdate(ctx context.Context, id string) (*schema.UrlUpdate, error) {
	return loadByID[schema.UrlUpdate](ctx, s.db, id)
}

// SaveUrlUpdate persists a url update audit record
func (s *pgStore) SaveUrlUpdate(ctx context.Context, update *schema.UrlUpdate) error {
	return upsert(ctx, s.db, update)
}

// GetTransfer retrieves a transfer audit record
func (s *pgStore) GetTransfer(ctx context.Context, id string) (*schema.Transfer, error) {
	return loadByID[schema.Transfer](ctx, s.db, id)
}

// SaveTransfer persists a transfer audit record
func (s *pgStore) SaveTransfer(ctx context.Context, transfer *schema.Transfer) error {
	return upsert(ctx, s.db, transfer)
}

// GetAuction retrieves an auction by sequence id
func (s *pgStore) GetAuction(ctx context.Context, id string) (*schema.Auction, error) {
	return loadByID[schema.Auction](ctx, s.db, id)
}

// SaveAuction persists an auction
func (s *pgStore) SaveAuction(ctx context.Context, auction *schema.Auction) error {
	return upsert(ctx, s.db, auction)
}

// GetPurchase retrieves a purchase by transaction hash
func (s *pgStore) GetPurchase(ctx context.Context, id string) (*schema.Purchase, error) {
	return loadByID[schema.Purchase](ctx, s.db, id)
}

// SavePurchase persists a purchase
func (s *pgStore) SavePurchase(ctx context.Context, purchase *schema.Purchase) error {
	return upsert(ctx, s.db, purchase)
}

// GetCurrency retrieves a currency by contract address
func (s *pgStore) GetCurrency(ctx context.Context, id string) (*schema.Currency, error) {
	return loadByID[schema.Currency](ctx, s.db, id)
}

// SaveCurrency persists a currency
func (s *pgStore) SaveCurrency(ctx context.Context, currency *schema.Currency) error {
	return upsert(ctx, s.db, currency)
}

// GetAsk retrieves an ask by id
func (s *pgStore) GetAsk(ctx context.Context, id string) (*schema.Ask, error) {
	return loadByID[schema.Ask](ctx, s.db, id)
}

// SaveAsk persists an ask
func (s *pgStore) SaveAsk(ctx context.Context, ask *schema.Ask) error {
	return upsert(ctx, s.db, ask)
}

// DeleteAsk removes an ask row; deleting an absent row is a no-op
func (s *pgStore) DeleteAsk(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Ask{}).Error; err != nil {
		return fmt.Errorf("failed to delete ask %q: %w", id, err)
	}
	return nil
}

// GetProjectCreator retrieves the factory approval registry row
func (s *pgStore) GetProjectCreator(ctx context.Context, id string) (*schema.ProjectCreator, error) {
	return loadByID[schema.ProjectCreator](ctx, s.db, id)
}

// SaveProjectCreator persists the factory approval registry row
func (s *pgStore) SaveProjectCreator(ctx context.Context, creator *schema.ProjectCreator) error {
	return upsert(ctx, s.db, creator)
}

// GetProjectMinterApproval retrieves a minter approval by composite id
func (s *pgStore) GetProjectMinterApproval(ctx context.Context, id string) (*schema.ProjectMinterApproval, error) {
	return loadByID[schema.ProjectMinterApproval](ctx, s.db, id)
}

// SaveProjectMinterApproval persists a minter approval
func (s *pgStore) SaveProjectMinterApproval(ctx context.Context, approval *schema.ProjectMinterApproval) error {
	return upsert(ctx, s.db, approval)
}

// GetBlockCursor retrieves the last published block number for a chain
func (s *pgStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	var cursor schema.BlockCursor
	err := s.db.WithContext(ctx).Where("chain = ?", chain).First(&cursor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}
	return cursor.BlockNumber, nil
}

// SetBlockCursor stores the last published block number for a chain
func (s *pgStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	cursor := schema.BlockCursor{
		Chain:       chain,
		BlockNumber: blockNumber,
		UpdatedAt:   time.Now(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&cursor).Error
	if err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}
	return nil
}
