package store

import (
	"context"

	"github.com/olta-art/editions-indexer/internal/store/schema"
)

// Store defines the persistence interface for the entity graph. Lookups by
// id return (nil, nil) when the row is absent; Save persists a full
// replacement of the record (insert or update).
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	GetUser(ctx context.Context, id string) (*schema.User, error)
	SaveUser(ctx context.Context, user *schema.User) error

	GetProject(ctx context.Context, id string) (*schema.Project, error)
	SaveProject(ctx context.Context, project *schema.Project) error
	// ListProjects returns every tracked project. Used to re-seed the
	// per-instance listener registry on restart.
	ListProjects(ctx context.Context) ([]schema.Project, error)

	GetEdition(ctx context.Context, id string) (*schema.Edition, error)
	SaveEdition(ctx context.Context, edition *schema.Edition) error

	GetVersion(ctx context.Context, id string) (*schema.Version, error)
	SaveVersion(ctx context.Context, version *schema.Version) error

	GetUrlHashPair(ctx context.Context, id string) (*schema.UrlHashPair, error)
	SaveUrlHashPair(ctx context.Context, pair *schema.UrlHashPair) error

	GetUrlUpdate(ctx context.Context, id string) (*schema.UrlUpdate, error)
	SaveUrlUpdate(ctx context.Context, update *schema.UrlUpdate) error

	GetTransfer(ctx context.Context, id string) (*schema.Transfer, error)
	SaveTransfer(ctx context.Context, transfer *schema.Transfer) error

	GetAuction(ctx context.Context, id string) (*schema.Auction, error)
	SaveAuction(ctx context.Context, auction *schema.Auction) error

	GetPurchase(ctx context.Context, id string) (*schema.Purchase, error)
	SavePurchase(ctx context.Context, purchase *schema.Purchase) error

	GetCurrency(ctx context.Context, id string) (*schema.Currency, error)
	SaveCurrency(ctx context.Context, currency *schema.Currency) error

	GetAsk(ctx context.Context, id string) (*schema.Ask, error)
	SaveAsk(ctx context.Context, ask *schema.Ask) error
	// DeleteAsk removes an ask row outright (listing canceled, or active key
	// released after archival). Deleting an absent row is not an error.
	DeleteAsk(ctx context.Context, id string) error

	GetProjectCreator(ctx context.Context, id string) (*schema.ProjectCreator, error)
	SaveProjectCreator(ctx context.Context, creator *schema.ProjectCreator) error

	GetProjectMinterApproval(ctx context.Context, id string) (*schema.ProjectMinterApproval, error)
	SaveProjectMinterApproval(ctx context.Context, approval *schema.ProjectMinterApproval) error

	// GetBlockCursor retrieves the last published block number for a chain
	// (0 when no cursor has been stored yet)
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last published block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error
}
