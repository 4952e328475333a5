package store

import (
	"context"
	"sync"

	"github.com/olta-art/editions-indexer/internal/store/schema"
)

// memoryStore is a map-backed Store used by handler tests and local runs
// without Postgres. Semantics match the PG store: absent rows load as
// (nil, nil), saves replace the full record.
type memoryStore struct {
	mu sync.RWMutex

	users           map[string]schema.User
	projects        map[string]schema.Project
	editions        map[string]schema.Edition
	versions        map[string]schema.Version
	urlHashPairs    map[string]schema.UrlHashPair
	urlUpdates      map[string]schema.UrlUpdate
	transfers       map[string]schema.Transfer
	auctions        map[string]schema.Auction
	purchases       map[string]schema.Purchase
	currencies      map[string]schema.Currency
	asks            map[string]schema.Ask
	projectCreators map[string]schema.ProjectCreator
	minterApprovals map[string]schema.ProjectMinterApproval
	blockCursors    map[string]uint64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() Store {
	return &memoryStore{
		users:           make(map[string]schema.User),
		projects:        make(map[string]schema.Project),
		editions:        make(map[string]schema.Edition),
		versions:        make(map[string]schema.Version),
		urlHashPairs:    make(map[string]schema.UrlHashPair),
		urlUpdates:      make(map[string]schema.UrlUpdate),
		transfers:       make(map[string]schema.Transfer),
		auctions:        make(map[string]schema.Auction),
		purchases:       make(map[string]schema.Purchase),
		currencies:      make(map[string]schema.Currency),
		asks:            make(map[string]schema.Ask),
		projectCreators: make(map[string]schema.ProjectCreator),
		minterApprovals: make(map[string]schema.ProjectMinterApproval),
		blockCursors:    make(map[string]uint64),
	}
}

func load[T any](m *memoryStore, table map[string]T, id string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	model, ok := table[id]
	if !ok {
		return nil, nil
	}
	return &model, nil
}

func save[T any](m *memoryStore, table map[string]T, id string, model *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	table[id] = *model
	return nil
}

func (m *memoryStore) GetUser(_ context.Context, id string) (*schema.User, error) {
	return load(m, m.users, id)
}

func (m *memoryStore) SaveUser(_ context.Context, user *schema.User) error {
	return save(m, m.users, user.ID, user)
}

func (m *memoryStore) GetProject(_ context.Context, id string) (*schema.Project, error) {
	return load(m, m.projects, id)
}

func (m *memoryStore) SaveProject(_ context.Context, project *schema.Project) error {
	return save(m, m.projects, project.ID, project)
}

func (m *memoryStore) ListProjects(_ context.Context) ([]schema.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	projects := make([]schema.Project, 0, len(m.projects))
	for _, p := range m.projects {
		projects = append(projects, p)
	}
	return projects, nil
}

func (m *memoryStore) GetEdition(_ context.Context, id string) (*schema.Edition, error) {
	return load(m, m.editions, id)
}

func (m *memoryStore) SaveEdition(_ context.Context, edition *schema.Edition) error {
	return save(m, m.editions, edition.ID, edition)
}

func (m *memoryStore) GetVersion(_ context.Context, id string) (*schema.Version, error) {
	return load(m, m.versions, id)
}

func (m *memoryStore) SaveVersion(_ context.Context, version *schema.Version) error {
	return save(m, m.versions, version.ID, version)
}

func (m *memoryStore) GetUrlHashPair(_ context.Context, id string) (*schema.UrlHashPair, error) {
	return load(m, m.urlHashPairs, id)
}

func (m *memoryStore) SaveUrlHashPair(_ context.Context, pair *schema.UrlHashPair) error {
	return save(m, m.urlHashPairs, pair.ID, pair)
}

func (m *memoryStore) GetUrlUpdate(_ context.Context, id string) (*schema.UrlUpdate, error) {
	return load(m, m.urlUpdates, id)
}

func (m *memoryStore) SaveUrlUpdate(_ context.Context, update *schema.UrlUpdate) error {
	return save(m, m.urlUpdates, update.ID, update)
}

func (m *memoryStore) GetTransfer(_ context.Context, id string) (*schema.Transfer, error) {
	return load(m, m.transfers, id)
}

func (m *memoryStore) SaveTransfer(_ context.Context, transfer *schema.Transfer) error {
	return save(m, m.transfers, transfer.ID, transfer)
}

func (m *memoryStore) GetAuction(_ context.Context, id string) (*schema.Auction, error) {
	return load(m, m.auctions, id)
}

func (m *memoryStore) SaveAuction(_ context.Context, auction *schema.Auction) error {
	return save(m, m.auctions, auction.ID, auction)
}

func (m *memoryStore) GetPurchase(_ context.Context, id string) (*schema.Purchase, error) {
	return load(m, m.purchases, id)
}

func (m *memoryStore) SavePurchase(_ context.Context, purchase *schema.Purchase) error {
	return save(m, m.purchases, purchase.ID, purchase)
}

func (m *memoryStore) GetCurrency(_ context.Context, id string) (*schema.Currency, error) {
	return load(m, m.currencies, id)
}

func (m *memoryStore) SaveCurrency(_ context.Context, currency *schema.Currency) error {
	return save(m, m.currencies, currency.ID, currency)
}

func (m *memoryStore) GetAsk(_ context.Context, id string) (*schema.Ask, error) {
	return load(m, m.asks, id)
}

func (m *memoryStore) SaveAsk(_ context.Context, ask *schema.Ask) error {
	return save(m, m.asks, ask.ID, ask)
}

func (m *memoryStore) DeleteAsk(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.asks, id)
	return nil
}

func (m *memoryStore) GetProjectCreator(_ context.Context, id string) (*schema.ProjectCreator, error) {
	return load(m, m.projectCreators, id)
}

func (m *memoryStore) SaveProjectCreator(_ context.Context, creator *schema.ProjectCreator) error {
	return save(m, m.projectCreators, creator.ID, creator)
}

func (m *memoryStore) GetProjectMinterApproval(_ context.Context, id string) (*schema.ProjectMinterApproval, error) {
	return load(m, m.minterApprovals, id)
}

func (m *memoryStore) SaveProjectMinterApproval(_ context.Context, approval *schema.ProjectMinterApproval) error {
	return save(m, m.minterApprovals, approval.ID, approval)
}

func (m *memoryStore) GetBlockCursor(_ context.Context, chain string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.blockCursors[chain], nil
}

func (m *memoryStore) SetBlockCursor(_ context.Context, chain string, blockNumber uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blockCursors[chain] = blockNumber
	return nil
}
