package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/store/schema"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

// =============================================================================
// Test Data Builders
// =============================================================================

func strPtr(s string) *string { return &s }

func u64Ptr(v uint64) *uint64 { return &v }

// buildTestUser creates a plain user row with no profile
func buildTestUser(address string) *schema.User {
	return &schema.User{
		ID:   address,
		Type: domain.UserTypeUser,
	}
}

// buildTestProject creates a project row as the factory event handler would
func buildTestProject(contract, creator string, projectNumber uint64) *schema.Project {
	return &schema.Project{
		ID:                   contract,
		Implementation:       domain.ImplementationStandard,
		EditionSize:          100,
		ProjectNumber:        projectNumber,
		CreatorID:            &creator,
		CreatedAtTimestamp:   1700000000,
		CreatedAtBlockNumber: 100,
	}
}

// buildTestEdition creates an edition row as the mint handler would
func buildTestEdition(projectID, tokenNum, owner string) *schema.Edition {
	return &schema.Edition{
		ID:                   projectID + "-" + tokenNum,
		Number:               tokenNum,
		ProjectID:            projectID,
		OwnerID:              owner,
		PrevOwnerID:          domain.ZeroAddress,
		URI:                  "ipfs://QmEdition" + tokenNum,
		CreatedAtTxHash:      "0xmint" + tokenNum,
		CreatedAtTimestamp:   1700000000,
		CreatedAtBlockNumber: 100,
	}
}

// buildTestAuction creates a pending auction row
func buildTestAuction(id, projectID, creator, curator, currency string) *schema.Auction {
	return &schema.Auction{
		ID:                   id,
		ProjectID:            projectID,
		CreatorID:            creator,
		CuratorID:            curator,
		Status:               domain.AuctionStatusPending,
		Duration:             86400,
		StartTimestamp:       1700000000,
		EndTimestamp:         1700086400,
		StartPrice:           "2000000000000000000",
		EndPrice:             "500000000000000000",
		NumberOfPriceDrops:   4,
		CuratorRoyaltyBPS:    500,
		CurrencyID:           currency,
		TxHash:               "0xauction" + id,
		CreatedAtTimestamp:   1700000000,
		CreatedAtBlockNumber: 100,
	}
}

// buildTestAsk creates an active marketplace listing
func buildTestAsk(id, editionID string) *schema.Ask {
	return &schema.Ask{
		ID:                   id,
		EditionID:            editionID,
		Price:                "1000000000000000000",
		CurrencyID:           domain.ZeroAddress,
		Status:               domain.AskStatusActive,
		CreatedAtTimestamp:   1700000000,
		CreatedAtBlockNumber: 100,
	}
}

// =============================================================================
// Test: Users
// =============================================================================

func testUsers(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get absent user returns nil without error", func(t *testing.T) {
		user, err := store.GetUser(ctx, "0x0000000000000000000000000000000000000abc")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("save and get round-trips all fields", func(t *testing.T) {
		user := buildTestUser("0x1111111111111111111111111111111111111111")
		user.CuratorApproved = true
		user.Name = strPtr("alice")
		user.Description = strPtr("generative artist")
		user.Thumbnail = strPtr("ipfs://QmThumb")
		user.Link = strPtr("https://alice.example")
		user.ProfileUpdatedAtTimestamp = u64Ptr(1700000000)
		user.ProfileUpdatedAtBlockNumber = u64Ptr(100)

		require.NoError(t, store.SaveUser(ctx, user))

		got, err := store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, domain.UserTypeUser, got.Type)
		assert.True(t, got.CuratorApproved)
		require.NotNil(t, got.Name)
		assert.Equal(t, "alice", *got.Name)
		require.NotNil(t, got.ProfileUpdatedAtBlockNumber)
		assert.Equal(t, uint64(100), *got.ProfileUpdatedAtBlockNumber)
	})

	t.Run("save replaces the existing row", func(t *testing.T) {
		user := buildTestUser("0x2222222222222222222222222222222222222222")
		require.NoError(t, store.SaveUser(ctx, user))

		user.Type = domain.UserTypeSplitWallet
		user.Name = strPtr("royalty split")
		require.NoError(t, store.SaveUser(ctx, user))

		got, err := store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.UserTypeSplitWallet, got.Type)
		require.NotNil(t, got.Name)
		assert.Equal(t, "royalty split", *got.Name)
	})
}

// =============================================================================
// Test: Projects
// =============================================================================

func testProjects(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get absent project returns nil without error", func(t *testing.T) {
		project, err := store.GetProject(ctx, "0x00000000000000000000000000000000000000aa")
		require.NoError(t, err)
		assert.Nil(t, project)
	})

	t.Run("save and get round-trips nullable metadata", func(t *testing.T) {
		project := buildTestProject(
			"0x3333333333333333333333333333333333333333",
			"0x1111111111111111111111111111111111111111",
			7,
		)
		project.Implementation = domain.ImplementationSeeded
		project.Name = strPtr("Blobs")
		project.Symbol = strPtr("BLOB")
		project.Description = strPtr("on-chain blobs")
		project.RoyaltyBPS = u64Ptr(1000)
		project.LastAddedVersionID = strPtr(project.ID + "-1.0.0")

		require.NoError(t, store.SaveProject(ctx, project))

		got, err := store.GetProject(ctx, project.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.ImplementationSeeded, got.Implementation)
		assert.Equal(t, uint64(100), got.EditionSize)
		assert.Equal(t, uint64(7), got.ProjectNumber)
		require.NotNil(t, got.CreatorID)
		assert.Equal(t, "0x1111111111111111111111111111111111111111", *got.CreatorID)
		require.NotNil(t, got.Name)
		assert.Equal(t, "Blobs", *got.Name)
		require.NotNil(t, got.RoyaltyBPS)
		assert.Equal(t, uint64(1000), *got.RoyaltyBPS)
		require.NotNil(t, got.LastAddedVersionID)
		assert.Nil(t, got.RemovedAtTimestamp)
	})

	t.Run("counter updates persist", func(t *testing.T) {
		project := buildTestProject(
			"0x4444444444444444444444444444444444444444",
			"0x1111111111111111111111111111111111111111",
			8,
		)
		require.NoError(t, store.SaveProject(ctx, project))

		project.TotalMinted = 3
		project.TotalBurned = 1
		project.TotalSupply = 2
		project.CountersBlockNumber = 120
		project.CountersLogIndex = 4
		require.NoError(t, store.SaveProject(ctx, project))

		got, err := store.GetProject(ctx, project.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(3), got.TotalMinted)
		assert.Equal(t, int64(1), got.TotalBurned)
		assert.Equal(t, int64(2), got.TotalSupply)
		assert.Equal(t, uint64(120), got.CountersBlockNumber)
		assert.Equal(t, uint64(4), got.CountersLogIndex)
	})

	t.Run("list returns every saved project", func(t *testing.T) {
		projects, err := store.ListProjects(ctx)
		require.NoError(t, err)
		baseline := len(projects)

		require.NoError(t, store.SaveProject(ctx, buildTestProject(
			"0x5555555555555555555555555555555555555555",
			"0x1111111111111111111111111111111111111111",
			9,
		)))
		require.NoError(t, store.SaveProject(ctx, buildTestProject(
			"0x6666666666666666666666666666666666666666",
			"0x1111111111111111111111111111111111111111",
			10,
		)))

		projects, err = store.ListProjects(ctx)
		require.NoError(t, err)
		assert.Len(t, projects, baseline+2)

		ids := make(map[string]bool, len(projects))
		for _, p := range projects {
			ids[p.ID] = true
		}
		assert.True(t, ids["0x5555555555555555555555555555555555555555"])
		assert.True(t, ids["0x6666666666666666666666666666666666666666"])
	})
}

// =============================================================================
// Test: Editions and Transfers
// =============================================================================

func testEditions(t *testing.T, store Store) {
	ctx := context.Background()
	projectID := "0x7777777777777777777777777777777777777777"
	owner := "0x1111111111111111111111111111111111111111"

	t.Run("get absent edition returns nil without error", func(t *testing.T) {
		edition, err := store.GetEdition(ctx, projectID+"-999")
		require.NoError(t, err)
		assert.Nil(t, edition)
	})

	t.Run("save and get round-trips seed and approval", func(t *testing.T) {
		edition := buildTestEdition(projectID, "1", owner)
		edition.Seed = strPtr("42")
		edition.ApprovedID = strPtr("0x2222222222222222222222222222222222222222")

		require.NoError(t, store.SaveEdition(ctx, edition))

		got, err := store.GetEdition(ctx, edition.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "1", got.Number)
		assert.Equal(t, projectID, got.ProjectID)
		assert.Equal(t, owner, got.OwnerID)
		assert.Equal(t, domain.ZeroAddress, got.PrevOwnerID)
		require.NotNil(t, got.Seed)
		assert.Equal(t, "42", *got.Seed)
		require.NotNil(t, got.ApprovedID)
		assert.Equal(t, "ipfs://QmEdition1", got.URI)
		assert.Nil(t, got.BurnedAtTimestamp)
	})

	t.Run("burn stamps persist", func(t *testing.T) {
		edition := buildTestEdition(projectID, "2", owner)
		require.NoError(t, store.SaveEdition(ctx, edition))

		edition.OwnerID = domain.ZeroAddress
		edition.PrevOwnerID = owner
		edition.BurnedAtTimestamp = u64Ptr(1700001000)
		edition.BurnedAtBlockNumber = u64Ptr(110)
		require.NoError(t, store.SaveEdition(ctx, edition))

		got, err := store.GetEdition(ctx, edition.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.ZeroAddress, got.OwnerID)
		assert.Equal(t, owner, got.PrevOwnerID)
		require.NotNil(t, got.BurnedAtBlockNumber)
		assert.Equal(t, uint64(110), *got.BurnedAtBlockNumber)
	})

	t.Run("transfer audit rows round-trip", func(t *testing.T) {
		transfer := &schema.Transfer{
			ID:                   projectID + "-1-0xtx1",
			TxHash:               "0xtx1",
			EditionID:            projectID + "-1",
			FromID:               domain.ZeroAddress,
			ToID:                 owner,
			CreatedAtTimestamp:   1700000000,
			CreatedAtBlockNumber: 100,
		}
		require.NoError(t, store.SaveTransfer(ctx, transfer))

		got, err := store.GetTransfer(ctx, transfer.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "0xtx1", got.TxHash)
		assert.Equal(t, domain.ZeroAddress, got.FromID)
		assert.Equal(t, owner, got.ToID)

		absent, err := store.GetTransfer(ctx, projectID+"-1-0xother")
		require.NoError(t, err)
		assert.Nil(t, absent)
	})
}

// =============================================================================
// Test: Versions, URL slots and URL update audit
// =============================================================================

func testVersions(t *testing.T, store Store) {
	ctx := context.Background()
	projectID := "0x8888888888888888888888888888888888888888"
	versionID := projectID + "-1.2.3"

	t.Run("version and url slots round-trip", func(t *testing.T) {
		version := &schema.Version{
			ID:                   versionID,
			Label:                "1.2.3",
			ProjectID:            projectID,
			CreatedAtTimestamp:   1700000000,
			CreatedAtBlockNumber: 100,
		}
		require.NoError(t, store.SaveVersion(ctx, version))

		for _, kind := range domain.URLKinds() {
			pair := &schema.UrlHashPair{
				ID:                   versionID + "-" + string(kind),
				VersionID:            versionID,
				Kind:                 kind,
				URL:                  "ipfs://Qm" + string(kind),
				Hash:                 "0xhash" + string(kind),
				CreatedAtTimestamp:   1700000000,
				CreatedAtBlockNumber: 100,
			}
			require.NoError(t, store.SaveUrlHashPair(ctx, pair))
		}

		got, err := store.GetVersion(ctx, versionID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "1.2.3", got.Label)
		assert.Equal(t, projectID, got.ProjectID)

		pair, err := store.GetUrlHashPair(ctx, versionID+"-"+string(domain.URLKindAnimation))
		require.NoError(t, err)
		require.NotNil(t, pair)
		assert.Equal(t, domain.URLKindAnimation, pair.Kind)
		assert.Equal(t, "ipfs://QmAnimation", pair.URL)
	})

	t.Run("absent version and slot return nil", func(t *testing.T) {
		version, err := store.GetVersion(ctx, projectID+"-9.9.9")
		require.NoError(t, err)
		assert.Nil(t, version)

		pair, err := store.GetUrlHashPair(ctx, projectID+"-9.9.9-Image")
		require.NoError(t, err)
		assert.Nil(t, pair)
	})

	t.Run("url update audit rows round-trip", func(t *testing.T) {
		update := &schema.UrlUpdate{
			ID:                   "0xtx9-3",
			TxHash:               "0xtx9",
			FromURL:              "ipfs://QmImage",
			ToURL:                "ipfs://QmImageV2",
			ProjectID:            projectID,
			VersionID:            versionID,
			UrlHashPairID:        versionID + "-Image",
			CreatedAtTimestamp:   1700002000,
			CreatedAtBlockNumber: 130,
		}
		require.NoError(t, store.SaveUrlUpdate(ctx, update))

		got, err := store.GetUrlUpdate(ctx, update.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "ipfs://QmImage", got.FromURL)
		assert.Equal(t, "ipfs://QmImageV2", got.ToURL)
		assert.Equal(t, versionID+"-Image", got.UrlHashPairID)
	})
}

// =============================================================================
// Test: Auctions, Purchases and Currencies
// =============================================================================

func testAuctions(t *testing.T, store Store) {
	ctx := context.Background()
	projectID := "0x9999999999999999999999999999999999999999"
	creator := "0x1111111111111111111111111111111111111111"
	curator := "0x2222222222222222222222222222222222222222"

	t.Run("currency round-trips", func(t *testing.T) {
		currency := &schema.Currency{
			ID:       "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			Name:     "Dai Stablecoin",
			Symbol:   "DAI",
			Decimals: 18,
		}
		require.NoError(t, store.SaveCurrency(ctx, currency))

		got, err := store.GetCurrency(ctx, currency.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "DAI", got.Symbol)
		assert.Equal(t, uint8(18), got.Decimals)

		absent, err := store.GetCurrency(ctx, domain.ZeroAddress)
		require.NoError(t, err)
		assert.Nil(t, absent)
	})

	t.Run("auction approval transition persists", func(t *testing.T) {
		auction := buildTestAuction("12", projectID, creator, curator, domain.ZeroAddress)
		require.NoError(t, store.SaveAuction(ctx, auction))

		got, err := store.GetAuction(ctx, "12")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.AuctionStatusPending, got.Status)
		assert.False(t, got.Approved)
		assert.Equal(t, uint64(1700086400), got.EndTimestamp)
		assert.Nil(t, got.ApprovedAtTimestamp)

		got.Approved = true
		got.Status = domain.AuctionStatusActive
		got.ApprovedAtTimestamp = u64Ptr(1700005000)
		got.ApprovedAtBlockNumber = u64Ptr(150)
		require.NoError(t, store.SaveAuction(ctx, got))

		updated, err := store.GetAuction(ctx, "12")
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.Approved)
		assert.Equal(t, domain.AuctionStatusActive, updated.Status)
		require.NotNil(t, updated.ApprovedAtBlockNumber)
		assert.Equal(t, uint64(150), *updated.ApprovedAtBlockNumber)
	})

	t.Run("purchase edition link fills in lazily", func(t *testing.T) {
		purchase := &schema.Purchase{
			ID:                   "0xbuy1",
			AuctionID:            "12",
			Amount:               "750000000000000000",
			CollectorID:          "0x3333333333333333333333333333333333333333",
			CurrencyID:           domain.ZeroAddress,
			Type:                 domain.PurchaseTypeFinal,
			CreatedAtTimestamp:   1700006000,
			CreatedAtBlockNumber: 160,
		}
		require.NoError(t, store.SavePurchase(ctx, purchase))

		got, err := store.GetPurchase(ctx, "0xbuy1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.EditionID)

		got.EditionID = strPtr(projectID + "-5")
		require.NoError(t, store.SavePurchase(ctx, got))

		linked, err := store.GetPurchase(ctx, "0xbuy1")
		require.NoError(t, err)
		require.NotNil(t, linked)
		require.NotNil(t, linked.EditionID)
		assert.Equal(t, projectID+"-5", *linked.EditionID)
	})

	t.Run("absent auction and purchase return nil", func(t *testing.T) {
		auction, err := store.GetAuction(ctx, "99999")
		require.NoError(t, err)
		assert.Nil(t, auction)

		purchase, err := store.GetPurchase(ctx, "0xnosuchtx")
		require.NoError(t, err)
		assert.Nil(t, purchase)
	})
}

// =============================================================================
// Test: Asks
// =============================================================================

func testAsks(t *testing.T, store Store) {
	ctx := context.Background()
	editionID := "0x7777777777777777777777777777777777777777-1"
	askID := "0x7777777777777777777777777777777777777777-1"

	t.Run("save, get and delete", func(t *testing.T) {
		ask := buildTestAsk(askID, editionID)
		require.NoError(t, store.SaveAsk(ctx, ask))

		got, err := store.GetAsk(ctx, askID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.AskStatusActive, got.Status)
		assert.Equal(t, "1000000000000000000", got.Price)
		assert.Nil(t, got.CollectorID)

		require.NoError(t, store.DeleteAsk(ctx, askID))

		gone, err := store.GetAsk(ctx, askID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("delete absent ask is a no-op", func(t *testing.T) {
		require.NoError(t, store.DeleteAsk(ctx, "0xnosuchtoken-1"))
	})

	t.Run("filled archive coexists with a relisting", func(t *testing.T) {
		ask := buildTestAsk(askID, editionID)
		require.NoError(t, store.SaveAsk(ctx, ask))

		archive := buildTestAsk(askID+"-0xfill1", editionID)
		archive.Status = domain.AskStatusFilled
		archive.CollectorID = strPtr("0x3333333333333333333333333333333333333333")
		archive.FilledAtTimestamp = u64Ptr(1700007000)
		archive.FilledAtBlockNumber = u64Ptr(170)
		require.NoError(t, store.SaveAsk(ctx, archive))
		require.NoError(t, store.DeleteAsk(ctx, askID))

		relisted := buildTestAsk(askID, editionID)
		relisted.Price = "3000000000000000000"
		require.NoError(t, store.SaveAsk(ctx, relisted))

		gotArchive, err := store.GetAsk(ctx, askID+"-0xfill1")
		require.NoError(t, err)
		require.NotNil(t, gotArchive)
		assert.Equal(t, domain.AskStatusFilled, gotArchive.Status)
		require.NotNil(t, gotArchive.FilledAtBlockNumber)
		assert.Equal(t, uint64(170), *gotArchive.FilledAtBlockNumber)

		gotActive, err := store.GetAsk(ctx, askID)
		require.NoError(t, err)
		require.NotNil(t, gotActive)
		assert.Equal(t, domain.AskStatusActive, gotActive.Status)
		assert.Equal(t, "3000000000000000000", gotActive.Price)
	})
}

// =============================================================================
// Test: Approval registries
// =============================================================================

func testApprovals(t *testing.T, store Store) {
	ctx := context.Background()
	factory := "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	projectID := "0x9999999999999999999999999999999999999999"
	minter := "0xcccccccccccccccccccccccccccccccccccccccc"

	t.Run("project creator registry toggles", func(t *testing.T) {
		absent, err := store.GetProjectCreator(ctx, factory)
		require.NoError(t, err)
		assert.Nil(t, absent)

		require.NoError(t, store.SaveProjectCreator(ctx, &schema.ProjectCreator{
			ID:           factory,
			OpenToPublic: true,
		}))

		got, err := store.GetProjectCreator(ctx, factory)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.OpenToPublic)

		got.OpenToPublic = false
		require.NoError(t, store.SaveProjectCreator(ctx, got))

		updated, err := store.GetProjectCreator(ctx, factory)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.False(t, updated.OpenToPublic)
	})

	t.Run("minter approval round-trips", func(t *testing.T) {
		approval := &schema.ProjectMinterApproval{
			ID:        minter + "-" + projectID,
			ProjectID: projectID,
			UserID:    minter,
			Approved:  true,
		}
		require.NoError(t, store.SaveProjectMinterApproval(ctx, approval))

		got, err := store.GetProjectMinterApproval(ctx, approval.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Approved)
		assert.Equal(t, projectID, got.ProjectID)
		assert.Equal(t, minter, got.UserID)

		absent, err := store.GetProjectMinterApproval(ctx, minter+"-0xother")
		require.NoError(t, err)
		assert.Nil(t, absent)
	})
}

// =============================================================================
// Test: Block cursor
// =============================================================================

func testBlockCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("absent cursor reads as zero", func(t *testing.T) {
		cursor, err := store.GetBlockCursor(ctx, "eip155:999")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cursor)
	})

	t.Run("set and advance", func(t *testing.T) {
		require.NoError(t, store.SetBlockCursor(ctx, "eip155:1", 1000))

		cursor, err := store.GetBlockCursor(ctx, "eip155:1")
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), cursor)

		require.NoError(t, store.SetBlockCursor(ctx, "eip155:1", 1500))

		cursor, err = store.GetBlockCursor(ctx, "eip155:1")
		require.NoError(t, err)
		assert.Equal(t, uint64(1500), cursor)
	})

	t.Run("cursors are isolated per chain", func(t *testing.T) {
		require.NoError(t, store.SetBlockCursor(ctx, "eip155:1", 2000))
		require.NoError(t, store.SetBlockCursor(ctx, "eip155:5", 300))

		mainnet, err := store.GetBlockCursor(ctx, "eip155:1")
		require.NoError(t, err)
		assert.Equal(t, uint64(2000), mainnet)

		goerli, err := store.GetBlockCursor(ctx, "eip155:5")
		require.NoError(t, err)
		assert.Equal(t, uint64(300), goerli)
	})
}

// =============================================================================
// Test Suite Runner
// =============================================================================

// RunStoreTests runs all store tests using the provided init and cleanup functions
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Users", testUsers},
		{"Projects", testProjects},
		{"Editions", testEditions},
		{"Versions", testVersions},
		{"Auctions", testAuctions},
		{"Asks", testAsks},
		{"Approvals", testApprovals},
		{"BlockCursor", testBlockCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
