package indexer_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/indexer"
	"github.com/olta-art/editions-indexer/internal/providers/ethereum"
)

func newVersionAddedEvent(label [3]uint32) *domain.ContractEvent {
	event := newEvent(domain.EventVersionAdded, projectAddress)
	event.VersionAdded = &domain.VersionAddedPayload{Label: label}
	return event
}

func fullURISet() *ethereum.URISet {
	return &ethereum.URISet{
		ImageURL:       "ipfs://image",
		ImageHash:      "0xaaaa",
		AnimationURL:   "ipfs://animation",
		AnimationHash:  "0xbbbb",
		PatchNotesURL:  "ipfs://notes",
		PatchNotesHash: "0xcccc",
	}
}

func TestHandleVersionAdded_CreatesVersionAndSlots(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	m.reader.EXPECT().
		ProjectURIs(gomock.Any(), projectAddress).
		Return(fullURISet(), nil)
	m.reader.EXPECT().
		ProjectMetadata(gomock.Any(), projectAddress).
		Return(&ethereum.ProjectMetadata{
			Name:        "Shapes",
			Symbol:      "SHP",
			Description: "generative shapes",
			RoyaltyBPS:  250,
		}, nil)

	event := newVersionAddedEvent([3]uint32{1, 0, 0})

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)

	versionID := indexer.VersionID(projectAddress, [3]uint32{1, 0, 0})
	version, err := m.store.GetVersion(ctx, versionID)
	assert.NoError(t, err)
	assert.NotNil(t, version)
	assert.Equal(t, "1.0.0", version.Label)
	assert.Equal(t, projectAddress, version.ProjectID)

	for _, kind := range domain.URLKinds() {
		pair, err := m.store.GetUrlHashPair(ctx, indexer.UrlHashPairID(versionID, kind))
		assert.NoError(t, err)
		assert.NotNil(t, pair, string(kind))
	}
	image, err := m.store.GetUrlHashPair(ctx, indexer.UrlHashPairID(versionID, domain.URLKindImage))
	assert.NoError(t, err)
	assert.Equal(t, "ipfs://image", image.URL)
	assert.Equal(t, "0xaaaa", image.Hash)

	// First version populates the descriptive fields and the version link
	project, err := m.store.GetProject(ctx, projectAddress)
	assert.NoError(t, err)
	assert.Equal(t, "Shapes", *project.Name)
	assert.Equal(t, "SHP", *project.Symbol)
	assert.Equal(t, "generative shapes", *project.Description)
	assert.Equal(t, uint64(250), *project.RoyaltyBPS)
	assert.Equal(t, versionID, *project.LastAddedVersionID)
}

func TestHandleVersionAdded_LegacyContractWithoutPatchNotes(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	uris := fullURISet()
	uris.PatchNotesURL = ""
	uris.PatchNotesHash = ""

	m.reader.EXPECT().ProjectURIs(gomock.Any(), projectAddress).Return(uris, nil)
	m.reader.EXPECT().ProjectMetadata(gomock.Any(), projectAddress).Return(&ethereum.ProjectMetadata{}, nil)

	err := m.indexer.Process(ctx, newVersionAddedEvent([3]uint32{1, 0, 0}))
	assert.NoError(t, err)

	versionID := indexer.VersionID(projectAddress, [3]uint32{1, 0, 0})
	pair, err := m.store.GetUrlHashPair(ctx, indexer.UrlHashPairID(versionID, domain.URLKindPatchNotes))
	assert.NoError(t, err)
	assert.Nil(t, pair)
}

func TestHandleVersionAdded_URIReadFails_VersionKeptWithoutSlots(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	m.reader.EXPECT().ProjectURIs(gomock.Any(), projectAddress).Return(nil, assert.AnError)
	m.reader.EXPECT().ProjectMetadata(gomock.Any(), projectAddress).Return(&ethereum.ProjectMetadata{}, nil)

	err := m.indexer.Process(ctx, newVersionAddedEvent([3]uint32{1, 0, 0}))
	assert.NoError(t, err)

	versionID := indexer.VersionID(projectAddress, [3]uint32{1, 0, 0})
	version, err := m.store.GetVersion(ctx, versionID)
	assert.NoError(t, err)
	assert.NotNil(t, version)

	pair, err := m.store.GetUrlHashPair(ctx, indexer.UrlHashPairID(versionID, domain.URLKindImage))
	assert.NoError(t, err)
	assert.Nil(t, pair)
}

func TestHandleVersionAdded_MetadataReadFails_Degrades(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	m.reader.EXPECT().ProjectURIs(gomock.Any(), projectAddress).Return(fullURISet(), nil)
	m.reader.EXPECT().ProjectMetadata(gomock.Any(), projectAddress).Return(nil, assert.AnError)

	err := m.indexer.Process(ctx, newVersionAddedEvent([3]uint32{1, 0, 0}))
	assert.NoError(t, err)

	project, err := m.store.GetProject(ctx, projectAddress)
	assert.NoError(t, err)
	assert.Nil(t, project.Name)
	assert.NotNil(t, project.LastAddedVersionID)
}

func TestHandleVersionAdded_SecondVersionSkipsMetadata(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	m.reader.EXPECT().ProjectURIs(gomock.Any(), projectAddress).Return(fullURISet(), nil).Times(2)
	// Metadata is read exactly once, on the first version
	m.reader.EXPECT().ProjectMetadata(gomock.Any(), projectAddress).Return(&ethereum.ProjectMetadata{Name: "Shapes"}, nil).Times(1)

	err := m.indexer.Process(ctx, newVersionAddedEvent([3]uint32{1, 0, 0}))
	assert.NoError(t, err)

	second := newVersionAddedEvent([3]uint32{1, 1, 0})
	second.TxHash = "0xtx2"
	second.BlockNumber = 110
	err = m.indexer.Process(ctx, second)
	assert.NoError(t, err)

	project, err := m.store.GetProject(ctx, projectAddress)
	assert.NoError(t, err)
	assert.Equal(t, indexer.VersionID(projectAddress, [3]uint32{1, 1, 0}), *project.LastAddedVersionID)
}

func TestHandleVersionAdded_UntrackedContract_Skips(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()

	event := newVersionAddedEvent([3]uint32{1, 0, 0})
	event.Contract = strangerAddress

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)
}

func TestHandleVersionURLUpdated_UpdatesSlotAndWritesAudit(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	m.reader.EXPECT().ProjectURIs(gomock.Any(), projectAddress).Return(fullURISet(), nil)
	m.reader.EXPECT().ProjectMetadata(gomock.Any(), projectAddress).Return(&ethereum.ProjectMetadata{}, nil)
	assert.NoError(t, m.indexer.Process(ctx, newVersionAddedEvent([3]uint32{1, 0, 0})))

	event := newEvent(domain.EventVersionURLUpdated, projectAddress)
	event.TxHash = "0xtx2"
	event.LogIndex = 3
	event.BlockNumber = 120
	event.VersionURLUpdated = &domain.VersionURLUpdatedPayload{
		Label: [3]uint32{1, 0, 0},
		Index: 1, // animation slot
		URL:   "ipfs://animation-v2",
	}

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)

	versionID := indexer.VersionID(projectAddress, [3]uint32{1, 0, 0})
	pair, err := m.store.GetUrlHashPair(ctx, indexer.UrlHashPairID(versionID, domain.URLKindAnimation))
	assert.NoError(t, err)
	assert.Equal(t, "ipfs://animation-v2", pair.URL)
	// The hash survives the URL update
	assert.Equal(t, "0xbbbb", pair.Hash)

	update, err := m.store.GetUrlUpdate(ctx, indexer.UrlUpdateID("0xtx2", 3))
	assert.NoError(t, err)
	assert.NotNil(t, update)
	assert.Equal(t, "ipfs://animation", update.FromURL)
	assert.Equal(t, "ipfs://animation-v2", update.ToURL)
	assert.Equal(t, projectAddress, update.ProjectID)
	assert.Equal(t, versionID, update.VersionID)
}

func TestHandleVersionURLUpdated_CreatesMissingSlot(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	// The version-added refresh failed to populate any slots
	m.reader.EXPECT().ProjectURIs(gomock.Any(), projectAddress).Return(nil, assert.AnError)
	m.reader.EXPECT().ProjectMetadata(gomock.Any(), projectAddress).Return(&ethereum.ProjectMetadata{}, nil)
	assert.NoError(t, m.indexer.Process(ctx, newVersionAddedEvent([3]uint32{1, 0, 0})))

	event := newEvent(domain.EventVersionURLUpdated, projectAddress)
	event.TxHash = "0xtx2"
	event.VersionURLUpdated = &domain.VersionURLUpdatedPayload{
		Label: [3]uint32{1, 0, 0},
		Index: 0,
		URL:   "ipfs://image-v2",
	}

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)

	versionID := indexer.VersionID(projectAddress, [3]uint32{1, 0, 0})
	pair, err := m.store.GetUrlHashPair(ctx, indexer.UrlHashPairID(versionID, domain.URLKindImage))
	assert.NoError(t, err)
	assert.NotNil(t, pair)
	assert.Equal(t, "ipfs://image-v2", pair.URL)
	assert.Equal(t, "", pair.Hash)
}

func TestHandleVersionURLUpdated_UnknownVersion_Skips(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	event := newEvent(domain.EventVersionURLUpdated, projectAddress)
	event.VersionURLUpdated = &domain.VersionURLUpdatedPayload{
		Label: [3]uint32{9, 9, 9},
		Index: 0,
		URL:   "ipfs://image-v2",
	}

	err := m.indexer.Process(ctx, event)
	assert.NoError(t, err)
}

func TestHandleVersionURLUpdated_UnknownSlotIndex_Fails(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)
	ctx := context.Background()
	seedProject(t, m, domain.ImplementationStandard)

	event := newEvent(domain.EventVersionURLUpdated, projectAddress)
	event.VersionURLUpdated = &domain.VersionURLUpdatedPayload{
		Label: [3]uint32{1, 0, 0},
		Index: 7,
		URL:   "ipfs://whatever",
	}

	err := m.indexer.Process(ctx, event)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, indexer.ErrTransient)

	update, err := m.store.GetUrlUpdate(ctx, indexer.UrlUpdateID("0xtx1", 1))
	assert.NoError(t, err)
	assert.Nil(t, update)
}
