package indexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/indexer"
)

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "0.0.0", indexer.FormatLabel([3]uint32{0, 0, 0}))
	assert.Equal(t, "1.2.3", indexer.FormatLabel([3]uint32{1, 2, 3}))
	assert.Equal(t, "10.0.42", indexer.FormatLabel([3]uint32{10, 0, 42}))
}

func TestEntityIDs(t *testing.T) {
	assert.Equal(t, "0xabc-7", indexer.EditionID("0xabc", "7"))
	assert.Equal(t, "0xabc-1.2.3", indexer.VersionID("0xabc", [3]uint32{1, 2, 3}))
	assert.Equal(t, "0xabc-1.2.3-Image", indexer.UrlHashPairID("0xabc-1.2.3", domain.URLKindImage))
	assert.Equal(t, "0xtx-4", indexer.UrlUpdateID("0xtx", 4))
	assert.Equal(t, "0xabc-7-0xtx", indexer.TransferID("0xabc-7", "0xtx"))
	assert.Equal(t, "0xminter-0xproject", indexer.MinterApprovalID("0xminter", "0xproject"))
	assert.Equal(t, "12", indexer.AuctionID(12))
	assert.Equal(t, "0xabc-7", indexer.AskID("0xabc", "7"))
	assert.Equal(t, "0xabc-7-0xtx", indexer.AskArchiveID("0xabc-7", "0xtx"))
}
