package indexer

import (
	"fmt"
	"strconv"

	"github.com/olta-art/editions-indexer/internal/domain"
)

// Composite entity ids are built by joining component ids with "-".
// Addresses are lowercase hex, token ids and log indices are decimal, so no
// component ever contains the separator and the keys stay injective.

// EditionID returns the edition key {project}-{tokenId}
func EditionID(project, tokenID string) string {
	return project + "-" + tokenID
}

// VersionID returns the version key {project}-{major.minor.patch}
func VersionID(project string, label [3]uint32) string {
	return project + "-" + FormatLabel(label)
}

// UrlHashPairID returns the content slot key {versionId}-{slotKind}
func UrlHashPairID(versionID string, kind domain.URLKind) string {
	return versionID + "-" + string(kind)
}

// UrlUpdateID returns the URL audit key {txHash}-{logIndex}
func UrlUpdateID(txHash string, logIndex uint64) string {
	return fmt.Sprintf("%s-%d", txHash, logIndex)
}

// TransferID returns the transfer audit key {editionId}-{txHash}
func TransferID(editionID, txHash string) string {
	return editionID + "-" + txHash
}

// MinterApprovalID returns the minter approval key {minter}-{project}
func MinterApprovalID(minter, project string) string {
	return minter + "-" + project
}

// AuctionID renders the auction contract's sequence id as the entity key
func AuctionID(auctionID uint64) string {
	return strconv.FormatUint(auctionID, 10)
}

// AskID returns the active listing key {tokenContract}-{tokenId}
func AskID(tokenContract, tokenID string) string {
	return tokenContract + "-" + tokenID
}

// AskArchiveID returns the archived listing key, the filling transaction
// hash appended to the active key so the active slot becomes reusable
func AskArchiveID(askID, txHash string) string {
	return askID + "-" + txHash
}

// FormatLabel renders a version label triple as "major.minor.patch". The
// version-added and URL-updated handlers must agree on this rendering or
// URL updates would orphan.
func FormatLabel(label [3]uint32) string {
	return fmt.Sprintf("%d.%d.%d", label[0], label[1], label[2])
}
