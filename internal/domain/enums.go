package domain

import "fmt"

// Implementation identifies the project contract variant. The factory event
// carries it as a raw integer discriminator.
type Implementation string

const (
	// ImplementationStandard mints plain editions
	ImplementationStandard Implementation = "Standard"
	// ImplementationSeeded assigns a seed value to every minted edition
	ImplementationSeeded Implementation = "Seeded"
)

// implementations is indexed by the factory event's discriminator
var implementations = []Implementation{
	ImplementationStandard,
	ImplementationSeeded,
}

// ImplementationFromIndex resolves the factory discriminator to an
// implementation variant. An out-of-range index indicates a schema mismatch
// between the contract and this mapping layer and must not be defaulted.
func ImplementationFromIndex(index uint8) (Implementation, error) {
	if int(index) >= len(implementations) {
		return "", fmt.Errorf("implementation index %d out of range (max %d)", index, len(implementations)-1)
	}
	return implementations[index], nil
}

// URLKind identifies one content slot of a project version
type URLKind string

const (
	URLKindImage      URLKind = "Image"
	URLKindAnimation  URLKind = "Animation"
	URLKindPatchNotes URLKind = "PatchNotes"
)

// urlKinds is indexed by the VersionURLUpdated event's slot index
var urlKinds = []URLKind{
	URLKindImage,
	URLKindAnimation,
	URLKindPatchNotes,
}

// URLKinds returns all content slots in event-index order
func URLKinds() []URLKind {
	return urlKinds
}

// URLKindFromIndex resolves an event slot index to a content slot.
// Out-of-range indices are rejected, never defaulted.
func URLKindFromIndex(index uint8) (URLKind, error) {
	if int(index) >= len(urlKinds) {
		return "", fmt.Errorf("url kind index %d out of range (max %d)", index, len(urlKinds)-1)
	}
	return urlKinds[index], nil
}

// AuctionStatus is the auction lifecycle state
type AuctionStatus string

const (
	AuctionStatusPending  AuctionStatus = "Pending"
	AuctionStatusActive   AuctionStatus = "Active"
	AuctionStatusCanceled AuctionStatus = "Canceled"
)

// AskStatus is the marketplace listing state
type AskStatus string

const (
	AskStatusActive AskStatus = "Active"
	AskStatusFilled AskStatus = "Filled"
)

// UserType distinguishes plain accounts from detected split-payment wallets
type UserType string

const (
	UserTypeUser        UserType = "User"
	UserTypeSplitWallet UserType = "SplitWallet"
)

// PurchaseType tags how a purchase settled
type PurchaseType string

// PurchaseTypeFinal is the terminal purchase tag for auction sales
const PurchaseTypeFinal PurchaseType = "Final"
