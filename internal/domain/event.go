package domain

import "fmt"

// EventType identifies the contract event a ContractEvent carries
type EventType string

const (
	EventCreatedProject          EventType = "created_project"
	EventCreatorApprovalUpdated  EventType = "creator_approval_updated"
	EventTransfer                EventType = "transfer"
	EventApproval                EventType = "approval"
	EventApprovedMinter          EventType = "approved_minter"
	EventVersionAdded            EventType = "version_added"
	EventVersionURLUpdated       EventType = "version_url_updated"
	EventRoyaltyRecipientChanged EventType = "royalty_recipient_changed"
	EventAuctionCreated          EventType = "auction_created"
	EventAuctionApprovalUpdated  EventType = "auction_approval_updated"
	EventEditionPurchased        EventType = "edition_purchased"
	EventSeededEditionPurchased  EventType = "seeded_edition_purchased"
	EventAskCreated              EventType = "ask_created"
	EventAskPriceUpdated         EventType = "ask_price_updated"
	EventAskCanceled             EventType = "ask_canceled"
	EventAskFilled               EventType = "ask_filled"
	EventProfileUpdated          EventType = "profile_updated"
)

// ContractEvent is a normalized contract event. This is the wire format
// published to NATS and the input of the mapping core. Exactly one payload
// pointer is set, matching Type.
//
// All addresses are lowercase hex strings, token ids and wei amounts are
// decimal strings (uint256 does not fit native integers).
type ContractEvent struct {
	Type     EventType `json:"type"`
	Contract string    `json:"contract"` // emitting contract address

	// Envelope, used pervasively for entity ids and audit stamps
	TxHash         string `json:"tx_hash"`
	TxIndex        uint64 `json:"tx_index"`
	LogIndex       uint64 `json:"log_index"`
	BlockNumber    uint64 `json:"block_number"`
	BlockTimestamp uint64 `json:"block_timestamp"` // unix seconds

	CreatedProject          *CreatedProjectPayload          `json:"created_project,omitempty"`
	CreatorApprovalUpdated  *CreatorApprovalUpdatedPayload  `json:"creator_approval_updated,omitempty"`
	Transfer                *TransferPayload                `json:"transfer,omitempty"`
	Approval                *ApprovalPayload                `json:"approval,omitempty"`
	ApprovedMinter          *ApprovedMinterPayload          `json:"approved_minter,omitempty"`
	VersionAdded            *VersionAddedPayload            `json:"version_added,omitempty"`
	VersionURLUpdated       *VersionURLUpdatedPayload       `json:"version_url_updated,omitempty"`
	RoyaltyRecipientChanged *RoyaltyRecipientChangedPayload `json:"royalty_recipient_changed,omitempty"`
	AuctionCreated          *AuctionCreatedPayload          `json:"auction_created,omitempty"`
	AuctionApprovalUpdated  *AuctionApprovalUpdatedPayload  `json:"auction_approval_updated,omitempty"`
	EditionPurchased        *EditionPurchasedPayload        `json:"edition_purchased,omitempty"`
	AskCreated              *AskCreatedPayload              `json:"ask_created,omitempty"`
	AskPriceUpdated         *AskPriceUpdatedPayload         `json:"ask_price_updated,omitempty"`
	AskCanceled             *AskCanceledPayload             `json:"ask_canceled,omitempty"`
	AskFilled               *AskFilledPayload               `json:"ask_filled,omitempty"`
	ProfileUpdated          *ProfileUpdatedPayload          `json:"profile_updated,omitempty"`
}

// CreatedProjectPayload is emitted by the factory when a new project
// contract is deployed
type CreatedProjectPayload struct {
	ProjectAddress string `json:"project_address"`
	Creator        string `json:"creator"`
	EditionSize    uint64 `json:"edition_size"`
	ProjectNumber  uint64 `json:"project_number"` // factory-assigned sequence id
	Implementation uint8  `json:"implementation"` // raw discriminator, see ImplementationFromIndex
}

// CreatorApprovalUpdatedPayload toggles who may create projects through the
// factory. The zero address acts as a wildcard opening creation to anyone.
type CreatorApprovalUpdatedPayload struct {
	Creator  string `json:"creator"`
	Approved bool   `json:"approved"`
}

// TransferPayload covers mints (from == zero), burns (to == zero) and
// ordinary ownership changes
type TransferPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	TokenID string `json:"token_id"`
}

// ApprovalPayload sets or clears (zero address) a token operator
type ApprovalPayload struct {
	Owner    string `json:"owner"`
	Approved string `json:"approved"`
	TokenID  string `json:"token_id"`
}

// ApprovedMinterPayload toggles a third-party minter (e.g. the auction
// house) for a project
type ApprovedMinterPayload struct {
	Minter   string `json:"minter"`
	Approved bool   `json:"approved"`
}

// VersionAddedPayload announces a new labeled content version
type VersionAddedPayload struct {
	Label [3]uint32 `json:"label"`
}

// VersionURLUpdatedPayload mutates one content slot URL of a version
type VersionURLUpdatedPayload struct {
	Label [3]uint32 `json:"label"`
	Index uint8     `json:"index"` // see URLKindFromIndex
	URL   string    `json:"url"`
}

// RoyaltyRecipientChangedPayload redirects royalty payouts
type RoyaltyRecipientChangedPayload struct {
	NewRecipient string `json:"new_recipient"`
}

// AuctionCreatedPayload opens a descending-price auction over a project
type AuctionCreatedPayload struct {
	AuctionID          uint64 `json:"auction_id"`
	Project            string `json:"project"`
	Creator            string `json:"creator"`
	Curator            string `json:"curator"`
	StartTimestamp     uint64 `json:"start_timestamp"`
	Duration           uint64 `json:"duration"`
	StartPrice         string `json:"start_price"`
	EndPrice           string `json:"end_price"`
	NumberOfPriceDrops uint64 `json:"number_of_price_drops"`
	CuratorRoyaltyBPS  uint64 `json:"curator_royalty_bps"`
	Currency           string `json:"currency"`
}

// AuctionApprovalUpdatedPayload moves an auction between Pending, Active and
// Canceled
type AuctionApprovalUpdatedPayload struct {
	AuctionID uint64 `json:"auction_id"`
	Approved  bool   `json:"approved"`
}

// EditionPurchasedPayload is shared by the unseeded and seeded purchase
// variants; Seed is only set for the seeded one.
type EditionPurchasedPayload struct {
	AuctionID uint64  `json:"auction_id"`
	Project   string  `json:"project"`
	Buyer     string  `json:"buyer"`
	Price     string  `json:"price"`
	TokenID   string  `json:"token_id"`
	Seed      *string `json:"seed,omitempty"`
}

// AskCreatedPayload lists a token for sale on the external marketplace
type AskCreatedPayload struct {
	TokenContract string `json:"token_contract"`
	TokenID       string `json:"token_id"`
	Price         string `json:"price"`
	Currency      string `json:"currency"`
}

// AskPriceUpdatedPayload changes the price/currency of an active listing
type AskPriceUpdatedPayload struct {
	TokenContract string `json:"token_contract"`
	TokenID       string `json:"token_id"`
	Price         string `json:"price"`
	Currency      string `json:"currency"`
}

// AskCanceledPayload withdraws an active listing
type AskCanceledPayload struct {
	TokenContract string `json:"token_contract"`
	TokenID       string `json:"token_id"`
}

// AskFilledPayload settles an active listing
type AskFilledPayload struct {
	TokenContract string `json:"token_contract"`
	TokenID       string `json:"token_id"`
	Buyer         string `json:"buyer"`
	Price         string `json:"price"`
	Currency      string `json:"currency"`
}

// ProfileUpdatedPayload carries the profile registry update; empty fields
// mean "unchanged"
type ProfileUpdatedPayload struct {
	User         string `json:"user"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURI string `json:"thumbnail_uri"`
	LinkURI      string `json:"link_uri"`
}

// Valid reports whether the event carries the payload its type requires
func (e *ContractEvent) Valid() bool {
	if e.TxHash == "" || e.Contract == "" {
		return false
	}

	switch e.Type {
	case EventCreatedProject:
		return e.CreatedProject != nil
	case EventCreatorApprovalUpdated:
		return e.CreatorApprovalUpdated != nil
	case EventTransfer:
		return e.Transfer != nil
	case EventApproval:
		return e.Approval != nil
	case EventApprovedMinter:
		return e.ApprovedMinter != nil
	case EventVersionAdded:
		return e.VersionAdded != nil
	case EventVersionURLUpdated:
		return e.VersionURLUpdated != nil
	case EventRoyaltyRecipientChanged:
		return e.RoyaltyRecipientChanged != nil
	case EventAuctionCreated:
		return e.AuctionCreated != nil
	case EventAuctionApprovalUpdated:
		return e.AuctionApprovalUpdated != nil
	case EventEditionPurchased, EventSeededEditionPurchased:
		return e.EditionPurchased != nil
	case EventAskCreated:
		return e.AskCreated != nil
	case EventAskPriceUpdated:
		return e.AskPriceUpdated != nil
	case EventAskCanceled:
		return e.AskCanceled != nil
	case EventAskFilled:
		return e.AskFilled != nil
	case EventProfileUpdated:
		return e.ProfileUpdated != nil
	default:
		return false
	}
}

// After reports whether the event's log position is strictly after the
// given (block, logIndex) watermark. Used by replay guards.
func (e *ContractEvent) After(blockNumber, logIndex uint64) bool {
	if e.BlockNumber != blockNumber {
		return e.BlockNumber > blockNumber
	}
	return e.LogIndex > logIndex
}

func (e *ContractEvent) String() string {
	return fmt.Sprintf("%s@%s[%d:%d]", e.Type, e.TxHash, e.BlockNumber, e.LogIndex)
}
