package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/olta-art/editions-indexer/internal/domain"
)

// eventsABI declares every contract event this indexer understands, across
// all contract families. Topic signatures are unique so one parser can
// serve the combined log stream.
const eventsABI = `[
	{"type":"event","name":"CreatedProject","inputs":[
		{"name":"projectId","type":"uint256","indexed":true},
		{"name":"creator","type":"address","indexed":true},
		{"name":"editionSize","type":"uint256","indexed":false},
		{"name":"projectAddress","type":"address","indexed":false},
		{"name":"implementation","type":"uint256","indexed":false}]},
	{"type":"event","name":"CreatorApprovalUpdated","inputs":[
		{"name":"creator","type":"address","indexed":true},
		{"name":"approved","type":"bool","indexed":false}]},
	{"type":"event","name":"Transfer","inputs":[
		{"name":"from","type":"address","indexed":true},
		{"name":"to","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true}]},
	{"type":"event","name":"Approval","inputs":[
		{"name":"owner","type":"address","indexed":true},
		{"name":"approved","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true}]},
	{"type":"event","name":"ApprovedMinter","inputs":[
		{"name":"minter","type":"address","indexed":true},
		{"name":"approved","type":"bool","indexed":false}]},
	{"type":"event","name":"VersionAdded","inputs":[
		{"name":"label","type":"uint32[3]","indexed":false}]},
	{"type":"event","name":"VersionURLUpdated","inputs":[
		{"name":"label","type":"uint32[3]","indexed":false},
		{"name":"index","type":"uint8","indexed":false},
		{"name":"url","type":"string","indexed":false}]},
	{"type":"event","name":"RoyaltyFundsRecipientChanged","inputs":[
		{"name":"newRecipientAddress","type":"address","indexed":false}]},
	{"type":"event","name":"AuctionCreated","inputs":[
		{"name":"auctionId","type":"uint256","indexed":true},
		{"name":"project","type":"address","indexed":true},
		{"name":"creator","type":"address","indexed":true},
		{"name":"curator","type":"address","indexed":false},
		{"name":"startTimestamp","type":"uint256","indexed":false},
		{"name":"duration","type":"uint256","indexed":false},
		{"name":"startPrice","type":"uint256","indexed":false},
		{"name":"endPrice","type":"uint256","indexed":false},
		{"name":"numberOfPriceDrops","type":"uint256","indexed":false},
		{"name":"curatorRoyaltyBPS","type":"uint256","indexed":false},
		{"name":"auctionCurrency","type":"address","indexed":false}]},
	{"type":"event","name":"AuctionApprovalUpdated","inputs":[
		{"name":"auctionId","type":"uint256","indexed":true},
		{"name":"approved","type":"bool","indexed":false}]},
	{"type":"event","name":"EditionPurchased","inputs":[
		{"name":"auctionId","type":"uint256","indexed":true},
		{"name":"project","type":"address","indexed":true},
		{"name":"editionId","type":"uint256","indexed":false},
		{"name":"price","type":"uint256","indexed":false},
		{"name":"owner","type":"address","indexed":false}]},
	{"type":"event","name":"SeededEditionPurchased","inputs":[
		{"name":"auctionId","type":"uint256","indexed":true},
		{"name":"project","type":"address","indexed":true},
		{"name":"editionId","type":"uint256","indexed":false},
		{"name":"seed","type":"uint256","indexed":false},
		{"name":"price","type":"uint256","indexed":false},
		{"name":"owner","type":"address","indexed":false}]},
	{"type":"event","name":"AskCreated","inputs":[
		{"name":"tokenContract","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true},
		{"name":"seller","type":"address","indexed":false},
		{"name":"askCurrency","type":"address","indexed":false},
		{"name":"askPrice","type":"uint256","indexed":false}]},
	{"type":"event","name":"AskPriceUpdated","inputs":[
		{"name":"tokenContract","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true},
		{"name":"askCurrency","type":"address","indexed":false},
		{"name":"askPrice","type":"uint256","indexed":false}]},
	{"type":"event","name":"AskCanceled","inputs":[
		{"name":"tokenContract","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true}]},
	{"type":"event","name":"AskFilled","inputs":[
		{"name":"tokenContract","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true},
		{"name":"buyer","type":"address","indexed":true},
		{"name":"askCurrency","type":"address","indexed":false},
		{"name":"askPrice","type":"uint256","indexed":false}]},
	{"type":"event","name":"ProfileUpdated","inputs":[
		{"name":"user","type":"address","indexed":true},
		{"name":"name","type":"string","indexed":false},
		{"name":"description","type":"string","indexed":false},
		{"name":"thumbnailURI","type":"string","indexed":false},
		{"name":"linkURI","type":"string","indexed":false}]}
]`

// EventsABI returns the parsed combined event ABI. Shared with tests that
// need to encode logs.
func EventsABI() abi.ABI {
	return parsedEvents
}

var parsedEvents = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(eventsABI))
	if err != nil {
		panic(fmt.Sprintf("invalid events ABI: %v", err))
	}
	return parsed
}()

// EventTopics returns the topic0 hash of every known event, used to build
// the subscription filter
func EventTopics() []common.Hash {
	topics := make([]common.Hash, 0, len(parsedEvents.Events))
	for _, ev := range parsedEvents.Events {
		topics = append(topics, ev.ID)
	}
	return topics
}

// ParseLog decodes an Ethereum log into a normalized contract event. The
// block timestamp is stamped by the caller, which knows the block. Returns
// (nil, nil) for logs whose topic is not part of the event vocabulary.
func ParseLog(vLog types.Log) (*domain.ContractEvent, error) {
	if len(vLog.Topics) == 0 {
		return nil, nil
	}

	var name string
	for n, ev := range parsedEvents.Events {
		if ev.ID == vLog.Topics[0] {
			name = n
			break
		}
	}
	if name == "" {
		return nil, nil
	}

	event := &domain.ContractEvent{
		Contract:    lowerAddr(vLog.Address),
		TxHash:      strings.ToLower(vLog.TxHash.Hex()),
		TxIndex:     uint64(vLog.TxIndex),
		LogIndex:    uint64(vLog.Index),
		BlockNumber: vLog.BlockNumber,
	}

	data, err := parsedEvents.Unpack(name, vLog.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s data: %w", name, err)
	}

	switch name {
	case "CreatedProject":
		if err := requireTopics(vLog, 3); err != nil {
			return nil, err
		}
		implementation, ok := data[2].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("CreatedProject implementation has unexpected type %T", data[2])
		}
		event.Type = domain.EventCreatedProject
		event.CreatedProject = &domain.CreatedProjectPayload{
			ProjectNumber:  topicUint(vLog.Topics[1]).Uint64(),
			Creator:        topicAddr(vLog.Topics[2]),
			EditionSize:    data[0].(*big.Int).Uint64(),
			ProjectAddress: lowerAddr(data[1].(common.Address)),
			Implementation: uint8(implementation.Uint64()),
		}

	case "CreatorApprovalUpdated":
		if err := requireTopics(vLog, 2); err != nil {
			return nil, err
		}
		event.Type = domain.EventCreatorApprovalUpdated
		event.CreatorApprovalUpdated = &domain.CreatorApprovalUpdatedPayload{
			Creator:  topicAddr(vLog.Topics[1]),
			Approved: data[0].(bool),
		}

	case "Transfer":
		if err := requireTopics(vLog, 4); err != nil {
			return nil, err
		}
		event.Type = domain.EventTransfer
		event.Transfer = &domain.TransferPayload{
			From:    topicAddr(vLog.Topics[1]),
			To:      topicAddr(vLog.Topics[2]),
			TokenID: topicUint(vLog.Topics[3]).String(),
		}

	case "Approval":
		if err := requireTopics(vLog, 4); err != nil {
			return nil, err
		}
		event.Type = domain.EventApproval
		event.Approval = &domain.ApprovalPayload{
			Owner:    topicAddr(vLog.Topics[1]),
			Approved: topicAddr(vLog.Topics[2]),
			TokenID:  topicUint(vLog.Topics[3]).String(),
		}

	case "ApprovedMinter":
		if err := requireTopics(vLog, 2); err != nil {
			return nil, err
		}
		event.Type = domain.EventApprovedMinter
		event.ApprovedMinter = &domain.ApprovedMinterPayload{
			Minter:   topicAddr(vLog.Topics[1]),
			Approved: data[0].(bool),
		}

	case "VersionAdded":
		label, ok := data[0].([3]uint32)
		if !ok {
			return nil, fmt.Errorf("VersionAdded label has unexpected type %T", data[0])
		}
		event.Type = domain.EventVersionAdded
		event.VersionAdded = &domain.VersionAddedPayload{Label: label}

	case "VersionURLUpdated":
		label, ok := data[0].([3]uint32)
		if !ok {
			return nil, fmt.Errorf("VersionURLUpdated label has unexpected type %T", data[0])
		}
		event.Type = domain.EventVersionURLUpdated
		event.VersionURLUpdated = &domain.VersionURLUpdatedPayload{
			Label: label,
			Index: data[1].(uint8),
			URL:   data[2].(string),
		}

	case "RoyaltyFundsRecipientChanged":
		event.Type = domain.EventRoyaltyRecipientChanged
		event.RoyaltyRecipientChanged = &domain.RoyaltyRecipientChangedPayload{
			NewRecipient: lowerAddr(data[0].(common.Address)),
		}

	case "AuctionCreated":
		if err := requireTopics(vLog, 4); err != nil {
			return nil, err
		}
		event.Type = domain.EventAuctionCreated
		event.AuctionCreated = &domain.AuctionCreatedPayload{
			AuctionID:          topicUint(vLog.Topics[1]).Uint64(),
			Project:            topicAddr(vLog.Topics[2]),
			Creator:            topicAddr(vLog.Topics[3]),
			Curator:            lowerAddr(data[0].(common.Address)),
			StartTimestamp:     data[1].(*big.Int).Uint64(),
			Duration:           data[2].(*big.Int).Uint64(),
			StartPrice:         data[3].(*big.Int).String(),
			EndPrice:           data[4].(*big.Int).String(),
			NumberOfPriceDrops: data[5].(*big.Int).Uint64(),
			CuratorRoyaltyBPS:  data[6].(*big.Int).Uint64(),
			Currency:           lowerAddr(data[7].(common.Address)),
		}

	case "AuctionApprovalUpdated":
		if err := requireTopics(vLog, 2); err != nil {
			return nil, err
		}
		event.Type = domain.EventAuctionApprovalUpdated
		event.AuctionApprovalUpdated = &domain.AuctionApprovalUpdatedPayload{
			AuctionID: topicUint(vLog.Topics[1]).Uint64(),
			Approved:  data[0].(bool),
		}

	case "EditionPurchased":
		if err := requireTopics(vLog, 3); err != nil {
			return nil, err
		}
		event.Type = domain.EventEditionPurchased
		event.EditionPurchased = &domain.EditionPurchasedPayload{
			AuctionID: topicUint(vLog.Topics[1]).Uint64(),
			Project:   topicAddr(vLog.Topics[2]),
			TokenID:   data[0].(*big.Int).String(),
			Price:     data[1].(*big.Int).String(),
			Buyer:     lowerAddr(data[2].(common.Address)),
		}

	case "SeededEditionPurchased":
		if err := requireTopics(vLog, 3); err != nil {
			return nil, err
		}
		seed := data[1].(*big.Int).String()
		event.Type = domain.EventSeededEditionPurchased
		event.EditionPurchased = &domain.EditionPurchasedPayload{
			AuctionID: topicUint(vLog.Topics[1]).Uint64(),
			Project:   topicAddr(vLog.Topics[2]),
			TokenID:   data[0].(*big.Int).String(),
			Seed:      &seed,
			Price:     data[2].(*big.Int).String(),
			Buyer:     lowerAddr(data[3].(common.Address)),
		}

	case "AskCreated":
		if err := requireTopics(vLog, 3); err != nil {
			return nil, err
		}
		event.Type = domain.EventAskCreated
		event.AskCreated = &domain.AskCreatedPayload{
			TokenContract: topicAddr(vLog.Topics[1]),
			TokenID:       topicUint(vLog.Topics[2]).String(),
			Currency:      lowerAddr(data[1].(common.Address)),
			Price:         data[2].(*big.Int).String(),
		}

	case "AskPriceUpdated":
		if err := requireTopics(vLog, 3); err != nil {
			return nil, err
		}
		event.Type = domain.EventAskPriceUpdated
		event.AskPriceUpdated = &domain.AskPriceUpdatedPayload{
			TokenContract: topicAddr(vLog.Topics[1]),
			TokenID:       topicUint(vLog.Topics[2]).String(),
			Currency:      lowerAddr(data[0].(common.Address)),
			Price:         data[1].(*big.Int).String(),
		}

	case "AskCanceled":
		if err := requireTopics(vLog, 3); err != nil {
			return nil, err
		}
		event.Type = domain.EventAskCanceled
		event.AskCanceled = &domain.AskCanceledPayload{
			TokenContract: topicAddr(vLog.Topics[1]),
			TokenID:       topicUint(vLog.Topics[2]).String(),
		}

	case "AskFilled":
		if err := requireTopics(vLog, 4); err != nil {
			return nil, err
		}
		event.Type = domain.EventAskFilled
		event.AskFilled = &domain.AskFilledPayload{
			TokenContract: topicAddr(vLog.Topics[1]),
			TokenID:       topicUint(vLog.Topics[2]).String(),
			Buyer:         topicAddr(vLog.Topics[3]),
			Currency:      lowerAddr(data[0].(common.Address)),
			Price:         data[1].(*big.Int).String(),
		}

	case "ProfileUpdated":
		if err := requireTopics(vLog, 2); err != nil {
			return nil, err
		}
		event.Type = domain.EventProfileUpdated
		event.ProfileUpdated = &domain.ProfileUpdatedPayload{
			User:         topicAddr(vLog.Topics[1]),
			Name:         data[0].(string),
			Description:  data[1].(string),
			ThumbnailURI: data[2].(string),
			LinkURI:      data[3].(string),
		}

	default:
		return nil, nil
	}

	return event, nil
}

func requireTopics(vLog types.Log, n int) error {
	if len(vLog.Topics) < n {
		return fmt.Errorf("log %s:%d has %d topics, want %d", vLog.TxHash.Hex(), vLog.Index, len(vLog.Topics), n)
	}
	return nil
}

func lowerAddr(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}

func topicAddr(topic common.Hash) string {
	return lowerAddr(common.BytesToAddress(topic.Bytes()))
}

func topicUint(topic common.Hash) *big.Int {
	return new(big.Int).SetBytes(topic.Bytes())
}
