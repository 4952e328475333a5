package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractEvent_Valid(t *testing.T) {
	tests := []struct {
		name     string
		event    ContractEvent
		expected bool
	}{
		{
			name: "valid transfer",
			event: ContractEvent{
				Type:     EventTransfer,
				Contract: "0x1111111111111111111111111111111111111111",
				TxHash:   "0xabc",
				Transfer: &TransferPayload{
					From:    ZeroAddress,
					To:      "0x2222222222222222222222222222222222222222",
					TokenID: "1",
				},
			},
			expected: true,
		},
		{
			name: "missing tx hash",
			event: ContractEvent{
				Type:     EventTransfer,
				Contract: "0x1111111111111111111111111111111111111111",
				Transfer: &TransferPayload{TokenID: "1"},
			},
			expected: false,
		},
		{
			name: "missing contract",
			event: ContractEvent{
				Type:     EventTransfer,
				TxHash:   "0xabc",
				Transfer: &TransferPayload{TokenID: "1"},
			},
			expected: false,
		},
		{
			name: "missing payload",
			event: ContractEvent{
				Type:     EventTransfer,
				Contract: "0x1111111111111111111111111111111111111111",
				TxHash:   "0xabc",
			},
			expected: false,
		},
		{
			name: "payload type mismatch",
			event: ContractEvent{
				Type:     EventAskCreated,
				Contract: "0x1111111111111111111111111111111111111111",
				TxHash:   "0xabc",
				Transfer: &TransferPayload{TokenID: "1"},
			},
			expected: false,
		},
		{
			name: "unknown event type",
			event: ContractEvent{
				Type:     EventType("not_a_thing"),
				Contract: "0x1111111111111111111111111111111111111111",
				TxHash:   "0xabc",
			},
			expected: false,
		},
		{
			name: "edition purchased shares payload with seeded variant",
			event: ContractEvent{
				Type:     EventEditionPurchased,
				Contract: "0x1111111111111111111111111111111111111111",
				TxHash:   "0xabc",
				EditionPurchased: &EditionPurchasedPayload{
					AuctionID: 1,
					Project:   "0x2222222222222222222222222222222222222222",
					Buyer:     "0x3333333333333333333333333333333333333333",
					Price:     "1000000000000000000",
					TokenID:   "5",
				},
			},
			expected: true,
		},
		{
			name: "seeded edition purchased uses same payload",
			event: ContractEvent{
				Type:     EventSeededEditionPurchased,
				Contract: "0x1111111111111111111111111111111111111111",
				TxHash:   "0xabc",
				EditionPurchased: &EditionPurchasedPayload{
					AuctionID: 1,
					Project:   "0x2222222222222222222222222222222222222222",
					Buyer:     "0x3333333333333333333333333333333333333333",
					Price:     "1000000000000000000",
					TokenID:   "5",
				},
			},
			expected: true,
		},
		{
			name: "valid profile update",
			event: ContractEvent{
				Type:     EventProfileUpdated,
				Contract: "0x1111111111111111111111111111111111111111",
				TxHash:   "0xabc",
				ProfileUpdated: &ProfileUpdatedPayload{
					User: "0x2222222222222222222222222222222222222222",
					Name: "alice",
				},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Valid())
		})
	}
}

func TestContractEvent_After(t *testing.T) {
	event := ContractEvent{BlockNumber: 100, LogIndex: 5}

	tests := []struct {
		name        string
		blockNumber uint64
		logIndex    uint64
		expected    bool
	}{
		{"earlier block", 99, 20, true},
		{"same block earlier log", 100, 4, true},
		{"same position", 100, 5, false},
		{"same block later log", 100, 6, false},
		{"later block", 101, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, event.After(tt.blockNumber, tt.logIndex))
		})
	}
}

func TestContractEvent_String(t *testing.T) {
	event := ContractEvent{
		Type:        EventTransfer,
		TxHash:      "0xabc",
		BlockNumber: 100,
		LogIndex:    5,
	}

	assert.Equal(t, "transfer@0xabc[100:5]", event.String())
}
