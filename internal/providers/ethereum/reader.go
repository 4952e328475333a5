package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/olta-art/editions-indexer/internal/adapter"
	"github.com/olta-art/editions-indexer/internal/metrics"
)

// URISet holds the content slot URLs and hashes of a project version as
// returned by getURIs. Older project contracts predate the patch-notes slot
// and return a 4-tuple; for those the patch-notes fields are empty.
type URISet struct {
	ImageURL       string
	ImageHash      string
	AnimationURL   string
	AnimationHash  string
	PatchNotesURL  string
	PatchNotesHash string
}

// ProjectMetadata holds the descriptive fields a project contract exposes
// but the factory's creation event does not carry
type ProjectMetadata struct {
	Name        string
	Symbol      string
	Description string
	RoyaltyBPS  uint64
}

// CurrencyMetadata holds ERC-20 token metadata
type CurrencyMetadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// ContractReader reads auxiliary on-chain state at event time. Every method
// may fail when the underlying call reverts; callers decide whether a revert
// is fatal to the event or a degradation.
//
//go:generate mockgen -source=reader.go -destination=../../mocks/contract_reader.go -package=mocks -mock_names=ContractReader=MockContractReader
type ContractReader interface {
	// TokenURI fetches the content URI of a minted edition
	TokenURI(ctx context.Context, contractAddress, tokenID string) (string, error)

	// SeedOfToken fetches the seed assigned to an edition of a Seeded project
	SeedOfToken(ctx context.Context, contractAddress, tokenID string) (string, error)

	// ProjectURIs fetches the contract's current content URLs and hashes.
	// Note this reads the *current* state, not the state as of a given
	// label; the per-label accessor is not reliably available on deployed
	// contracts, so version handlers use this as a documented approximation.
	ProjectURIs(ctx context.Context, contractAddress string) (*URISet, error)

	// ProjectMetadata fetches name, symbol, description and royalty bps
	ProjectMetadata(ctx context.Context, contractAddress string) (*ProjectMetadata, error)

	// CurrencyMetadata fetches ERC-20 metadata, probing both the
	// string-returning and bytes32-returning variants of name/symbol
	CurrencyMetadata(ctx context.Context, contractAddress string) (*CurrencyMetadata, error)

	// IsSplitWallet probes whether the address is a split-payment wallet
	// contract. The probe reverts for ordinary addresses; that is expected
	// and reported as false, not as an error.
	IsSplitWallet(ctx context.Context, address string) bool
}

type contractReader struct {
	client adapter.EthClient
}

// NewContractReader creates a ContractReader over an Ethereum client
func NewContractReader(client adapter.EthClient) ContractReader {
	return &contractReader{client: client}
}

const (
	tokenURIABI    = `[{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}]`
	seedOfTokenABI = `[{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"seedOfTokens","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`

	// getURIs on current contracts returns six values; contracts deployed
	// before the patch-notes slot return four
	getURIs6ABI = `[{"constant":true,"inputs":[],"name":"getURIs","outputs":[{"name":"","type":"string"},{"name":"","type":"bytes32"},{"name":"","type":"string"},{"name":"","type":"bytes32"},{"name":"","type":"string"},{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"}]`
	getURIs4ABI = `[{"constant":true,"inputs":[],"name":"getURIs","outputs":[{"name":"","type":"string"},{"name":"","type":"bytes32"},{"name":"","type":"string"},{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"}]`

	nameABI        = `[{"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}]`
	symbolABI      = `[{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}]`
	descriptionABI = `[{"constant":true,"inputs":[],"name":"description","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}]`
	royaltyBPSABI  = `[{"constant":true,"inputs":[],"name":"royaltyBPS","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`

	nameBytesABI   = `[{"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"}]`
	symbolBytesABI = `[{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"}]`
	decimalsABI    = `[{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"}]`

	// 0xSplits wallets expose the address of their controlling SplitMain
	splitMainABI = `[{"constant":true,"inputs":[],"name":"splitMain","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}]`
)

// rawCall packs and executes a read-only contract call, returning the raw
// result bytes for the caller to unpack
func (r *contractReader) rawCall(ctx context.Context, contractAddress, abiJSON, method string, args ...interface{}) ([]byte, *abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse ABI for %s: %w", method, err)
	}

	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	contractAddr := common.HexToAddress(contractAddress)
	result, err := r.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		metrics.ChainCalls.WithLabelValues(method, "error").Inc()
		return nil, nil, fmt.Errorf("%s call to %s failed: %w", method, contractAddress, err)
	}

	metrics.ChainCalls.WithLabelValues(method, "ok").Inc()
	return result, &parsed, nil
}

// call executes a read-only contract call and unpacks the result values
func (r *contractReader) call(ctx context.Context, contractAddress, abiJSON, method string, args ...interface{}) ([]interface{}, error) {
	result, parsed, err := r.rawCall(ctx, contractAddress, abiJSON, method, args...)
	if err != nil {
		return nil, err
	}

	values, err := parsed.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return values, nil
}

// TokenURI fetches the content URI of a minted edition
func (r *contractReader) TokenURI(ctx context.Context, contractAddress, tokenID string) (string, error) {
	id, ok := new(big.Int).SetString(tokenID, 10)
	if !ok {
		return "", fmt.Errorf("invalid token id: %s", tokenID)
	}

	values, err := r.call(ctx, contractAddress, tokenURIABI, "tokenURI", id)
	if err != nil {
		return "", err
	}

	uri, ok := values[0].(string)
	if !ok {
		return "", fmt.Errorf("tokenURI returned unexpected type %T", values[0])
	}
	return uri, nil
}

// SeedOfToken fetches the seed assigned to an edition of a Seeded project
func (r *contractReader) SeedOfToken(ctx context.Context, contractAddress, tokenID string) (string, error) {
	id, ok := new(big.Int).SetString(tokenID, 10)
	if !ok {
		return "", fmt.Errorf("invalid token id: %s", tokenID)
	}

	values, err := r.call(ctx, contractAddress, seedOfTokenABI, "seedOfTokens", id)
	if err != nil {
		return "", err
	}

	seed, ok := values[0].(*big.Int)
	if !ok {
		return "", fmt.Errorf("seedOfTokens returned unexpected type %T", values[0])
	}
	return seed.String(), nil
}

// ProjectURIs fetches the contract's current content URLs and hashes
func (r *contractReader) ProjectURIs(ctx context.Context, contractAddress string) (*URISet, error) {
	result, parsed, err := r.rawCall(ctx, contractAddress, getURIs6ABI, "getURIs")
	if err != nil {
		return nil, err
	}

	values, err := parsed.Unpack("getURIs", result)
	if err != nil {
		// Older contracts return the 4-tuple without patch notes
		fallback, fallbackErr := abi.JSON(strings.NewReader(getURIs4ABI))
		if fallbackErr != nil {
			return nil, fmt.Errorf("failed to parse getURIs fallback ABI: %w", fallbackErr)
		}
		values, fallbackErr = fallback.Unpack("getURIs", result)
		if fallbackErr != nil {
			return nil, fmt.Errorf("failed to unpack getURIs result: %w", err)
		}
	}

	set := &URISet{}
	if len(values) >= 4 {
		set.ImageURL, _ = values[0].(string)
		set.ImageHash = hashHex(values[1])
		set.AnimationURL, _ = values[2].(string)
		set.AnimationHash = hashHex(values[3])
	}
	if len(values) >= 6 {
		set.PatchNotesURL, _ = values[4].(string)
		set.PatchNotesHash = hashHex(values[5])
	}
	return set, nil
}

// hashHex renders an unpacked bytes32 value as a 0x-prefixed hex string
func hashHex(value interface{}) string {
	b, ok := value.([32]byte)
	if !ok {
		return ""
	}
	return common.BytesToHash(b[:]).Hex()
}

// ProjectMetadata fetches name, symbol, description and royalty bps
func (r *contractReader) ProjectMetadata(ctx context.Context, contractAddress string) (*ProjectMetadata, error) {
	meta := &ProjectMetadata{}

	values, err := r.call(ctx, contractAddress, nameABI, "name")
	if err != nil {
		return nil, err
	}
	meta.Name, _ = values[0].(string)

	values, err = r.call(ctx, contractAddress, symbolABI, "symbol")
	if err != nil {
		return nil, err
	}
	meta.Symbol, _ = values[0].(string)

	values, err = r.call(ctx, contractAddress, descriptionABI, "description")
	if err != nil {
		return nil, err
	}
	meta.Description, _ = values[0].(string)

	values, err = r.call(ctx, contractAddress, royaltyBPSABI, "royaltyBPS")
	if err != nil {
		return nil, err
	}
	if bps, ok := values[0].(*big.Int); ok {
		meta.RoyaltyBPS = bps.Uint64()
	}

	return meta, nil
}

// isNullBytes32 detects the placeholder some malformed ERC-20 contracts
// return from their bytes32 name/symbol
func isNullBytes32(hex string) bool {
	return hex == "0x0000000000000000000000000000000000000000000000000000000000000001"
}

// bytes32String renders an unpacked bytes32 value as a trimmed string
func bytes32String(value interface{}) (string, bool) {
	b, ok := value.([32]byte)
	if !ok {
		return "", false
	}
	hex := common.BytesToHash(b[:]).Hex()
	if isNullBytes32(hex) {
		return "", false
	}
	return strings.TrimRight(string(b[:]), "\x00"), true
}

// stringOrBytes32 fetches a metadata field trying the string-returning
// variant first, then the bytes32-returning one used by older contracts
func (r *contractReader) stringOrBytes32(ctx context.Context, contractAddress, stringABI, bytesABI, method string) string {
	if values, err := r.call(ctx, contractAddress, stringABI, method); err == nil {
		if s, ok := values[0].(string); ok {
			return s
		}
	}

	if values, err := r.call(ctx, contractAddress, bytesABI, method); err == nil {
		if s, ok := bytes32String(values[0]); ok {
			return s
		}
	}

	return "unknown"
}

// CurrencyMetadata fetches ERC-20 metadata with bytes32 fallback probing
func (r *contractReader) CurrencyMetadata(ctx context.Context, contractAddress string) (*CurrencyMetadata, error) {
	meta := &CurrencyMetadata{
		Name:   r.stringOrBytes32(ctx, contractAddress, nameABI, nameBytesABI, "name"),
		Symbol: r.stringOrBytes32(ctx, contractAddress, symbolABI, symbolBytesABI, "symbol"),
	}

	values, err := r.call(ctx, contractAddress, decimalsABI, "decimals")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch decimals for %s: %w", contractAddress, err)
	}
	if decimals, ok := values[0].(uint8); ok {
		meta.Decimals = decimals
	}

	return meta, nil
}

// IsSplitWallet probes whether the address is a split-payment wallet
func (r *contractReader) IsSplitWallet(ctx context.Context, address string) bool {
	values, err := r.call(ctx, address, splitMainABI, "splitMain")
	if err != nil {
		return false
	}
	_, ok := values[0].(common.Address)
	return ok
}
