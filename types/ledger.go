package types

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/anyswap/OpenChain-Wallet/codec"
	"github.com/anyswap/OpenChain-Wallet/common"
)

// Endpoint a configured ledger server
type Endpoint struct {
	ID      int64  `json:"id"`
	RootURL string `json:"rootUrl"`
	Name    string `json:"name"`
}

// NewEndpoint validates and creates an endpoint
func NewEndpoint(id int64, rootURL, name string) (*Endpoint, error) {
	if id < 0 {
		return nil, fmt.Errorf("%w: negative id %v", common.ErrInvalidEndpoint, id)
	}
	if err := CheckRootURL(rootURL); err != nil {
		return nil, err
	}
	return &Endpoint{
		ID:      id,
		RootURL: rootURL,
		Name:    name,
	}, nil
}

// CheckRootURL check root url is an absolute http(s) url
func CheckRootURL(rootURL string) error {
	if rootURL == "" {
		return fmt.Errorf("%w: empty root url", common.ErrInvalidEndpoint)
	}
	u, err := url.Parse(rootURL)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme in %q", common.ErrInvalidEndpoint, rootURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: no host in %q", common.ErrInvalidEndpoint, rootURL)
	}
	return nil
}

// URL joins the root url and a relative api path
func (e *Endpoint) URL(path string) string {
	return JoinURL(e.RootURL, path)
}

// JoinURL joins rootURL and path with exactly one slash
func JoinURL(rootURL, path string) string {
	return strings.TrimRight(rootURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// EndpointCandidate the input to add a new endpoint
type EndpointCandidate struct {
	RootURL string `json:"root_url"`
	Name    string `json:"name"`
}

// LedgerInfo the `info` response of a ledger
type LedgerInfo struct {
	RootURL        string `json:"root_url,omitempty"`
	Name           string `json:"name,omitempty"`
	ValidatorURL   string `json:"validator_url,omitempty"`
	TermsOfService string `json:"tos,omitempty"`
	WebpageURL     string `json:"webpage_url,omitempty"`
	Namespace      string `json:"namespace,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Candidate returns the endpoint to add for this ledger.
// queriedURL is used when the ledger does not report its root url.
func (info *LedgerInfo) Candidate(queriedURL string) *EndpointCandidate {
	rootURL := info.RootURL
	if rootURL == "" {
		rootURL = queriedURL
	}
	return &EndpointCandidate{
		RootURL: rootURL,
		Name:    info.Name,
	}
}

// VersionedValue raw value read from the ledger
type VersionedValue struct {
	Key     codec.RecordKey
	Value   []byte
	Version []byte
}

// IsUnset returns true if no value is stored
func (v *VersionedValue) IsUnset() bool {
	return len(v.Value) == 0
}

// AccountRecord balance of one asset held by an account
type AccountRecord struct {
	Key     codec.RecordKey
	Account string
	Asset   string
	Version []byte
	Balance int64
}

// NewAccountRecord creates an account record, the key is always rebuilt
// from account and asset.
func NewAccountRecord(account, asset string, version []byte, balance int64) (*AccountRecord, error) {
	key, err := codec.EncodeAccount(account, asset)
	if err != nil {
		return nil, err
	}
	return &AccountRecord{
		Key:     key,
		Account: account,
		Asset:   asset,
		Version: version,
		Balance: balance,
	}, nil
}

// DataRecord named data stored under a path. Data is nil when unset.
type DataRecord struct {
	Key       codec.RecordKey
	RecordKey *codec.ParsedKey
	Version   []byte
	Data      *string
}

// HasData returns true if the record holds a value
func (r *DataRecord) HasData() bool {
	return r.Data != nil
}

// SubaccountRecord a raw record found under an account path
type SubaccountRecord struct {
	Key       codec.RecordKey
	RecordKey *codec.ParsedKey
	Value     []byte
	Version   []byte
}

// Signature a public key and its signature over a transaction
type Signature struct {
	PublicKey []byte
	Signature []byte
}

// SignedTransaction an encoded transaction with its signatures
type SignedTransaction struct {
	Transaction []byte
	Signatures  []*Signature
}

// SubmitResult the acknowledgment of an accepted transaction
type SubmitResult struct {
	TransactionHash string `json:"transaction_hash,omitempty"`
	MutationHash    string `json:"mutation_hash,omitempty"`
}
