// Package ledger reads records from and submits transactions to an
// OpenChain ledger over its HTTP api.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/anyswap/OpenChain-Wallet/log"
	"github.com/anyswap/OpenChain-Wallet/rpc/client"
	"github.com/anyswap/OpenChain-Wallet/types"
	"github.com/patrickmn/go-cache"
)

// api paths relative to the endpoint root url
const (
	infoPath        = "info"
	valuePath       = "value"
	accountPath     = "query/account"
	subaccountsPath = "query/subaccounts"
	submitPath      = "submit"
)

// Client ledger api client, safe for concurrent use
type Client struct {
	rpc       *client.Client
	infoCache *cache.Cache
}

// Option configures a Client
type Option func(*Client)

// WithInfoCache caches successful ledger info results for ttl
func WithInfoCache(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.infoCache = cache.New(ttl, 2*ttl)
		}
	}
}

// NewClient creates a ledger client, timeout of zero uses the default
func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		rpc: client.NewClient(timeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetLedgerInfo queries the metadata of the ledger at rootURL
func (c *Client) GetLedgerInfo(ctx context.Context, rootURL string) (*types.LedgerInfo, error) {
	if err := types.CheckRootURL(rootURL); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConnection, err)
	}
	if c.infoCache != nil {
		if cached, found := c.infoCache.Get(rootURL); found {
			return copyLedgerInfo(cached.(*types.LedgerInfo)), nil
		}
	}

	url := types.JoinURL(rootURL, infoPath)
	var raw json.RawMessage
	if err := c.rpc.RPCGet(ctx, &raw, url, nil); err != nil {
		log.Warn("get ledger info failed", "url", url, "err", err)
		return nil, wrapReadError(err)
	}
	info := &types.LedgerInfo{}
	if err := json.Unmarshal(raw, info); err != nil {
		log.Debug("ledger info is not an object", "url", url, "err", err)
	}
	info.Raw = raw
	log.Debug("get ledger info success", "url", url, "name", info.Name)

	if c.infoCache != nil {
		c.infoCache.SetDefault(rootURL, copyLedgerInfo(info))
	}
	return info, nil
}

func copyLedgerInfo(info *types.LedgerInfo) *types.LedgerInfo {
	cpy := *info
	cpy.Raw = append(json.RawMessage(nil), info.Raw...)
	return &cpy
}

func checkEndpoint(endpoint *types.Endpoint) error {
	if endpoint == nil {
		return fmt.Errorf("%w: no endpoint", common.ErrInvalidEndpoint)
	}
	return nil
}

// wrapReadError maps rpc errors of read queries to ledger error kinds
func wrapReadError(err error) error {
	var decodeErr *client.DecodeError
	if errors.As(err, &decodeErr) {
		return fmt.Errorf("%w: %v", common.ErrMalformedValue, err)
	}
	return fmt.Errorf("%w: %v", common.ErrConnection, err)
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %v", common.ErrMalformedValue, fmt.Sprintf(format, args...))
}

func decodeHex(field, str string) ([]byte, error) {
	bs, err := common.FromHex(str)
	if err != nil {
		return nil, malformed("%v is not hex: %q", field, str)
	}
	return bs, nil
}
