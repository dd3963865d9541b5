package ledger

import (
	"bytes"
	"context"
	"errors"

	"github.com/anyswap/OpenChain-Wallet/codec"
	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/anyswap/OpenChain-Wallet/log"
	"github.com/anyswap/OpenChain-Wallet/types"
)

// GetValue reads the raw value and version stored under key
func (c *Client) GetValue(ctx context.Context, endpoint *types.Endpoint, key codec.RecordKey) (*types.VersionedValue, error) {
	if err := checkEndpoint(endpoint); err != nil {
		return nil, err
	}
	url := endpoint.URL(valuePath)
	var result valueResult
	err := c.rpc.RPCGet(ctx, &result, url, map[string]string{"key": key.Hex()})
	if err != nil {
		log.Warn("get value failed", "url", url, "key", key.String(), "err", err)
		return nil, wrapReadError(err)
	}
	value, err := decodeHex("value", result.Value)
	if err != nil {
		return nil, err
	}
	version, err := decodeHex("version", result.Version)
	if err != nil {
		return nil, err
	}
	log.Trace("get value success", "url", url, "key", key.String(), "version", result.Version)
	return &types.VersionedValue{
		Key:     key,
		Value:   value,
		Version: version,
	}, nil
}

// GetAccount reads the balance of asset held by account, an unset balance is zero
func (c *Client) GetAccount(ctx context.Context, endpoint *types.Endpoint, account, asset string) (*types.AccountRecord, error) {
	key, err := codec.EncodeAccount(account, asset)
	if err != nil {
		return nil, err
	}
	result, err := c.GetValue(ctx, endpoint, key)
	if err != nil {
		return nil, err
	}
	var balance int64
	if !result.IsUnset() {
		balance, err = codec.DecodeInt64(bytes.NewReader(result.Value))
		if err != nil {
			return nil, err
		}
	}
	return &types.AccountRecord{
		Key:     result.Key,
		Account: account,
		Asset:   asset,
		Version: result.Version,
		Balance: balance,
	}, nil
}

// GetData reads the data record name under path, unset data is nil
func (c *Client) GetData(ctx context.Context, endpoint *types.Endpoint, path, name string) (*types.DataRecord, error) {
	key, err := codec.EncodeData(path, name)
	if err != nil {
		return nil, err
	}
	result, err := c.GetValue(ctx, endpoint, key)
	if err != nil {
		return nil, err
	}
	recordKey, err := codec.ParseRecordKey(result.Key)
	if err != nil {
		return nil, err
	}
	record := &types.DataRecord{
		Key:       result.Key,
		RecordKey: recordKey,
		Version:   result.Version,
	}
	if !result.IsUnset() {
		data, err := codec.DecodeString(bytes.NewReader(result.Value))
		if err != nil {
			return nil, err
		}
		record.Data = &data
	}
	return record, nil
}

// GetAccountAssets lists every asset balance held by account.
// Record keys are rebuilt locally from the returned account and asset.
func (c *Client) GetAccountAssets(ctx context.Context, endpoint *types.Endpoint, account string) ([]*types.AccountRecord, error) {
	if err := checkEndpoint(endpoint); err != nil {
		return nil, err
	}
	url := endpoint.URL(accountPath)
	var results []*accountResult
	err := c.rpc.RPCGet(ctx, &results, url, map[string]string{"account": account})
	if err != nil {
		log.Warn("get account assets failed", "url", url, "account", account, "err", err)
		return nil, wrapReadError(err)
	}
	records := make([]*types.AccountRecord, 0, len(results))
	for _, item := range results {
		if item == nil {
			return nil, malformed("null account item")
		}
		version, err := decodeHex("version", item.Version)
		if err != nil {
			return nil, err
		}
		balance, err := common.GetInt64FromStr(item.Balance)
		if err != nil {
			return nil, malformed("%v", err)
		}
		record, err := types.NewAccountRecord(item.Account, item.Asset, version, balance)
		if errors.Is(err, common.ErrInvalidRecordKey) {
			return nil, malformed("%v", err)
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	log.Debug("get account assets success", "url", url, "account", account, "count", len(records))
	return records, nil
}

// GetSubaccounts lists the records stored under the account path
func (c *Client) GetSubaccounts(ctx context.Context, endpoint *types.Endpoint, account string) ([]*types.SubaccountRecord, error) {
	if err := checkEndpoint(endpoint); err != nil {
		return nil, err
	}
	url := endpoint.URL(subaccountsPath)
	var results []*valueResult
	err := c.rpc.RPCGet(ctx, &results, url, map[string]string{"account": account})
	if err != nil {
		log.Warn("get subaccounts failed", "url", url, "account", account, "err", err)
		return nil, wrapReadError(err)
	}
	records := make([]*types.SubaccountRecord, 0, len(results))
	for _, item := range results {
		if item == nil {
			return nil, malformed("null subaccount item")
		}
		key, err := decodeHex("key", item.Key)
		if err != nil {
			return nil, err
		}
		recordKey, err := codec.ParseRecordKey(key)
		if err != nil {
			return nil, err
		}
		value, err := decodeHex("value", item.Value)
		if err != nil {
			return nil, err
		}
		version, err := decodeHex("version", item.Version)
		if err != nil {
			return nil, err
		}
		records = append(records, &types.SubaccountRecord{
			Key:       key,
			RecordKey: recordKey,
			Value:     value,
			Version:   version,
		})
	}
	log.Debug("get subaccounts success", "url", url, "account", account, "count", len(records))
	return records, nil
}
