package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"sort"
	"strings"

	"github.com/anyswap/OpenChain-Wallet/cmd/utils"
	"github.com/anyswap/OpenChain-Wallet/endpoint"
	"github.com/anyswap/OpenChain-Wallet/ledger"
	"github.com/anyswap/OpenChain-Wallet/params"
	"github.com/anyswap/OpenChain-Wallet/signer"
	"github.com/anyswap/OpenChain-Wallet/storage"
	"github.com/anyswap/OpenChain-Wallet/types"
	"github.com/urfave/cli/v2"
)

type wallet struct {
	config    *params.WalletConfig
	db        *storage.LevelDBStore
	endpoints *endpoint.Store
	client    *ledger.Client
}

func newLedgerClient(config *params.WalletConfig) *ledger.Client {
	return ledger.NewClient(config.GetRequestTimeout(), ledger.WithInfoCache(config.GetInfoCacheTTL()))
}

func openWallet(ctx *cli.Context) (*wallet, error) {
	config := utils.LoadConfig(ctx)
	if err := utils.SetLogFile(config); err != nil {
		return nil, err
	}
	db, err := storage.OpenLevelDBStore(config.GetStorageDir())
	if err != nil {
		return nil, err
	}
	endpoints, err := endpoint.NewStore(db, config.VersionPrefix)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &wallet{
		config:    config,
		db:        db,
		endpoints: endpoints,
		client:    newLedgerClient(config),
	}, nil
}

func (w *wallet) close() {
	_ = w.db.Close()
}

// selectEndpoint returns the endpoint of `--endpoint`, or the only one configured
func (w *wallet) selectEndpoint(ctx *cli.Context) (*types.Endpoint, error) {
	if ctx.IsSet(utils.EndpointFlag.Name) {
		id := ctx.Int64(utils.EndpointFlag.Name)
		ep, exist := w.endpoints.Get(id)
		if !exist {
			return nil, fmt.Errorf("endpoint %v not found", id)
		}
		return ep, nil
	}
	all := w.endpoints.List()
	if len(all) != 1 {
		return nil, fmt.Errorf("%v endpoints configured, use --%v to select one", len(all), utils.EndpointFlag.Name)
	}
	var result types.Endpoint
	for _, ep := range all {
		result = ep
	}
	return &result, nil
}

func sortedEndpoints(all map[int64]types.Endpoint) []types.Endpoint {
	list := make([]types.Endpoint, 0, len(all))
	for _, ep := range all {
		list = append(list, ep)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func loadKey(keyFile string) (*signer.Key, error) {
	if keyFile == "" {
		return nil, fmt.Errorf("private key file is required (--%v)", utils.KeyFileFlag.Name)
	}
	keyData, err := ioutil.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("read private key file failed: %v", err)
	}
	return signer.ParseKey(strings.TrimSpace(string(keyData)))
}

func requireArgs(ctx *cli.Context, count int) error {
	if ctx.NArg() != count {
		return fmt.Errorf("%v needs %v arguments, got %v (usage: %v %v)", ctx.Command.Name, count, ctx.NArg(), ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	return nil
}

func requestContext() context.Context {
	return context.Background()
}
