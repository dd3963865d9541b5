package main

import (
	"errors"
	"fmt"

	"github.com/anyswap/OpenChain-Wallet/cmd/utils"
	"github.com/anyswap/OpenChain-Wallet/codec"
	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/anyswap/OpenChain-Wallet/types"
	"github.com/urfave/cli/v2"
)

var (
	hexKeyFlag = &cli.BoolFlag{
		Name:  "hex",
		Usage: "the key argument is hex encoded",
	}

	infoCommand = &cli.Command{
		Action:    infoAction,
		Name:      "info",
		Usage:     "query the metadata of a ledger",
		ArgsUsage: "<rootUrl>",
	}

	endpointCommand = &cli.Command{
		Name:  "endpoint",
		Usage: "manage ledger endpoints",
		Subcommands: []*cli.Command{
			{
				Action:    addEndpointAction,
				Name:      "add",
				Usage:     "check a ledger and add it as endpoint",
				ArgsUsage: "<rootUrl>",
			},
			{
				Action:    listEndpointAction,
				Name:      "list",
				Usage:     "list configured endpoints",
				ArgsUsage: " ",
			},
		},
	}

	valueCommand = &cli.Command{
		Action:    valueAction,
		Name:      "value",
		Usage:     "read the raw value of a record key",
		ArgsUsage: "<key>",
		Flags:     []cli.Flag{utils.EndpointFlag, hexKeyFlag},
	}

	accountCommand = &cli.Command{
		Action:    accountAction,
		Name:      "account",
		Usage:     "read the balance of an asset held by an account",
		ArgsUsage: "<account> <asset>",
		Flags:     []cli.Flag{utils.EndpointFlag},
	}

	dataCommand = &cli.Command{
		Action:    dataAction,
		Name:      "data",
		Usage:     "read a data record",
		ArgsUsage: "<path> <name>",
		Flags:     []cli.Flag{utils.EndpointFlag},
	}

	assetsCommand = &cli.Command{
		Action:    assetsAction,
		Name:      "assets",
		Usage:     "list all asset balances of an account",
		ArgsUsage: "<account>",
		Flags:     []cli.Flag{utils.EndpointFlag},
	}

	subaccountsCommand = &cli.Command{
		Action:    subaccountsAction,
		Name:      "subaccounts",
		Usage:     "list records under an account path",
		ArgsUsage: "<account>",
		Flags:     []cli.Flag{utils.EndpointFlag},
	}

	submitCommand = &cli.Command{
		Action:    submitAction,
		Name:      "submit",
		Usage:     "sign and submit an encoded transaction",
		ArgsUsage: "<transactionHex>",
		Flags:     []cli.Flag{utils.EndpointFlag, utils.KeyFileFlag},
	}
)

func infoAction(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	config := utils.LoadConfig(ctx)
	info, err := newLedgerClient(config).GetLedgerInfo(requestContext(), ctx.Args().Get(0))
	if err != nil {
		return err
	}
	printLedgerInfo(info)
	return nil
}

func addEndpointAction(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	w, err := openWallet(ctx)
	if err != nil {
		return err
	}
	defer w.close()

	rootURL := ctx.Args().Get(0)
	info, err := w.client.GetLedgerInfo(requestContext(), rootURL)
	if err != nil {
		if errors.Is(err, common.ErrConnection) {
			return fmt.Errorf("cannot connect to ledger %v: %w", rootURL, err)
		}
		return err
	}
	ep, err := w.endpoints.AddEndpoint(info.Candidate(rootURL))
	if err != nil {
		return err
	}
	printEndpoint(ep)
	return nil
}

func listEndpointAction(ctx *cli.Context) error {
	w, err := openWallet(ctx)
	if err != nil {
		return err
	}
	defer w.close()

	for _, ep := range sortedEndpoints(w.endpoints.List()) {
		ep := ep
		printEndpoint(&ep)
	}
	return nil
}

func valueAction(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	key := codec.RecordKey(ctx.Args().Get(0))
	if ctx.Bool(hexKeyFlag.Name) {
		bs, err := common.FromHex(ctx.Args().Get(0))
		if err != nil {
			return fmt.Errorf("wrong hex key: %v", err)
		}
		key = bs
	}
	return withEndpoint(ctx, func(w *wallet, ep *types.Endpoint) error {
		result, err := w.client.GetValue(requestContext(), ep, key)
		if err != nil {
			return err
		}
		printVersionedValue(result)
		return nil
	})
}

func accountAction(ctx *cli.Context) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}
	return withEndpoint(ctx, func(w *wallet, ep *types.Endpoint) error {
		record, err := w.client.GetAccount(requestContext(), ep, ctx.Args().Get(0), ctx.Args().Get(1))
		if err != nil {
			return err
		}
		printAccountRecord(record)
		return nil
	})
}

func dataAction(ctx *cli.Context) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}
	return withEndpoint(ctx, func(w *wallet, ep *types.Endpoint) error {
		record, err := w.client.GetData(requestContext(), ep, ctx.Args().Get(0), ctx.Args().Get(1))
		if err != nil {
			return err
		}
		printDataRecord(record)
		return nil
	})
}

func assetsAction(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	return withEndpoint(ctx, func(w *wallet, ep *types.Endpoint) error {
		records, err := w.client.GetAccountAssets(requestContext(), ep, ctx.Args().Get(0))
		if err != nil {
			return err
		}
		for _, record := range records {
			printAccountRecord(record)
		}
		return nil
	})
}

func subaccountsAction(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	return withEndpoint(ctx, func(w *wallet, ep *types.Endpoint) error {
		records, err := w.client.GetSubaccounts(requestContext(), ep, ctx.Args().Get(0))
		if err != nil {
			return err
		}
		for _, record := range records {
			printSubaccountRecord(record)
		}
		return nil
	})
}

func submitAction(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	encodedTx, err := common.FromHex(ctx.Args().Get(0))
	if err != nil {
		return fmt.Errorf("wrong transaction hex: %v", err)
	}
	key, err := loadKey(ctx.String(utils.KeyFileFlag.Name))
	if err != nil {
		return err
	}
	return withEndpoint(ctx, func(w *wallet, ep *types.Endpoint) error {
		result, err := w.client.PostTransaction(requestContext(), ep, encodedTx, key)
		if err != nil {
			return err
		}
		printSubmitResult(result)
		return nil
	})
}

func withEndpoint(ctx *cli.Context, fn func(w *wallet, ep *types.Endpoint) error) error {
	w, err := openWallet(ctx)
	if err != nil {
		return err
	}
	defer w.close()

	ep, err := w.selectEndpoint(ctx)
	if err != nil {
		return err
	}
	return fn(w, ep)
}
