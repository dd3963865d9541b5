package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/anyswap/OpenChain-Wallet/cmd/utils"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "openchain-cli"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the openchain wallet command line interface")
)

func initApp() {
	app.HideVersion = true // we have a command to print the version
	app.Copyright = "Copyright 2017-2021 The OpenChain-Wallet Authors"
	app.Before = func(ctx *cli.Context) error {
		utils.SetLogger(ctx)
		return nil
	}
	app.Commands = []*cli.Command{
		utils.VersionCommand,
		infoCommand,
		endpointCommand,
		valueCommand,
		accountCommand,
		dataCommand,
		assetsCommand,
		subaccountsCommand,
		submitCommand,
	}
	app.Flags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.DataDirFlag,
		utils.VerbosityFlag,
		utils.JSONFormatFlag,
		utils.ColorFormatFlag,
	}
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
