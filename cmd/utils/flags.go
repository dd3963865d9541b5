package utils

import (
	"github.com/anyswap/OpenChain-Wallet/log"
	"github.com/anyswap/OpenChain-Wallet/params"
	"github.com/urfave/cli/v2"
)

var (
	// ConfigFileFlag --config
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// DataDirFlag --datadir
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the wallet storage (overrides config)",
	}
	// VerbosityFlag --verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   3,
	}
	// JSONFormatFlag --json
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag --color
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}
	// EndpointFlag --endpoint
	EndpointFlag = &cli.Int64Flag{
		Name:    "endpoint",
		Aliases: []string{"e"},
		Usage:   "id of the configured ledger endpoint",
	}
	// KeyFileFlag --key
	KeyFileFlag = &cli.StringFlag{
		Name:  "key",
		Usage: "file containing a hex or WIF private key",
	}
)

// SetLogger set log level, format and log file
func SetLogger(ctx *cli.Context) {
	logLevel := ctx.Uint64(VerbosityFlag.Name)
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)
}

// SetLogFile enables the configured rotating log file
func SetLogFile(config *params.WalletConfig) error {
	if config.Log == nil {
		return nil
	}
	return log.SetLogFile(config.Log.File, config.Log.RotationHours, config.Log.MaxAgeHours)
}

// GetConfigFilePath specified by `--config`
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}

// LoadConfig loads config and applies command line overrides
func LoadConfig(ctx *cli.Context) *params.WalletConfig {
	config := *params.LoadConfig(GetConfigFilePath(ctx))
	if dataDir := ctx.String(DataDirFlag.Name); dataDir != "" {
		config.DataDir = dataDir
	}
	return &config
}
