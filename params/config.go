package params

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/anyswap/OpenChain-Wallet/log"
)

const (
	defaultVersionPrefix    = "v1"
	defaultRequestTimeout   = 30 // seconds
	defaultInfoCacheSeconds = 60
	defaultDataDirName      = ".openchain-wallet"
)

var (
	walletConfig      *WalletConfig
	loadConfigStarter sync.Once
)

// WalletConfig config items (decode from toml file)
type WalletConfig struct {
	DataDir          string
	VersionPrefix    string
	RequestTimeout   uint64
	InfoCacheSeconds *uint64
	Log              *LogConfig `toml:",omitempty" json:",omitempty"`
}

// LogConfig log file config
type LogConfig struct {
	File          string
	RotationHours uint64
	MaxAgeHours   uint64
}

// NewDefaultConfig returns the config used without a config file
func NewDefaultConfig() *WalletConfig {
	config := &WalletConfig{}
	config.SetDefaults()
	return config
}

// SetDefaults fills unset items
func (c *WalletConfig) SetDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir()
	}
	if c.VersionPrefix == "" {
		c.VersionPrefix = defaultVersionPrefix
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.InfoCacheSeconds == nil {
		seconds := uint64(defaultInfoCacheSeconds)
		c.InfoCacheSeconds = &seconds
	}
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
}

// GetRequestTimeout get http request timeout
func (c *WalletConfig) GetRequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// GetInfoCacheTTL get ledger info cache ttl, zero disables the cache
func (c *WalletConfig) GetInfoCacheTTL() time.Duration {
	if c.InfoCacheSeconds == nil {
		return defaultInfoCacheSeconds * time.Second
	}
	return time.Duration(*c.InfoCacheSeconds) * time.Second
}

// GetStorageDir get the directory of the endpoints database
func (c *WalletConfig) GetStorageDir() string {
	return filepath.Join(c.DataDir, "storage")
}

// DefaultDataDir default data directory in user home
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return defaultDataDirName
	}
	return filepath.Join(home, defaultDataDirName)
}

// GetConfig get wallet config
func GetConfig() *WalletConfig {
	return walletConfig
}

// SetConfig set wallet config
func SetConfig(config *WalletConfig) {
	walletConfig = config
}

// DecodeConfig decodes and checks the toml config file
func DecodeConfig(configFile string) (*WalletConfig, error) {
	config := &WalletConfig{}
	if configFile != "" {
		if !common.FileExist(configFile) {
			return nil, errConfigNotExist(configFile)
		}
		if _, err := toml.DecodeFile(configFile, config); err != nil {
			return nil, err
		}
	}
	config.SetDefaults()
	if err := config.CheckConfig(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig load config once, an empty file name uses the defaults
func LoadConfig(configFile string) *WalletConfig {
	loadConfigStarter.Do(func() {
		if configFile != "" {
			log.Println("Config file is", configFile)
		}
		config, err := DecodeConfig(configFile)
		if err != nil {
			log.Fatalf("LoadConfig error: %v", err)
		}
		SetConfig(config)

		var bs []byte
		if log.JSONFormat {
			bs, _ = json.Marshal(config)
		} else {
			bs, _ = json.MarshalIndent(config, "", "  ")
		}
		log.Debug("LoadConfig finished. " + string(bs))
	})
	return walletConfig
}
