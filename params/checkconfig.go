package params

import (
	"errors"
	"fmt"
	"strings"
)

func errConfigNotExist(configFile string) error {
	return fmt.Errorf("config file %v not exist", configFile)
}

// CheckConfig check config
func (c *WalletConfig) CheckConfig() error {
	if c.DataDir == "" {
		return errors.New("wallet must config non empty 'DataDir'")
	}
	if c.VersionPrefix == "" {
		return errors.New("wallet must config non empty 'VersionPrefix'")
	}
	if strings.ContainsAny(c.VersionPrefix, " \t\n") {
		return fmt.Errorf("wrong 'VersionPrefix' %q", c.VersionPrefix)
	}
	if c.RequestTimeout > 600 {
		return fmt.Errorf("'RequestTimeout' %v is too large (max 600 seconds)", c.RequestTimeout)
	}
	if c.Log != nil && c.Log.File == "" && (c.Log.RotationHours != 0 || c.Log.MaxAgeHours != 0) {
		return errors.New("log rotation is configed without 'Log.File'")
	}
	return nil
}
