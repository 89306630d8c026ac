// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "pqalg"
	configFileType = "yaml"
	envPrefix      = "PQALG"

	cfgKeyFormat = "format"
	cfgKeyDB     = "db"

	defaultFormat = formatText
	defaultDB     = "pqalg.db"
)

// loadConfig reads pqalg.yaml from configDir (a missing file is not an
// error) and layers PQALG_* environment variables on top.
func loadConfig(v *viper.Viper, configDir string) error {
	v.SetDefault(cfgKeyFormat, defaultFormat)
	v.SetDefault(cfgKeyDB, defaultDB)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("read config: %w", err)
	}

	return nil
}
