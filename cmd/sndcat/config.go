// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ik5/sndstream/internal/config"
)

const (
	keyConfig   = "config"
	keyEnvFile  = "env-file"
	keyEngine   = "engine"
	keyLogLevel = "log-level"
	keyLogFile  = "log-file"
	keyNoColor  = "no-color"
	keyKind     = "kind"
	keyWindow   = "window"
)

func globalFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("sndcat", pflag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.Usage = func() {}

	flags.StringP(keyConfig, "c", "sndcat.yaml", "Config file")
	flags.String(keyEnvFile, ".env", "Dotenv file read before the environment")
	flags.StringP(keyEngine, "e", "", "Codec engine: go or native")
	flags.String(keyLogLevel, "", "Log level: none, error, warn, info or debug")
	flags.String(keyLogFile, "", "Write JSON logs to this file")
	flags.Bool(keyNoColor, false, "Disable colored output")
	flags.BoolP("help", "h", false, "Print usage information and exit")
	flags.BoolP("version", "v", false, "Print version information and exit")
	return flags
}

func setViperDefaults(v *viper.Viper, ec *config.EngineConfig) {
	v.SetDefault(keyEngine, ec.Engine)
	v.SetDefault(keyLogLevel, ec.LogLevel)
	v.SetDefault(keyLogFile, ec.LogFile)
	v.SetDefault(keyNoColor, false)
	v.SetDefault(keyKind, "float64")
	v.SetDefault(keyWindow, 0)
}

// loadConfig layers flags over the config file over the environment. A
// missing config file is not an error; found reports whether one was read.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet, ec *config.EngineConfig) (found bool, err error) {
	setViperDefaults(v, ec)
	if err := v.BindPFlags(flags); err != nil {
		return false, err
	}

	path := v.GetString(keyConfig)
	if path == "" {
		return false, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading config %s: %w", path, err)
	}
	return true, nil
}
