package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys understood by the calculator.
const (
	KeyLocale      = "locale"
	KeyVerbose     = "verbose"
	KeyLogFile     = "log_file"
	KeyMetricsAddr = "metrics_addr"
	KeyNoColor     = "no_color"
)

// EnvPrefix is prepended to every environment override, e.g. CALC_LOCALE.
const EnvPrefix = "CALC"

// Load initializes the configuration from .env, an optional YAML file and
// environment variables. A missing default config file is not an error; a
// missing or unreadable explicit cfgFile is.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("calc")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyLocale, "en-US")
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyMetricsAddr, "")
	viper.SetDefault(KeyNoColor, false)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}
