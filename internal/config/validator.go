package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"calc/internal/i18n"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error listing
// every problem found. Call it after Load.
func ValidateConfig() error {
	var errors []string

	locale := viper.GetString(KeyLocale)
	if !i18n.Supported(locale) {
		errors = append(errors, fmt.Sprintf("locale must be one of %s, got: %q",
			strings.Join(i18n.Locales(), ", "), locale))
	}

	if addr := viper.GetString(KeyMetricsAddr); addr != "" {
		if err := validateAddr(addr); err != nil {
			errors = append(errors, fmt.Sprintf("metrics_addr %v", err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}
	return nil
}

func validateAddr(addr string) error {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("must be host:port, got: %q", addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %q", portStr)
	}
	return nil
}
