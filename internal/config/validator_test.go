package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
		errMsg    []string
	}{
		{
			name:  "Defaults",
			setup: func() {},
		},
		{
			name: "Turkish locale with metrics",
			setup: func() {
				viper.Set(KeyLocale, "tr-TR")
				viper.Set(KeyMetricsAddr, "127.0.0.1:2112")
			},
		},
		{
			name: "Metrics on all interfaces",
			setup: func() {
				viper.Set(KeyMetricsAddr, ":9090")
			},
		},
		{
			name: "Unsupported locale",
			setup: func() {
				viper.Set(KeyLocale, "xx-YY")
			},
			wantError: true,
			errMsg:    []string{"locale must be one of en-US, tr-TR"},
		},
		{
			name: "Metrics address without port",
			setup: func() {
				viper.Set(KeyMetricsAddr, "localhost")
			},
			wantError: true,
			errMsg:    []string{"metrics_addr must be host:port"},
		},
		{
			name: "Metrics port out of range",
			setup: func() {
				viper.Set(KeyMetricsAddr, "localhost:70000")
			},
			wantError: true,
			errMsg:    []string{"port must be between 1 and 65535"},
		},
		{
			name: "Multiple Errors",
			setup: func() {
				viper.Set(KeyLocale, "xx-YY")
				viper.Set(KeyMetricsAddr, "localhost:0")
			},
			wantError: true,
			errMsg:    []string{"locale must be one of", "port must be between 1 and 65535"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			viper.SetDefault(KeyLocale, "en-US")
			tt.setup()

			err := ValidateConfig()
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.errMsg {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}
