package main

import (
	"fmt"
	"os"

	"calc/internal/config"
	"calc/internal/i18n"
	"calc/internal/telemetry"
	"calc/internal/ui"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd runs the interactive calculator when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Four-function calculator with a result magnitude policy",
	Long: `calc reads two numbers and an operator (+, -, *, /), computes the result
and rejects results whose magnitude is above 1000 or below 0.001 (zero is
always accepted).`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Global flags are parsed before the subcommand name, which matters for
	// the one-shot commands that take raw arguments.
	TraverseChildren: true,
	RunE:             runInteractive,
}

// Execute runs the root command and exits 1 after reporting any error.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd, err)
		exit(1)
	}
}

// reportError prints "[ERROR] <localized message>" to the error stream.
func reportError(cmd *cobra.Command, err error) {
	telemetry.LogError("calculation failed", err)
	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(errOut, ui.Error(errOut, i18n.Localize(viper.GetString(config.KeyLocale), err)))
}

func init() {
	cobra.OnInitialize(initConfig)

	fs := rootCmd.PersistentFlags()
	fs.StringVar(&cfgFile, "config", "", "config file (default is ./calc.yaml)")
	fs.BoolP("verbose", "v", false, "Enable verbose/debug logging on stderr")
	fs.String("locale", "", "Locale for error messages (en-US, tr-TR)")
	fs.Bool("no-color", false, "Disable colored output")
	// Traverse looks flags up on Flags(); without the merge, boolean
	// persistent flags would swallow the subcommand name as their value.
	rootCmd.Flags().AddFlagSet(fs)
	bindGlobalFlags(fs)
}

// bindGlobalFlags binds the persistent flags into viper.
func bindGlobalFlags(fs *pflag.FlagSet) {
	viper.BindPFlag(config.KeyVerbose, fs.Lookup("verbose"))
	viper.BindPFlag(config.KeyLocale, fs.Lookup("locale"))
	viper.BindPFlag(config.KeyNoColor, fs.Lookup("no-color"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	telemetry.InitLogger(viper.GetBool(config.KeyVerbose), viper.GetString(config.KeyLogFile))
	ui.SetNoColor(viper.GetBool(config.KeyNoColor))
	if used := viper.ConfigFileUsed(); used != "" {
		telemetry.LogDebug("Using config file", "path", used)
	}
}

var startMetricsServer = telemetry.StartMetricsServer

// serveMetrics exposes /metrics for the rest of a session when metrics_addr
// is set. One-shot commands exit too quickly to be scraped and skip it.
func serveMetrics() {
	addr := viper.GetString(config.KeyMetricsAddr)
	if addr == "" {
		return
	}
	go func() {
		if err := startMetricsServer(addr, prometheus.DefaultGatherer); err != nil {
			telemetry.LogError("Failed to start metrics server", err, "addr", addr)
		}
	}()
}
