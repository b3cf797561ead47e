package main

import (
	"fmt"
	"io"
	"os"

	"calc/internal/batch"
	"calc/internal/config"
	"calc/internal/i18n"
	"calc/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var batchFormat string

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Evaluate one \"A OP B\" operation per line",
	Long: `Reads lines of the form "A OP B" from a file (or stdin when the file is
omitted or "-") and evaluates each one independently. Blank lines and lines
starting with '#' are skipped. Exits with status 1 if any line failed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "text", "Output format: text, csv or json")
}

func runBatch(cmd *cobra.Command, args []string) error {
	serveMetrics()
	locale := viper.GetString(config.KeyLocale)
	w, err := batch.NewWriter(batchFormat, cmd.OutOrStdout(), cmd.ErrOrStderr(), func(err error) string {
		return i18n.Localize(locale, err)
	})
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	stats, err := batch.Run(in, engine, func(r batch.Record) error {
		recorder.Observe(operatorLabel(r), r.Result, r.Err)
		return w.Write(r)
	})
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	telemetry.LogInfof("batch finished: %d lines, %d failed", stats.Total, stats.Failed)
	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d lines failed", stats.Failed, stats.Total)
	}
	return nil
}

func operatorLabel(r batch.Record) string {
	if len(r.Op) == 1 {
		switch r.Op[0] {
		case '+', '-', '*', '/':
			return r.Op
		}
	}
	return invalidOperatorLabel
}
