package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// resetFlags restores every flag to its default so state does not leak
// between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the CLI like main does and returns stdout, stderr and
// the exit code.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()

	oldExit := exit
	code := 0
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		exit = oldExit
		viper.Reset()
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	viper.Reset()
	resetFlags(rootCmd)
	bindGlobalFlags(rootCmd.PersistentFlags())
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	Execute()
	return stdout.String(), stderr.String(), code
}

// assertReported checks that stderr ends with the reported error line.
func assertReported(t *testing.T, stderr, want string) {
	t.Helper()
	assert.True(t, strings.HasSuffix(stderr, want+"\n"), "stderr %q does not end with %q", stderr, want)
}
