package main

import (
	"fmt"

	"calc/internal/arith"
	"calc/internal/ui"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		newOperationCmd("add", arith.Add, "Print A + B"),
		newOperationCmd("subtract", arith.Subtract, "Print A - B"),
		newOperationCmd("multiply", arith.Multiply, "Print A * B"),
		newOperationCmd("divide", arith.Divide, "Print A / B"),
	)
}

// newOperationCmd builds a one-shot command. Flag parsing is disabled so
// negative operands are not mistaken for shorthand flags.
func newOperationCmd(name string, op arith.Operator, short string) *cobra.Command {
	return &cobra.Command{
		Use:                name + " A B",
		Short:              short,
		DisableFlagParsing: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if isHelpArgs(args) {
				return nil
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if isHelpArgs(args) {
				return cmd.Help()
			}
			return runOperation(cmd, op, args[0], args[1])
		},
	}
}

func isHelpArgs(args []string) bool {
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}

func runOperation(cmd *cobra.Command, op arith.Operator, rawA, rawB string) error {
	a, err := arith.ParseOperand(rawA)
	if err != nil {
		return err
	}
	b, err := arith.ParseOperand(rawB)
	if err != nil {
		return err
	}

	result, err := evaluate(op, a, b)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Result(out, arith.FormatEquation(a, op, b, result)))
	return nil
}
