package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"calc/internal/arith"
	"calc/internal/ui"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var askOneFunc = survey.AskOne

// stdinIsTerminal decides between survey prompts and plain line input.
var stdinIsTerminal = func(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

const (
	promptFirst  = "First number: "
	promptSecond = "Second number: "
)

var promptOperator = operatorPrompt()

// operatorPrompt lists the supported operators, e.g. "Operator (+, -, *, /): ".
func operatorPrompt() string {
	symbols := make([]string, len(arith.Operators))
	for i, op := range arith.Operators {
		symbols[i] = op.String()
	}
	return "Operator (" + strings.Join(symbols, ", ") + "): "
}

type prompter interface {
	operand(label string) (float64, error)
	operator(label string) (string, error)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	serveMetrics()
	out := cmd.OutOrStdout()

	var p prompter
	if stdinIsTerminal(cmd.InOrStdin()) {
		fmt.Fprintln(out, ui.Banner(out, "Calculator"))
		p = surveyPrompter{}
	} else {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, ui.Banner(errOut, "Calculator"))
		p = newLinePrompter(cmd.InOrStdin(), errOut)
	}

	a, err := p.operand(promptFirst)
	if err != nil {
		return err
	}
	b, err := p.operand(promptSecond)
	if err != nil {
		return err
	}
	rawOp, err := p.operator(promptOperator)
	if err != nil {
		return err
	}

	op, err := parseOperator(rawOp)
	if err != nil {
		return err
	}
	result, err := evaluate(op, a, b)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.Result(out, arith.FormatEquation(a, op, b, result)))
	return nil
}

// surveyPrompter re-asks until an operand parses.
type surveyPrompter struct{}

func (surveyPrompter) operand(label string) (float64, error) {
	var raw string
	err := askOneFunc(&survey.Input{Message: label}, &raw, survey.WithValidator(validateOperand))
	if err != nil {
		return 0, err
	}
	return arith.ParseOperand(raw)
}

func (surveyPrompter) operator(label string) (string, error) {
	var raw string
	if err := askOneFunc(&survey.Input{Message: label}, &raw); err != nil {
		return "", err
	}
	return raw, nil
}

func validateOperand(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected text input, got %T", ans)
	}
	_, err := arith.ParseOperand(s)
	return err
}

// linePrompter reads one line per value and fails on bad input.
type linePrompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{sc: bufio.NewScanner(in), out: out}
}

func (p *linePrompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, ui.Prompt(p.out, label))
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("failed to read input: %w", io.ErrUnexpectedEOF)
	}
	return p.sc.Text(), nil
}

func (p *linePrompter) operand(label string) (float64, error) {
	raw, err := p.readLine(label)
	if err != nil {
		return 0, err
	}
	return arith.ParseOperand(raw)
}

func (p *linePrompter) operator(label string) (string, error) {
	return p.readLine(label)
}
