// Package batch evaluates newline-separated "A OP B" lines, one independent
// operation per line.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"calc/internal/arith"
)

// Record is the outcome of one input line.
type Record struct {
	Line   int
	A, B   float64
	Op     string
	Result float64
	Err    error
}

// Stats summarizes a run.
type Stats struct {
	Total  int
	Failed int
}

// MaxLineLength bounds one input line. Longer lines fail on their own and
// the run continues with the next line.
const MaxLineLength = 4096

// Run reads lines from r and calls emit for every evaluated line. Blank
// lines and lines starting with '#' are skipped. A line failing does not
// stop the run; an emit or read error does.
func Run(r io.Reader, engine *arith.Engine, emit func(Record) error) (Stats, error) {
	var stats Stats
	br := bufio.NewReaderSize(r, MaxLineLength)
	lineNo := 0
	for {
		line, tooLong, err := readLine(br)
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read input: %w", err)
		}
		lineNo++

		var rec Record
		if tooLong {
			rec = Record{Line: lineNo, Err: fmt.Errorf("line too long (limit %d bytes)", MaxLineLength)}
		} else {
			text := strings.TrimSpace(line)
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}
			rec = Evaluate(engine, lineNo, text)
		}

		stats.Total++
		if rec.Err != nil {
			stats.Failed++
		}
		if err := emit(rec); err != nil {
			return stats, err
		}
	}
}

// readLine returns the next line without its terminator. When the line does
// not fit the reader's buffer the rest of it is discarded and tooLong is set.
func readLine(br *bufio.Reader) (string, bool, error) {
	chunk, isPrefix, err := br.ReadLine()
	if err != nil {
		return "", false, err
	}
	if !isPrefix {
		return string(chunk), false, nil
	}
	for isPrefix {
		_, isPrefix, err = br.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", false, err
		}
	}
	return "", true, nil
}

// Evaluate parses and computes a single "A OP B" line.
func Evaluate(engine *arith.Engine, lineNo int, text string) Record {
	rec := Record{Line: lineNo}
	fields := strings.Fields(text)
	if len(fields) != 3 {
		rec.Err = fmt.Errorf("expected \"A OP B\", got %q", text)
		return rec
	}
	rec.Op = fields[1]

	a, err := arith.ParseOperand(fields[0])
	if err != nil {
		rec.Err = err
		return rec
	}
	rec.A = a

	op, err := arith.ParseOperator(fields[1])
	if err != nil {
		rec.Err = err
		return rec
	}

	b, err := arith.ParseOperand(fields[2])
	if err != nil {
		rec.Err = err
		return rec
	}
	rec.B = b

	rec.Result, rec.Err = engine.Apply(op, a, b)
	return rec
}
