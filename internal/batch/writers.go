package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"calc/internal/arith"
	calcerrors "calc/internal/errors"
	"calc/internal/ui"
)

// Writer renders records in one output format.
type Writer interface {
	Write(Record) error
	Flush() error
}

// Localizer turns an error into user-facing text.
type Localizer func(error) string

// WriterFactory builds a Writer over stdout/stderr.
type WriterFactory func(out, errOut io.Writer, localize Localizer) Writer

// Writers maps format names to factories.
var Writers = map[string]WriterFactory{
	"text": newTextWriter,
	"csv":  newCSVWriter,
	"json": newJSONWriter,
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(Writers))
	for name := range Writers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NewWriter returns the writer registered for format.
func NewWriter(format string, out, errOut io.Writer, localize Localizer) (Writer, error) {
	fn, ok := Writers[format]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (want one of %v)", format, Formats())
	}
	return fn(out, errOut, localize), nil
}

type textWriter struct {
	out, errOut io.Writer
	localize    Localizer
}

func newTextWriter(out, errOut io.Writer, localize Localizer) Writer {
	return &textWriter{out: out, errOut: errOut, localize: localize}
}

func (w *textWriter) Write(r Record) error {
	if r.Err != nil {
		_, err := fmt.Fprintln(w.errOut, ui.Error(w.errOut, fmt.Sprintf("line %d: %s", r.Line, w.localize(r.Err))))
		return err
	}
	_, err := fmt.Fprintln(w.out, ui.Result(w.out, arith.FormatEquation(r.A, arith.Operator(r.Op[0]), r.B, r.Result)))
	return err
}

func (w *textWriter) Flush() error { return nil }

var csvHeader = []string{"line", "a", "op", "b", "result", "error"}

type csvWriter struct {
	w        *csv.Writer
	localize Localizer
	header   bool
}

func newCSVWriter(out, _ io.Writer, localize Localizer) Writer {
	return &csvWriter{w: csv.NewWriter(out), localize: localize}
}

func (w *csvWriter) Write(r Record) error {
	if !w.header {
		if err := w.w.Write(csvHeader); err != nil {
			return err
		}
		w.header = true
	}
	row := []string{strconv.Itoa(r.Line), "", r.Op, "", "", ""}
	if r.Err != nil {
		row[5] = w.localize(r.Err)
	} else {
		row[1] = arith.FormatNumber(r.A)
		row[3] = arith.FormatNumber(r.B)
		row[4] = arith.FormatNumber(r.Result)
	}
	return w.w.Write(row)
}

func (w *csvWriter) Flush() error {
	if !w.header {
		if err := w.w.Write(csvHeader); err != nil {
			return err
		}
		w.header = true
	}
	w.w.Flush()
	return w.w.Error()
}

type jsonRecord struct {
	Line   int      `json:"line"`
	A      *float64 `json:"a,omitempty"`
	Op     string   `json:"op"`
	B      *float64 `json:"b,omitempty"`
	Result *float64 `json:"result,omitempty"`
	Error  string   `json:"error,omitempty"`
	Code   string   `json:"code,omitempty"`
}

type jsonWriter struct {
	enc      *json.Encoder
	localize Localizer
}

func newJSONWriter(out, _ io.Writer, localize Localizer) Writer {
	return &jsonWriter{enc: json.NewEncoder(out), localize: localize}
}

func (w *jsonWriter) Write(r Record) error {
	rec := jsonRecord{Line: r.Line, Op: r.Op}
	if r.Err != nil {
		rec.Error = w.localize(r.Err)
		rec.Code = string(calcerrors.CodeOf(r.Err))
	} else {
		a, b, res := r.A, r.B, r.Result
		rec.A, rec.B, rec.Result = &a, &b, &res
	}
	return w.enc.Encode(rec)
}

func (w *jsonWriter) Flush() error { return nil }
