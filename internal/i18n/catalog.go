// Package i18n localizes calculator error messages.
package i18n

import (
	"bytes"
	"errors"
	"strings"
	"text/template"

	calcerrors "calc/internal/errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	// BaseLocale is the fallback locale.
	BaseLocale = "en-US"
)

var (
	supported = []language.Tag{
		language.MustParse(BaseLocale),
		language.MustParse("tr-TR"),
	}
	matcher = language.NewMatcher(supported)
	builder = mustBuildCatalog()
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for locale, messages := range locales {
		tag := language.MustParse(locale)
		for code, tmpl := range messages {
			if err := b.SetString(tag, string(code), tmpl); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Resolve maps a requested locale onto a supported one. ok is false when
// nothing matched and the base locale was chosen.
func Resolve(locale string) (tag language.Tag, ok bool) {
	requested, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return supported[0], false
	}
	_, idx, conf := matcher.Match(requested)
	if conf == language.No {
		return supported[0], false
	}
	return supported[idx], true
}

// Supported reports whether locale resolves to a translated catalog.
func Supported(locale string) bool {
	_, ok := Resolve(locale)
	return ok
}

// Locales returns the supported locale identifiers.
func Locales() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, tag.String())
	}
	return out
}

// Localize returns the user-facing message for err in locale. Errors
// without a code fall back to err.Error().
func Localize(locale string, err error) string {
	if err == nil {
		return ""
	}
	code := calcerrors.CodeOf(err)
	if code == calcerrors.CodeUnknown {
		return err.Error()
	}

	tag, _ := Resolve(locale)
	p := message.NewPrinter(tag, message.Catalog(builder))
	tmpl := p.Sprintf(string(code))
	if tmpl == string(code) {
		return err.Error()
	}

	var metadata map[string]string
	var coded *calcerrors.Error
	if errors.As(err, &coded) {
		metadata = coded.Metadata
	}
	return format(tmpl, metadata)
}

func format(tmpl string, metadata map[string]string) string {
	if metadata == nil {
		metadata = map[string]string{}
	}
	t, err := template.New("msg").Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}
