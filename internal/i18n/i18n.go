// Package i18n is the lookup table behind violation messages.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Params are the named parameters of a message.
type Params = map[string]any

// args gives a message typed access to its parameters. Missing or mistyped
// parameters read as zero values.
type args struct {
	params  Params
	printer *message.Printer
}

func (a args) str(name string) string {
	s, _ := a.params[name].(string)
	return s
}

func (a args) boolean(name string) bool {
	b, _ := a.params[name].(bool)
	return b
}

// num renders a numeric parameter with locale-aware formatting.
func (a args) num(name string) string {
	switch v := a.params[name].(type) {
	case int, int64, float64:
		return a.printer.Sprint(v)
	case nil:
		return a.printer.Sprint(0)
	default:
		return fmt.Sprint(v)
	}
}

func (a args) has(name string) bool {
	_, ok := a.params[name]
	return ok
}

type entry func(a args) string

// text is an entry without parameters.
func text(s string) entry {
	return func(args) string { return s }
}

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

var tables = map[language.Tag]map[string]entry{
	language.English: english,
	language.Spanish: spanish,
}

// Translator resolves message keys for one locale.
type Translator struct {
	tag     language.Tag
	table   map[string]entry
	printer *message.Printer
}

// New returns a translator for the best supported match of locale, which may
// be a BCP 47 tag or an Accept-Language header value. Unsupported or empty
// locales fall back to English.
func New(locale string) *Translator {
	tag := language.English

	if tags, _, err := language.ParseAcceptLanguage(locale); err == nil && len(tags) > 0 {
		_, idx, conf := matcher.Match(tags...)
		if conf != language.No {
			tag = supported[idx]
		}
	}

	return &Translator{
		tag:     tag,
		table:   tables[tag],
		printer: message.NewPrinter(tag),
	}
}

// Locale is the language messages are rendered in.
func (t *Translator) Locale() language.Tag {
	return t.tag
}

// Translate renders the message for key. Keys missing from the locale fall
// back to English, and unknown keys are returned as is.
func (t *Translator) Translate(key string, params Params) string {
	e, ok := t.table[key]
	if !ok {
		e, ok = english[key]
	}

	if !ok {
		return key
	}

	return e(args{params: params, printer: t.printer})
}
