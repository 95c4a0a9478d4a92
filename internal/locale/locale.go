// Package locale resolves label keys to display strings.
package locale

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownLocale is returned by For when no table exists for a language.
var ErrUnknownLocale = errors.New("unknown locale")

// Default is the language used when none is configured.
const Default = "en"

// Resolver maps a label key to a display string.
type Resolver interface {
	Label(key string) string
}

// Table is a Resolver backed by a fixed map. Unknown keys resolve to themselves.
type Table map[string]string

// Label implements Resolver.
func (t Table) Label(key string) string {
	if s, ok := t[key]; ok {
		return s
	}
	return key
}

// For returns the table for lang ("en", "es"). Region suffixes such as
// "es-MX" or "en_US.UTF-8" are ignored.
func For(lang string) (Table, error) {
	code := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(code, "-_."); i >= 0 {
		code = code[:i]
	}
	if code == "" {
		code = Default
	}
	t, ok := tables[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, lang)
	}
	return t, nil
}

// Languages lists the available language codes in sorted order.
func Languages() []string {
	langs := make([]string, 0, len(tables))
	for code := range tables {
		langs = append(langs, code)
	}
	sort.Strings(langs)
	return langs
}

var tables = map[string]Table{
	"en": english,
	"es": spanish,
}
