// Package i18n translates user-facing wizard messages and formats amounts
// for the configured locale. Message keys are the English texts.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var supported = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[string]string{
	language.Arabic: arabic,
}

// Localizer renders messages for one locale.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for locale (e.g. "en", "ar", "ar-SA"). Unknown
// locales fall back to English.
func New(locale string) *Localizer {
	tag := language.English
	if parsed, err := language.Parse(locale); err == nil {
		_, idx, conf := matcher.Match(parsed)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return &Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

// Tag returns the resolved language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// RTL reports whether the locale is written right to left.
func (l *Localizer) RTL() bool {
	return l.tag == language.Arabic
}

// T translates key. Unknown keys, such as backend messages, are returned
// as is. Args are formatted into the translation with fmt verbs.
func (l *Localizer) T(key string, args ...any) string {
	text := key
	if tr, ok := catalogs[l.tag][key]; ok {
		text = tr
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// Amount formats a money amount with grouping separators.
func (l *Localizer) Amount(v float64) string {
	return l.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
