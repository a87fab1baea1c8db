package srs

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

const (
	unitMinute = "interval_minute"
	unitHour   = "interval_hour"
	unitDay    = "interval_day"
)

// unitTexts holds the cardinal forms per locale. Each locale must cover all of
// its plural rules or VerifyTranslations fails.
var unitTexts = map[string]map[string]map[locales.PluralRule]string{
	"en": {
		unitMinute: {locales.PluralRuleOne: "{0} minute", locales.PluralRuleOther: "{0} minutes"},
		unitHour:   {locales.PluralRuleOne: "{0} hour", locales.PluralRuleOther: "{0} hours"},
		unitDay:    {locales.PluralRuleOne: "{0} day", locales.PluralRuleOther: "{0} days"},
	},
	"ja": {
		unitMinute: {locales.PluralRuleOther: "{0}分"},
		unitHour:   {locales.PluralRuleOther: "{0}時間"},
		unitDay:    {locales.PluralRuleOther: "{0}日"},
	},
}

// IntervalFormatter renders review intervals as short localized labels.
type IntervalFormatter struct {
	trans ut.Translator
}

// NewIntervalFormatter builds a formatter for locale ("en" or "ja"). Empty means DefaultLocale.
func NewIntervalFormatter(locale string) (*IntervalFormatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	texts, ok := unitTexts[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	english := en.New()
	uni := ut.New(english, english, ja.New())
	trans, found := uni.GetTranslator(locale)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	for key, forms := range texts {
		for rule, text := range forms {
			if err := trans.AddCardinal(key, text, rule, false); err != nil {
				return nil, fmt.Errorf("srs: register %s for %s: %w", key, locale, err)
			}
		}
	}
	if err := trans.VerifyTranslations(); err != nil {
		return nil, fmt.Errorf("srs: verify %s translations: %w", locale, err)
	}
	return &IntervalFormatter{trans: trans}, nil
}

// Locale returns the formatter's locale name.
func (f *IntervalFormatter) Locale() string {
	return f.trans.Locale()
}

// Format picks minutes below one hour, days from 24 hours up, hours in between.
func (f *IntervalFormatter) Format(d time.Duration) string {
	key, n := bucket(d)
	label, err := f.trans.C(key, float64(n), 0, strconv.Itoa(n))
	if err != nil {
		return fallbackLabel(key, n)
	}
	return label
}

func bucket(d time.Duration) (string, int) {
	switch {
	case d < time.Hour:
		n := int(math.Round(d.Minutes()))
		if n < 1 {
			n = 1
		}
		return unitMinute, n
	case d >= 24*time.Hour:
		return unitDay, int(math.Round(d.Hours() / 24))
	default:
		return unitHour, int(math.Round(d.Hours()))
	}
}

func fallbackLabel(key string, n int) string {
	switch key {
	case unitMinute:
		return strconv.Itoa(n) + "m"
	case unitHour:
		return strconv.Itoa(n) + "h"
	default:
		return strconv.Itoa(n) + "d"
	}
}
