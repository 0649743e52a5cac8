// Package i18n resolves request locales against the supported set and loads
// translated message bundles, falling back to the baseline locale when a
// bundle is missing or unreadable. The supported set is closed; unknown
// locale codes resolve to the default.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Locales supported by the platform. The first entry is both the default
// and the baseline fallback bundle.
var (
	DefaultLocale  = "en"
	BaselineLocale = "en"

	SupportedLocales = []string{"en", "de", "fr", "es", "it", "pt-BR", "ja"}
)

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, 0, len(SupportedLocales))
	for _, l := range SupportedLocales {
		tags = append(tags, language.MustParse(l))
	}
	matcher = language.NewMatcher(tags)
}

// IsSupported reports whether code is exactly one of the supported locales
func IsSupported(code string) bool {
	for _, l := range SupportedLocales {
		if l == code {
			return true
		}
	}
	return false
}

// Resolve maps a requested locale string to a supported locale. Exact
// matches win; otherwise the language matcher picks the closest supported
// tag ("en-GB" resolves to "en"); anything unparseable or unsupported
// resolves to the default.
func Resolve(requested string) string {
	if requested == "" {
		return DefaultLocale
	}
	if IsSupported(requested) {
		return requested
	}

	tag, err := language.Parse(requested)
	if err != nil {
		return DefaultLocale
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLocale
	}
	return SupportedLocales[index]
}

// ResolveAcceptLanguage resolves an Accept-Language header value
func ResolveAcceptLanguage(header string) string {
	if header == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return SupportedLocales[index]
}

// Bundle holds the translated strings for one locale
type Bundle struct {
	Locale   string
	messages map[string]string
}

// T returns the translation for key, or the key itself when missing
func (b *Bundle) T(key string) string {
	if msg, ok := b.messages[key]; ok {
		return msg
	}
	return key
}

// BundleResult reports which bundle was actually loaded. FallbackUsed is
// true when the requested locale's bundle could not be loaded and the
// baseline bundle was substituted, so callers can log the substitution.
type BundleResult struct {
	Bundle       *Bundle
	FallbackUsed bool
}

// LookupBundle loads the bundle for a resolved locale. A missing or
// malformed bundle falls back to the baseline locale rather than failing;
// only a broken baseline bundle returns an error.
func LookupBundle(locale string) (BundleResult, error) {
	bundle, err := loadBundle(locale)
	if err == nil {
		return BundleResult{Bundle: bundle}, nil
	}

	baseline, baseErr := loadBundle(BaselineLocale)
	if baseErr != nil {
		return BundleResult{}, fmt.Errorf("baseline bundle %q unavailable: %w", BaselineLocale, baseErr)
	}
	return BundleResult{Bundle: baseline, FallbackUsed: true}, nil
}

func loadBundle(locale string) (*Bundle, error) {
	data, err := localeFS.ReadFile("locales/" + locale + ".json")
	if err != nil {
		return nil, err
	}
	messages := make(map[string]string)
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("malformed bundle %q: %w", locale, err)
	}
	return &Bundle{Locale: locale, messages: messages}, nil
}
