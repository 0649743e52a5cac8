package i18n

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		expected  string
	}{
		{"exact match", "de", "de"},
		{"exact regional match", "pt-BR", "pt-BR"},
		{"regional falls back to base language", "en-GB", "en"},
		{"german regional", "de-AT", "de"},
		{"unsupported language", "zh", "en"},
		{"garbage input", "!!not-a-locale!!", "en"},
		{"empty input", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.requested); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.requested, got, tt.expected)
			}
		})
	}
}

func TestResolveAcceptLanguage(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"simple", "fr", "fr"},
		{"weighted", "ja;q=0.9, de;q=0.8", "ja"},
		{"unsupported first", "zh-CN, es;q=0.8", "es"},
		{"all unsupported", "zh-CN, ko;q=0.8", "en"},
		{"empty", "", "en"},
		{"malformed", ";;;", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveAcceptLanguage(tt.header); got != tt.expected {
				t.Errorf("ResolveAcceptLanguage(%q) = %q, want %q", tt.header, got, tt.expected)
			}
		})
	}
}

func TestLookupBundle_Supported(t *testing.T) {
	for _, locale := range SupportedLocales {
		result, err := LookupBundle(locale)
		if err != nil {
			t.Fatalf("LookupBundle(%q) failed: %v", locale, err)
		}
		if result.FallbackUsed {
			t.Errorf("LookupBundle(%q) used fallback for a shipped bundle", locale)
		}
		if result.Bundle.Locale != locale {
			t.Errorf("LookupBundle(%q) loaded bundle %q", locale, result.Bundle.Locale)
		}
	}
}

func TestLookupBundle_MissingFallsBackToBaseline(t *testing.T) {
	result, err := LookupBundle("xx")
	if err != nil {
		t.Fatalf("LookupBundle failed: %v", err)
	}
	if !result.FallbackUsed {
		t.Error("Expected FallbackUsed to be true for a missing bundle")
	}
	if result.Bundle.Locale != BaselineLocale {
		t.Errorf("Expected baseline bundle %q, got %q", BaselineLocale, result.Bundle.Locale)
	}
}

func TestBundleT(t *testing.T) {
	result, err := LookupBundle("de")
	if err != nil {
		t.Fatalf("LookupBundle failed: %v", err)
	}

	if got := result.Bundle.T("nav.tours"); got != "Touren" {
		t.Errorf("T(nav.tours) = %q, want %q", got, "Touren")
	}
	// Missing keys return the key itself, never an empty string
	if got := result.Bundle.T("nav.missing"); got != "nav.missing" {
		t.Errorf("T(nav.missing) = %q, want the key back", got)
	}
}
