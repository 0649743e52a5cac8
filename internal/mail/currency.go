package mail

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbols maps ISO codes to display symbols for the currencies
// tenants actually price in. Unknown codes fall back to "CODE amount".
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"BRL": "R$",
	"CHF": "CHF",
	"AUD": "A$",
	"CAD": "C$",
}

// symbolSuffixLanguages render the currency symbol after the amount
// ("1.234,56 €") rather than before it.
var symbolSuffixLanguages = map[string]bool{
	"de": true,
	"fr": true,
	"es": true,
	"it": true,
	"pt": true,
}

// FormatCurrency renders an amount in minor units (cents, yen) as a
// locale-formatted currency string. Zero-decimal currencies such as JPY
// carry no fraction digits; negative amounts keep a leading sign.
func FormatCurrency(amountMinor int64, code string, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	scale := 2
	if unit, err := currency.ParseISO(code); err == nil {
		if s, _ := currency.Cash.Rounding(unit); s >= 0 {
			scale = s
		}
	}

	negative := amountMinor < 0
	abs := amountMinor
	if negative {
		abs = -abs
	}
	major := float64(abs) / math.Pow10(scale)

	p := message.NewPrinter(tag)
	num := p.Sprintf("%v", number.Decimal(major,
		number.MinFractionDigits(scale),
		number.MaxFractionDigits(scale),
	))

	symbol, known := currencySymbols[code]
	base, _ := tag.Base()

	var out string
	switch {
	case !known:
		out = code + " " + num
	case symbolSuffixLanguages[base.String()]:
		out = num + " " + symbol
	default:
		out = symbol + num
	}

	if negative {
		return "-" + out
	}
	return out
}
