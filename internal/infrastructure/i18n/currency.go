package i18n

import (
	"fmt"
	"log"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReferenceCurrencySymbol is the glyph of the currency every price is stored in.
const ReferenceCurrencySymbol = "R$"

// referenceLocale formats prices when the caller does not name a locale.
const referenceLocale = "pt-BR"

var referenceCurrency = currency.BRL

// FormatCurrency renders price in the reference currency using the grouping
// and decimal conventions of locale. It never panics: an unknown locale, or a
// failure inside the formatter, falls back to "R$" + two decimals.
func FormatCurrency(locale string, price float64) (out string) {
	if strings.TrimSpace(locale) == "" {
		locale = referenceLocale
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fallbackCurrency(price)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fallbackCurrency(price)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[i18n][currency] warn: formatter panicked locale=%s err=%v", locale, r)
			out = fallbackCurrency(price)
		}
	}()

	p := message.NewPrinter(tag)
	out = p.Sprint(currency.NarrowSymbol(referenceCurrency.Amount(price)))
	// Locales without a local glyph for the reference currency emit the ISO code.
	return strings.Replace(out, referenceCurrency.String(), ReferenceCurrencySymbol, 1)
}

func fallbackCurrency(price float64) string {
	return fmt.Sprintf("%s%.2f", ReferenceCurrencySymbol, price)
}
