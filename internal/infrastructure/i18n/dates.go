package i18n

import "time"

var dateTimeLayouts = map[string]string{
	LocaleEN: "01/02/2006 3:04 PM",
	LocaleES: "02/01/2006 15:04",
	LocalePT: "02/01/2006 15:04",
}

// FormatDateTime renders t (in UTC) with the numeric layout of locale.
func FormatDateTime(locale string, t time.Time) string {
	layout, ok := dateTimeLayouts[locale]
	if !ok {
		layout = dateTimeLayouts[fallbackLocale]
	}
	return t.UTC().Format(layout)
}
