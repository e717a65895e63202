// Package i18n resolves the message keys emitted by the use cases into
// English, Spanish or Portuguese text and formats prices for display.
package i18n

import (
	"sort"
	"strings"

	"barberapp/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	LocaleEN = "en"
	LocaleES = "es"
	LocalePT = "pt"

	fallbackLocale = LocaleEN
)

var supportedTags = []language.Tag{language.English, language.Spanish, language.Portuguese}

// Translator renders catalog messages by locale and key.
type Translator struct {
	defaultLocale string
	matcher       language.Matcher
	printers      map[string]*message.Printer
}

// RenderedNotification is a notification resolved against one locale.
type RenderedNotification struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant"`
}

// NewTranslator returns a translator falling back to defaultLocale when a
// request does not name a supported language.
func NewTranslator(defaultLocale string) *Translator {
	t := &Translator{
		matcher:  language.NewMatcher(supportedTags),
		printers: make(map[string]*message.Printer, len(supportedTags)),
	}
	for _, tag := range supportedTags {
		base, _ := tag.Base()
		t.printers[base.String()] = message.NewPrinter(tag, message.Catalog(messages.builder))
	}
	t.defaultLocale = t.match(defaultLocale, "")
	if t.defaultLocale == "" {
		t.defaultLocale = fallbackLocale
	}
	return t
}

// DefaultLocale returns the locale used when negotiation finds nothing.
func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// Locales lists the supported locales.
func Locales() []string {
	out := make([]string, 0, len(supportedTags))
	for _, tag := range supportedTags {
		base, _ := tag.Base()
		out = append(out, base.String())
	}
	sort.Strings(out)
	return out
}

// Negotiate picks the locale for a request: an explicit query value wins over
// the Accept-Language header.
func (t *Translator) Negotiate(query, acceptLanguage string) string {
	if l := t.match(query, acceptLanguage); l != "" {
		return l
	}
	return t.defaultLocale
}

func (t *Translator) match(query, acceptLanguage string) string {
	var desired []language.Tag
	if q := strings.TrimSpace(query); q != "" {
		if tag, err := language.Parse(q); err == nil {
			desired = append(desired, tag)
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			desired = append(desired, tags...)
		}
	}
	if len(desired) == 0 {
		return ""
	}
	_, idx, conf := t.matcher.Match(desired...)
	if conf == language.No {
		return ""
	}
	base, _ := supportedTags[idx].Base()
	return base.String()
}

// T returns the message for key in locale with {placeholders} replaced by params.
// Missing keys fall back to English and then to the key itself.
func (t *Translator) T(locale, key string, params map[string]string) string {
	if !messages.has(locale, key) {
		locale = fallbackLocale
		if !messages.has(locale, key) {
			return key
		}
	}
	return t.printers[locale].Sprintf(key, messages.args(key, params)...)
}

// Render resolves a notification. Localized params are translated before interpolation.
func (t *Translator) Render(locale string, n entities.Notification) RenderedNotification {
	params := make(map[string]string, len(n.Params)+len(n.LocalizedParams))
	for k, v := range n.Params {
		params[k] = v
	}
	for k, key := range n.LocalizedParams {
		params[k] = t.T(locale, key, nil)
	}

	out := RenderedNotification{
		Title:   t.T(locale, n.TitleKey, params),
		Variant: string(n.Variant),
	}
	if n.DescriptionKey != "" {
		out.Description = t.T(locale, n.DescriptionKey, params)
	}
	return out
}

// Fields translates a field -> message key map.
func (t *Translator) Fields(locale string, fields map[string]string) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(fields))
	for field, key := range fields {
		out[field] = t.T(locale, key, nil)
	}
	return out
}

// CategoryLabel returns the translated label of a category key, or original
// when the locale has no entry for it.
func (t *Translator) CategoryLabel(locale, categoryKey, original string) string {
	key := "services_page.category_" + categoryKey
	if messages.has(locale, key) {
		return t.T(locale, key, nil)
	}
	if original != "" {
		return original
	}
	return t.T(locale, "services_page.category_"+entities.DefaultCategoryKey, nil)
}
