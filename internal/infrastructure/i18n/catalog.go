package i18n

import (
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

var messages = newMessageCatalog(map[string]map[string]string{
	LocaleEN: messagesEN,
	LocaleES: messagesES,
	LocalePT: messagesPT,
})

// messageCatalog holds the message tables compiled into an x/text catalog.
// Named {placeholders} become indexed verbs, so every locale of a key reads
// its arguments in the same order.
type messageCatalog struct {
	builder *catalog.Builder
	tags    map[string]language.Tag
	// params lists, per key, the placeholder names in argument order.
	params map[string][]string
}

func newMessageCatalog(tables map[string]map[string]string) *messageCatalog {
	c := &messageCatalog{
		builder: catalog.NewBuilder(catalog.Fallback(language.English)),
		tags:    make(map[string]language.Tag, len(tables)),
		params:  map[string][]string{},
	}

	names := map[string]map[string]bool{}
	for _, table := range tables {
		for key, msg := range table {
			if names[key] == nil {
				names[key] = map[string]bool{}
			}
			for _, m := range placeholderRe.FindAllStringSubmatch(msg, -1) {
				names[key][m[1]] = true
			}
		}
	}
	for key, set := range names {
		list := make([]string, 0, len(set))
		for name := range set {
			list = append(list, name)
		}
		sort.Strings(list)
		c.params[key] = list
	}

	for locale, table := range tables {
		tag := language.Make(locale)
		c.tags[locale] = tag
		for key, msg := range table {
			if err := c.builder.SetString(tag, key, c.compile(key, msg)); err != nil {
				log.Printf("[i18n][catalog] warn: message not registered locale=%s key=%s err=%v", locale, key, err)
			}
		}
	}
	return c
}

// compile rewrites {name} into %[n]s following the key's parameter order.
func (c *messageCatalog) compile(key, msg string) string {
	msg = strings.ReplaceAll(msg, "%", "%%")
	order := c.params[key]
	return placeholderRe.ReplaceAllStringFunc(msg, func(ph string) string {
		name := ph[1 : len(ph)-1]
		i := sort.SearchStrings(order, name)
		return fmt.Sprintf("%%[%d]s", i+1)
	})
}

// has reports whether locale itself carries key, without fallback.
func (c *messageCatalog) has(locale, key string) bool {
	tag, ok := c.tags[locale]
	if !ok {
		return false
	}
	return c.builder.Context(tag, discardRenderer{}).Execute(key) != catalog.ErrNotFound
}

// args orders params for key. A missing param renders as its placeholder.
func (c *messageCatalog) args(key string, params map[string]string) []any {
	order := c.params[key]
	if len(order) == 0 {
		return nil
	}
	out := make([]any, len(order))
	for i, name := range order {
		if v, ok := params[name]; ok {
			out[i] = v
		} else {
			out[i] = "{" + name + "}"
		}
	}
	return out
}

type discardRenderer struct{}

func (discardRenderer) Render(string) {}
func (discardRenderer) Arg(int) any   { return nil }
