package i18n

import (
	"testing"

	"barberapp/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestTranslator_Negotiate(t *testing.T) {
	tr := NewTranslator("pt")

	cases := []struct {
		name   string
		query  string
		accept string
		want   string
	}{
		{name: "query wins", query: "es", accept: "en-US,en;q=0.9", want: LocaleES},
		{name: "accept language", accept: "pt-BR,pt;q=0.9,en;q=0.8", want: LocalePT},
		{name: "regional english", accept: "en-GB", want: LocaleEN},
		{name: "unsupported falls back to default", accept: "fr-FR", want: LocalePT},
		{name: "garbage falls back to default", query: "@@@", want: LocalePT},
		{name: "nothing", want: LocalePT},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tr.Negotiate(tc.query, tc.accept); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNewTranslator_UnknownDefaultUsesEnglish(t *testing.T) {
	if got := NewTranslator("klingon!").DefaultLocale(); got != LocaleEN {
		t.Fatalf("expected en, got %q", got)
	}
}

func TestTranslator_TInterpolatesAndFallsBack(t *testing.T) {
	tr := NewTranslator("en")

	got := tr.T(LocaleES, "admin_service.add_success_desc", map[string]string{"serviceName": "Corte Clásico"})
	if got != `"Corte Clásico" ha sido añadido.` {
		t.Fatalf("unexpected message %q", got)
	}

	if got := tr.T("de", "admin_service.price_error", nil); got != "Price must be a positive number." {
		t.Fatalf("expected english fallback, got %q", got)
	}

	if got := tr.T(LocalePT, "does.not.exist", nil); got != "does.not.exist" {
		t.Fatalf("expected key fallback, got %q", got)
	}
}

func TestTranslator_RenderResolvesLocalizedParams(t *testing.T) {
	tr := NewTranslator("en")
	n := entities.Notification{
		TitleKey:        "admin_service.toggle_success_title_deactivated",
		DescriptionKey:  "admin_service.toggle_success_desc",
		Params:          map[string]string{"serviceName": "Head Shave"},
		LocalizedParams: map[string]string{"status": "admin_service.status_inactive"},
		Variant:         entities.NotificationDefault,
	}

	got := tr.Render(LocalePT, n)
	if got.Title != "Serviço Desativado" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.Description != `"Head Shave" agora está inativo.` {
		t.Fatalf("unexpected description %q", got.Description)
	}
	if got.Variant != "default" {
		t.Fatalf("unexpected variant %q", got.Variant)
	}
}

func TestTranslator_Fields(t *testing.T) {
	tr := NewTranslator("en")
	got := tr.Fields(LocaleEN, map[string]string{"name": "admin_service.name_error"})
	if got["name"] != "Service name must be at least 3 characters." {
		t.Fatalf("unexpected fields %+v", got)
	}
	if tr.Fields(LocaleEN, nil) != nil {
		t.Fatalf("expected nil for empty fields")
	}
}

func TestTranslator_CategoryLabel(t *testing.T) {
	tr := NewTranslator("en")
	if got := tr.CategoryLabel(LocaleES, "beard_care", "Beard Care"); got != "Cuidado de Barba" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := tr.CategoryLabel(LocaleEN, "hot_stones", "Hot Stones"); got != "Hot Stones" {
		t.Fatalf("expected original label, got %q", got)
	}
	if got := tr.CategoryLabel(LocaleEN, "nothing_here", ""); got != "Other Services" {
		t.Fatalf("expected default label, got %q", got)
	}
}

func TestMessageTablesShareKeys(t *testing.T) {
	for key := range messagesEN {
		if _, ok := messagesES[key]; !ok {
			t.Fatalf("es table is missing %q", key)
		}
		if _, ok := messagesPT[key]; !ok {
			t.Fatalf("pt table is missing %q", key)
		}
	}
}

func TestMessageCatalog(t *testing.T) {
	c := newMessageCatalog(map[string]map[string]string{
		LocaleEN: {"greet": "{who} booked {service} at 10% off", "plain": "Hello"},
		LocaleES: {"greet": "{service} reservado por {who}"},
	})
	tr := &Translator{printers: map[string]*message.Printer{
		LocaleEN: message.NewPrinter(language.English, message.Catalog(c.builder)),
		LocaleES: message.NewPrinter(language.Spanish, message.Catalog(c.builder)),
	}}
	render := func(locale, key string, params map[string]string) string {
		if !c.has(locale, key) {
			locale = fallbackLocale
		}
		return tr.printers[locale].Sprintf(key, c.args(key, params)...)
	}

	params := map[string]string{"who": "Ana", "service": "Shave"}
	if got := render(LocaleEN, "greet", params); got != "Ana booked Shave at 10% off" {
		t.Fatalf("unexpected en message %q", got)
	}
	if got := render(LocaleES, "greet", params); got != "Shave reservado por Ana" {
		t.Fatalf("unexpected es message %q", got)
	}
	if got := render(LocaleES, "greet", map[string]string{"who": "Ana"}); got != "{service} reservado por Ana" {
		t.Fatalf("missing param should keep its placeholder, got %q", got)
	}
	if c.has(LocaleES, "plain") || !c.has(LocaleEN, "plain") {
		t.Fatalf("has must not fall back across locales")
	}
	if got := render(LocaleES, "plain", params); got != "Hello" {
		t.Fatalf("unexpected fallback %q", got)
	}
}

func TestLocales(t *testing.T) {
	got := Locales()
	if len(got) != 3 || got[0] != LocaleEN || got[1] != LocaleES || got[2] != LocalePT {
		t.Fatalf("unexpected locales %v", got)
	}
}
