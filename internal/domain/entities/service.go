package entities

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Service is a bookable offering of the barbershop (haircut, shave, ...).
//
// Domain notes:
//   - ID is assigned by the catalog on creation and never changes afterwards.
//   - Price is stored in the single reference currency regardless of the display locale.
//   - Category is free text; CategoryKey derives the grouping key, the stored value is never rewritten.
//   - Inactive services are hidden from public listings but stay editable by admins.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceInput is a validated service payload without an id.
type ServiceInput struct {
	Name        string
	Description string
	Duration    int
	Price       float64
	Category    string
	Active      bool
}

// ServicePatch is a partial update. Nil fields are left untouched.
type ServicePatch struct {
	Name        *string
	Description *string
	Duration    *int
	Price       *float64
	Category    *string
	Active      *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ServicePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Duration == nil &&
		p.Price == nil && p.Category == nil && p.Active == nil
}

// PatchFromInput builds a patch that overwrites every editable field.
func PatchFromInput(in ServiceInput) ServicePatch {
	return ServicePatch{
		Name:        &in.Name,
		Description: &in.Description,
		Duration:    &in.Duration,
		Price:       &in.Price,
		Category:    &in.Category,
		Active:      &in.Active,
	}
}

// Apply returns a copy of s with the non-nil patch fields merged in. ID and CreatedAt are preserved.
func (p ServicePatch) Apply(s Service) Service {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
	return s
}

// DefaultCategoryKey groups services whose category normalizes to nothing.
const DefaultCategoryKey = "other"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonKeyChars   = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// Transformers keep state between calls, so each key gets a fresh chain.
func newMarkStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// CategoryKey derives the lookup key used to group services and to find the
// translated category label ("Cuidado de Barba" -> "cuidado_de_barba").
//
// Distinct labels may collapse onto the same key (accented and unaccented
// spellings do); callers group by key and display the first original label.
func CategoryKey(category string) string {
	stripped, _, err := transform.String(newMarkStripper(), category)
	if err != nil {
		stripped = category
	}
	key := strings.ToLower(strings.TrimSpace(stripped))
	key = whitespaceRun.ReplaceAllString(key, "_")
	key = nonKeyChars.ReplaceAllString(key, "")
	if key == "" {
		return DefaultCategoryKey
	}
	return key
}
