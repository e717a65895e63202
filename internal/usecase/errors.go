package usecase

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrInvalidServiceID     = errors.New("invalid service id")
	ErrServiceIDExhausted   = errors.New("could not allocate a unique service id")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidAppointmentID = errors.New("invalid appointment id")
	ErrInvalidStatus        = errors.New("invalid appointment status")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrAuthNotConfigured    = errors.New("admin auth not configured")
)

// ValidationError collects every invalid field of a form. Values are message
// keys, never display text.
type ValidationError struct {
	FieldErrors map[string]string
}

func (v *ValidationError) Error() string {
	if v == nil || len(v.FieldErrors) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(v.Fields(), ", ")
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// Fields returns the invalid field names in sorted order.
func (v *ValidationError) Fields() []string {
	if v == nil {
		return nil
	}
	out := make([]string, 0, len(v.FieldErrors))
	for f := range v.FieldErrors {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func (v *ValidationError) add(field, key string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	if _, exists := v.FieldErrors[field]; exists {
		return
	}
	v.FieldErrors[field] = key
}

// errOrNil keeps a typed nil *ValidationError from turning into a non-nil error.
func (v *ValidationError) errOrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}
