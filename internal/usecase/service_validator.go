package usecase

import (
	"math"
	"strconv"
	"strings"

	"barberapp/internal/domain/entities"
)

const (
	serviceNameTag        = "min=3"
	serviceDescriptionTag = "min=5"
	serviceCategoryTag    = "min=2"
	serviceDurationTag    = "gt=0,whole,lte=2147483647"
	servicePriceTag       = "gt=0"
)

// ServiceForm is a service payload as typed by an admin. Numeric fields are
// raw text and are coerced before their range checks; Active defaults to true.
type ServiceForm struct {
	Name        string
	Description string
	Duration    string
	Price       string
	Category    string
	Active      *bool
}

// ServiceFormFromService pre-fills an edit form with the stored values.
func ServiceFormFromService(s entities.Service) ServiceForm {
	active := s.Active
	return ServiceForm{
		Name:        s.Name,
		Description: s.Description,
		Duration:    strconv.Itoa(s.Duration),
		Price:       strconv.FormatFloat(s.Price, 'f', -1, 64),
		Category:    s.Category,
		Active:      &active,
	}
}

// ValidateServiceForm checks every field and returns all violations at once
// as a *ValidationError keyed by field name.
func ValidateServiceForm(form ServiceForm) (entities.ServiceInput, error) {
	duration := coerceNumber(form.Duration)
	price := coerceNumber(form.Price)

	vErr := check([]fieldRule{
		{field: "name", value: form.Name, tag: serviceNameTag, key: "admin_service.name_error"},
		{field: "description", value: form.Description, tag: serviceDescriptionTag, key: "admin_service.description_error"},
		{field: "duration", value: duration, tag: serviceDurationTag, key: "admin_service.duration_error"},
		{field: "price", value: price, tag: servicePriceTag, key: "admin_service.price_error"},
		{field: "category", value: form.Category, tag: serviceCategoryTag, key: "admin_service.category_error"},
	})
	if err := vErr.errOrNil(); err != nil {
		return entities.ServiceInput{}, err
	}

	active := true
	if form.Active != nil {
		active = *form.Active
	}
	return entities.ServiceInput{
		Name:        form.Name,
		Description: form.Description,
		Duration:    int(duration),
		Price:       price,
		Category:    form.Category,
		Active:      active,
	}, nil
}

// ValidateServicePatch applies the form rules to the fields a patch sets.
func ValidateServicePatch(p entities.ServicePatch) error {
	var rules []fieldRule
	if p.Name != nil {
		rules = append(rules, fieldRule{field: "name", value: *p.Name, tag: serviceNameTag, key: "admin_service.name_error"})
	}
	if p.Description != nil {
		rules = append(rules, fieldRule{field: "description", value: *p.Description, tag: serviceDescriptionTag, key: "admin_service.description_error"})
	}
	if p.Duration != nil {
		rules = append(rules, fieldRule{field: "duration", value: float64(*p.Duration), tag: serviceDurationTag, key: "admin_service.duration_error"})
	}
	if p.Price != nil {
		rules = append(rules, fieldRule{field: "price", value: finiteOrNaN(*p.Price), tag: servicePriceTag, key: "admin_service.price_error"})
	}
	if p.Category != nil {
		rules = append(rules, fieldRule{field: "category", value: *p.Category, tag: serviceCategoryTag, key: "admin_service.category_error"})
	}
	return check(rules).errOrNil()
}

// coerceNumber mirrors how a browser form turns text into a number: blank is
// zero, anything unparsable or infinite is NaN (and fails every range check).
func coerceNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return finiteOrNaN(f)
}

func finiteOrNaN(f float64) float64 {
	if math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}
