package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"barberapp/internal/usecase"
)

var ErrInvalidNumber = errors.New("expected a number or a numeric string")

// FlexibleNumber keeps the raw text of a JSON number or string so that
// "30", 30 and "" all reach the form validator the way a browser sends them.
type FlexibleNumber string

func (n *FlexibleNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*n = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FlexibleNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return ErrInvalidNumber
	}
	*n = FlexibleNumber(num.String())
	return nil
}

// ServiceRequest is the admin add/edit payload.
type ServiceRequest struct {
	Name        string         `json:"name" example:"Classic Cut"`
	Description string         `json:"description" example:"A classic cut"`
	Duration    FlexibleNumber `json:"duration" swaggertype:"string" example:"30"`
	Price       FlexibleNumber `json:"price" swaggertype:"string" example:"25"`
	Category    string         `json:"category" example:"Haircuts"`
	Active      *bool          `json:"active,omitempty"`
}

func (r ServiceRequest) ToForm() usecase.ServiceForm {
	return usecase.ServiceForm{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Duration:    string(r.Duration),
		Price:       string(r.Price),
		Category:    strings.TrimSpace(r.Category),
		Active:      r.Active,
	}
}

// ToggleServiceRequest sets the active flag of a service.
type ToggleServiceRequest struct {
	Active *bool `json:"active" binding:"required"`
}
