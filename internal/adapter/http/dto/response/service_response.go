package response

import (
	"time"

	"barberapp/internal/domain/entities"
	"barberapp/internal/infrastructure/i18n"
	"barberapp/internal/usecase"
)

// ServiceResponse is a catalog entry with its display fields resolved for the request locale.
type ServiceResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Duration      int       `json:"duration"`
	Price         float64   `json:"price"`
	PriceDisplay  string    `json:"price_display"`
	Category      string    `json:"category"`
	CategoryKey   string    `json:"category_key"`
	CategoryLabel string    `json:"category_label"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

type ServiceGroupResponse struct {
	Key      string            `json:"key"`
	Label    string            `json:"label"`
	Services []ServiceResponse `json:"services"`
}

// ServiceMutationResponse is returned by the admin write endpoints.
type ServiceMutationResponse struct {
	Service      *ServiceResponse          `json:"service,omitempty"`
	Notification i18n.RenderedNotification `json:"notification"`
}

func NewServiceResponse(tr *i18n.Translator, locale string, s entities.Service) ServiceResponse {
	key := entities.CategoryKey(s.Category)
	return ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Duration:      s.Duration,
		Price:         s.Price,
		PriceDisplay:  i18n.FormatCurrency(locale, s.Price),
		Category:      s.Category,
		CategoryKey:   key,
		CategoryLabel: tr.CategoryLabel(locale, key, s.Category),
		Active:        s.Active,
		CreatedAt:     s.CreatedAt,
	}
}

func NewServiceListResponse(tr *i18n.Translator, locale string, services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, NewServiceResponse(tr, locale, s))
	}
	return out
}

func NewServiceGroupsResponse(tr *i18n.Translator, locale string, groups []usecase.ServiceGroup) []ServiceGroupResponse {
	out := make([]ServiceGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, ServiceGroupResponse{
			Key:      g.Key,
			Label:    tr.CategoryLabel(locale, g.Key, g.Category),
			Services: NewServiceListResponse(tr, locale, g.Services),
		})
	}
	return out
}

func NewServiceMutationResponse(tr *i18n.Translator, locale string, s *entities.Service, n entities.Notification) ServiceMutationResponse {
	out := ServiceMutationResponse{Notification: tr.Render(locale, n)}
	if s != nil {
		svc := NewServiceResponse(tr, locale, *s)
		out.Service = &svc
	}
	return out
}
