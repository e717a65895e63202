package response

import (
	"barberapp/internal/adminview"
	"barberapp/internal/infrastructure/i18n"
)

type BoardServiceResponse struct {
	ServiceResponse
	InFlight bool `json:"in_flight"`
}

type BoardResponse struct {
	Services []BoardServiceResponse `json:"services"`
}

// BoardActionResponse reports how an admin panel action ended.
type BoardActionResponse struct {
	Action       string                     `json:"action"`
	ServiceID    string                     `json:"service_id,omitempty"`
	State        string                     `json:"state"`
	Service      *ServiceResponse           `json:"service,omitempty"`
	Notification *i18n.RenderedNotification `json:"notification,omitempty"`
}

func NewBoardResponse(tr *i18n.Translator, locale string, b *adminview.Board) BoardResponse {
	services := b.Services()
	out := BoardResponse{Services: make([]BoardServiceResponse, 0, len(services))}
	for _, s := range services {
		out.Services = append(out.Services, BoardServiceResponse{
			ServiceResponse: NewServiceResponse(tr, locale, s),
			InFlight:        b.InFlight(s.ID),
		})
	}
	return out
}

// NewBoardActionResponse shows the confirmed record on commit and the restored
// snapshot on rollback.
func NewBoardActionResponse(tr *i18n.Translator, locale string, a adminview.Action) BoardActionResponse {
	out := BoardActionResponse{
		Action:    string(a.Kind),
		ServiceID: a.ServiceID,
		State:     string(a.State),
	}
	switch {
	case a.State == adminview.ActionCommitted && a.Result.ID != "":
		svc := NewServiceResponse(tr, locale, a.Result)
		out.Service = &svc
	case a.State == adminview.ActionRolledBack && a.Snapshot.ID != "":
		svc := NewServiceResponse(tr, locale, a.Snapshot)
		out.Service = &svc
	}
	if a.Notification.TitleKey != "" {
		n := tr.Render(locale, a.Notification)
		out.Notification = &n
	}
	return out
}
