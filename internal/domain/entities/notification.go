package entities

// NotificationVariant selects how a notification is presented.
type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

// Notification is a user-facing message expressed as localization keys.
//
// Params are interpolated verbatim; LocalizedParams hold message keys that are
// translated first (e.g. status=admin_service.status_active).
type Notification struct {
	TitleKey        string              `json:"title_key"`
	DescriptionKey  string              `json:"description_key,omitempty"`
	Params          map[string]string   `json:"params,omitempty"`
	LocalizedParams map[string]string   `json:"localized_params,omitempty"`
	Variant         NotificationVariant `json:"variant"`
}

// IsFailure reports whether the notification describes a failed action.
func (n Notification) IsFailure() bool {
	return n.Variant == NotificationDestructive
}
