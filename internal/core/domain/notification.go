package domain

// NotificationLevel classifies a user-visible notification.
type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
)

// Notification is a short message surfaced to the user, e.g. as a toast.
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}
