package dto

// NotifyResponse output of the on-demand notification trigger. Always
// HTTP-success-shaped; Message distinguishes the zero-sent cases.
type NotifyResponse struct {
	NotificationsSent int    `json:"notifications_sent"`
	Message           string `json:"message"`
}
