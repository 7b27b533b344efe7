package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ZachChoo/grocery-inventory/internal/application/dto"
	"github.com/ZachChoo/grocery-inventory/internal/application/notification"
)

// Notifier is the slice of the notification service the admin surface needs.
type Notifier interface {
	RunWithOutcome(ctx context.Context) (int, notification.Outcome, error)
}

// AdminHandler exposes on-demand operational actions (manager only).
type AdminHandler struct {
	notifier Notifier
}

// NewAdminHandler builds the handler.
func NewAdminHandler(notifier Notifier) *AdminHandler {
	return &AdminHandler{notifier: notifier}
}

// NotifySales godoc
// @Summary      Run the expiring-sales notification now
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotifyResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/notify-sales [post]
func (h *AdminHandler) NotifySales(c *fiber.Ctx) error {
	sent, outcome, err := h.notifier.RunWithOutcome(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "NOTIFY_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.NotifyResponse{
		NotificationsSent: sent,
		Message:           notifyMessage(sent, outcome),
	})
}

func notifyMessage(sent int, outcome notification.Outcome) string {
	switch outcome {
	case notification.OutcomeNoSales:
		return "Checked sales. No sales expiring in the window."
	case notification.OutcomeNoRecipients:
		return "Checked sales. No eligible recipients to notify."
	case notification.OutcomeDispatchFailed:
		return "Checked sales. Email dispatch failed; see server logs."
	default:
		return fmt.Sprintf("Checked sales. %d notifications sent.", sent)
	}
}
