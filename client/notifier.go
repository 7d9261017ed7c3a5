package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/devanshg21/face-attendance-backend/dto"
)

// WebhookNotifier posts attendance events to the external reminder system.
// Delivery is fire-and-forget: each event is sent on its own goroutine and
// failures are logged, never propagated back into attendance processing.
type WebhookNotifier struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

// NewWebhookNotifier builds a notifier for the given URL. An empty URL
// yields a log-only notifier.
func NewWebhookNotifier(url string, log *zap.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
		log:    log,
	}
}

type event struct {
	Type       string `json:"type"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	State      string `json:"state,omitempty"`
	EmittedAt  string `json:"emitted_at"`
}

func (n *WebhookNotifier) LeaveConflict(_ context.Context, conflict dto.LeaveConflict) {
	n.emit(event{
		Type:       "leave_conflict",
		EmployeeID: conflict.EmployeeID,
		Date:       conflict.Date,
		State:      conflict.State,
		EmittedAt:  time.Now().Format(time.RFC3339),
	})
}

func (n *WebhookNotifier) DayClosedAbsent(_ context.Context, employeeID, date string) {
	n.emit(event{
		Type:       "day_closed_absent",
		EmployeeID: employeeID,
		Date:       date,
		EmittedAt:  time.Now().Format(time.RFC3339),
	})
}

func (n *WebhookNotifier) emit(ev event) {
	n.log.Info("attendance event",
		zap.String("type", ev.Type),
		zap.String("employee_id", ev.EmployeeID),
		zap.String("date", ev.Date))

	if n.url == "" {
		return
	}

	go func() {
		payload, err := json.Marshal(ev)
		if err != nil {
			n.log.Error("marshal event", zap.Error(err))
			return
		}

		resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(payload))
		if err != nil {
			n.log.Warn("webhook delivery failed",
				zap.String("type", ev.Type),
				zap.Error(err))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			n.log.Warn("webhook rejected event",
				zap.String("type", ev.Type),
				zap.Int("status", resp.StatusCode))
		}
	}()
}
