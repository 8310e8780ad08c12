package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spotbird/spotmix/internal/models"
)

// noticeTTL is the fixed display lifetime of a notification.
const noticeTTL = 4 * time.Second

// notifier holds at most one live notification and schedules its dismissal.
//
// Every post bumps a sequence number and the expiry message carries the
// sequence it was armed for, so the dismissal timer of a superseded
// notification can never clear its replacement.
type notifier struct {
	current *models.Notification
	seq     int
}

// post replaces the current notification and returns the command that
// schedules its dismissal.
func (n *notifier) post(message string, severity models.Severity) tea.Cmd {
	n.current = &models.Notification{Message: message, Severity: severity}
	n.seq++

	seq := n.seq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpireMsg{seq: seq}
	})
}

// expire processes a dismissal. Expiries for superseded notifications are
// no-ops.
func (n *notifier) expire(msg noticeExpireMsg) {
	if msg.seq == n.seq {
		n.current = nil
	}
}

// Current returns the live notification, or nil when none is displayed.
func (n *notifier) Current() *models.Notification {
	return n.current
}
