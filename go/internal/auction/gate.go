// Package auction decides whether the auction is accepting bids.
package auction

import (
	"time"

	"github.com/mcdev12/faauction/go/internal/models"
)

// GateStatus is the gate decision together with what it was based on.
type GateStatus struct {
	Open         bool                `json:"open"`
	DeadlineType models.DeadlineType `json:"deadline_type"`
	Deadline     *time.Time          `json:"deadline,omitempty"`
	Remaining    *time.Duration      `json:"remaining,omitempty"`
}

// IsOpen reports whether bids are accepted under settings at now.
// Manual mode follows the closed flag. Datetime mode is open strictly before the deadline
// and closed when no deadline is configured.
func IsOpen(settings models.AuctionSettings, now time.Time) bool {
	switch settings.DeadlineType {
	case models.DeadlineTypeDatetime:
		if settings.Deadline == nil {
			return false
		}
		return now.Before(*settings.Deadline)
	default:
		return !settings.AuctionClosed
	}
}

// Status is IsOpen plus the time left until a datetime deadline.
func Status(settings models.AuctionSettings, now time.Time) GateStatus {
	status := GateStatus{
		Open:         IsOpen(settings, now),
		DeadlineType: settings.DeadlineType,
	}
	if settings.DeadlineType == models.DeadlineTypeDatetime && settings.Deadline != nil {
		status.Deadline = settings.Deadline
		if status.Open {
			remaining := settings.Deadline.Sub(now)
			status.Remaining = &remaining
		}
	}
	return status
}
