package trade

import "strings"

// Status describes the deal lifecycle label used by domain decisions.
type Status string

const (
	StatusUnspecified Status = ""
	StatusPending     Status = "pending"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
	StatusCancelled   Status = "cancelled"
	// StatusExpired is a terminal state reserved for the game-loop driver;
	// nothing inside the engine transitions a deal into it.
	StatusExpired Status = "expired"
)

// isStatusTransitionAllowed enforces one-way transitions out of pending.
// Terminal states allow no further transitions.
func isStatusTransitionAllowed(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusAccepted || to == StatusRejected ||
			to == StatusCancelled || to == StatusExpired
	default:
		return false
	}
}

// IsStatusTransitionAllowed reports whether a status transition is permitted.
func IsStatusTransitionAllowed(from, to Status) bool {
	return isStatusTransitionAllowed(from, to)
}

// IsTerminal reports whether the status permits no further transitions.
func IsTerminal(status Status) bool {
	switch status {
	case StatusAccepted, StatusRejected, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// StatusLabel returns a stable label for a deal status.
func StatusLabel(status Status) string {
	switch status {
	case StatusPending:
		return "PENDING"
	case StatusAccepted:
		return "ACCEPTED"
	case StatusRejected:
		return "REJECTED"
	case StatusCancelled:
		return "CANCELLED"
	case StatusExpired:
		return "EXPIRED"
	default:
		return "UNSPECIFIED"
	}
}

// NormalizeStatusLabel canonicalizes status labels for persistence round-trips.
func NormalizeStatusLabel(value string) (Status, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return StatusUnspecified, false
	}
	switch strings.ToUpper(trimmed) {
	case "PENDING", "DEAL_STATUS_PENDING":
		return StatusPending, true
	case "ACCEPTED", "DEAL_STATUS_ACCEPTED":
		return StatusAccepted, true
	case "REJECTED", "DEAL_STATUS_REJECTED":
		return StatusRejected, true
	case "CANCELLED", "DEAL_STATUS_CANCELLED":
		return StatusCancelled, true
	case "EXPIRED", "DEAL_STATUS_EXPIRED":
		return StatusExpired, true
	default:
		return StatusUnspecified, false
	}
}
