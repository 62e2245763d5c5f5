// Package audit records operational events for deal lifecycle activity.
package audit

import (
	"context"
	"time"

	"github.com/NoahPeres/ti4engine/internal/platform/id"
)

// Severity describes the audit severity level.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Event is a single audit record for a deal operation.
type Event struct {
	EventID    string
	EventName  string
	Severity   Severity
	DealID     string
	Code       string
	Attributes map[string]string
	Timestamp  time.Time
}

// Store persists audit events.
type Store interface {
	AppendAuditEvent(ctx context.Context, evt Event) error
}

// Emitter records audit events. A nil emitter or store is a no-op so callers
// never need to guard emission sites.
type Emitter struct {
	store Store
	clock func() time.Time
}

// NewEmitter creates a new audit emitter.
func NewEmitter(store Store) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records an audit event, stamping the event ID and timestamp if unset.
func (e *Emitter) Emit(ctx context.Context, evt Event) error {
	if e == nil || e.store == nil {
		return nil
	}
	if evt.EventID == "" {
		eventID, err := id.NewID()
		if err != nil {
			return err
		}
		evt.EventID = eventID
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	return e.store.AppendAuditEvent(ctx, evt)
}
