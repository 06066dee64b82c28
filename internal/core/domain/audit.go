package domain

import "time"

// Audit action kinds, matching the original register's log vocabulary.
const (
	AuditCreate       = "create"
	AuditEdit         = "edit"
	AuditUpdateStatus = "update-status"
	AuditToggleStatus = "toggle-status"
	AuditDelete       = "delete"
	AuditDeleteAll    = "delete-all"
)

// AuditEntry records a committed mutation. Entries are append-only and
// written only after the mutation they describe has been persisted.
type AuditEntry struct {
	Timestamp     time.Time      `json:"ts"`
	User          string         `json:"user"`
	Action        string         `json:"action"`
	AppointmentID string         `json:"appointmentId,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}
