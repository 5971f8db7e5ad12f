// Package queue defines message payloads exchanged over the message broker.
package queue

// DiagnosticQueueName is the durable queue diagnostic events go to.
const DiagnosticQueueName = "diagnostic.checked"

// DiagnosticCheckedEvent is published after every database probe.  It
// carries the classified outcome rather than the rendered report, so the
// handle's own database name survives even though the HTTP report only
// shows whether DATABASE_NAME is set.
type DiagnosticCheckedEvent struct {
	Service     string `json:"service"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
	Database    string `json:"database,omitempty"`
	Collections int    `json:"collections"`
	CheckedAt   string `json:"checked_at"`
}
