// Package ipc provides the unix-socket control channel of a running session.
package ipc

// Request is one control command sent to the active session.
type Request struct {
	Command string `json:"command"`
}

// Response carries command outcome plus session statistics for status reads.
type Response struct {
	OK            bool   `json:"ok"`
	State         string `json:"state,omitempty"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
	Commands      int    `json:"commands,omitempty"`
	UptimeSeconds int64  `json:"uptime_seconds,omitempty"`
}
