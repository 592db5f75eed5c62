package model

import (
	"time"

	"vpndash/internal/api"
	"vpndash/pkg/logging"
)

// ---- Timer loop messages ----

// StatusTickMsg fires the slow full-status poll.
type StatusTickMsg struct {
	Gen int
}

// FastTickMsg fires the traffic-only poll while connected.
type FastTickMsg struct {
	Gen int
}

// UptimeTickMsg advances the clock used to render uptime.
type UptimeTickMsg struct {
	Gen  int
	Time time.Time
}

// ---- API result messages ----

type StatusResultMsg struct {
	Status api.StatusSnapshot
	At     time.Time
	Err    error
}

type FastStatusResultMsg struct {
	Gen    int
	Status api.StatusSnapshot
	Err    error
}

type ServersResultMsg struct {
	Servers []api.ServerDescriptor
	Err     error
}

type ActionResultMsg struct {
	Action ActionKind
	Server string
	Result api.ActionResult
	Err    error
}

type ConfigResultMsg struct {
	Doc api.ConfigDocument
	Err error
}

// ---- UI messages ----

type DismissNotificationMsg struct {
	ID int
}

type ClipboardResultMsg struct {
	What string
	Err  error
}

// NewLogEntryMsg carries a log entry from pkg/logging to the activity log.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}
