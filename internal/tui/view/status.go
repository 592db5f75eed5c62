package view

import (
	"time"

	"vpndash/internal/api"
	"vpndash/internal/tui/model"
	"vpndash/internal/tui/utils"

	"github.com/dustin/go-humanize"
)

// Fallbacks shown when the snapshot is missing a field.
const (
	FallbackServer   = "Not selected"
	FallbackPublicIP = "Unknown"
	FallbackMethod   = "-"
	FallbackTraffic  = "0 B"
)

// StatusView is the display form of the last status snapshot. Every field
// is always populated.
type StatusView struct {
	Known     bool
	Connected bool
	Label     string
	Server    string
	PublicIP  string
	Method    string
	Upload    string
	Download  string
	Uptime    string
}

// BuildStatusView derives the status display values from the model.
func BuildStatusView(m *model.Model) StatusView {
	sv := StatusView{
		Label:    "Not protected",
		Server:   FallbackServer,
		PublicIP: FallbackPublicIP,
		Method:   FallbackMethod,
		Upload:   FallbackTraffic,
		Download: FallbackTraffic,
		Uptime:   utils.ZeroUptime,
	}
	s := m.Snapshot
	if s == nil {
		sv.Label = "Waiting for status"
		return sv
	}

	sv.Known = true
	sv.Connected = s.Connected
	if s.Connected {
		sv.Label = "Protected"
	}
	sv.Server = api.StringOr(s.Server, FallbackServer)
	sv.PublicIP = api.StringOr(s.PublicIP, FallbackPublicIP)
	sv.Method = api.StringOr(s.Method, FallbackMethod)
	if s.Upload != "" {
		sv.Upload = s.Upload
	}
	if s.Download != "" {
		sv.Download = s.Download
	}
	sv.Uptime = utils.FormatUptime(s.StartTime, m.Now)
	return sv
}

// lastUpdatedText describes the age of the snapshot relative to the model clock.
func lastUpdatedText(m *model.Model) string {
	if m.LastUpdated.IsZero() {
		return "no status yet"
	}
	now := m.Now
	if now.Before(m.LastUpdated) {
		now = m.LastUpdated
	}
	if now.Sub(m.LastUpdated) < time.Second {
		return "updated just now"
	}
	return "updated " + humanize.RelTime(m.LastUpdated, now, "ago", "from now")
}
