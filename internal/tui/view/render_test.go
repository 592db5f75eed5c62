package view

import (
	"strings"
	"testing"
	"time"

	"vpndash/internal/api"
	"vpndash/internal/config"
	"vpndash/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderModel() *model.Model {
	m := model.InitialModel(config.GetDefaultConfig(), nil, false, nil)
	m.Width = 120
	m.Height = 40
	return m
}

func TestBuildStatusView_NoSnapshot(t *testing.T) {
	sv := BuildStatusView(newRenderModel())

	assert.False(t, sv.Known)
	assert.False(t, sv.Connected)
	assert.Equal(t, FallbackServer, sv.Server)
	assert.Equal(t, FallbackPublicIP, sv.PublicIP)
	assert.Equal(t, FallbackMethod, sv.Method)
	assert.Equal(t, FallbackTraffic, sv.Upload)
	assert.Equal(t, FallbackTraffic, sv.Download)
	assert.Equal(t, "00:00:00", sv.Uptime)
}

func TestBuildStatusView_NullFieldsUseFallbacks(t *testing.T) {
	m := newRenderModel()
	m.Snapshot = &api.StatusSnapshot{Connected: false}

	sv := BuildStatusView(m)
	assert.True(t, sv.Known)
	assert.Equal(t, "Not protected", sv.Label)
	assert.Equal(t, FallbackServer, sv.Server)
	assert.Equal(t, FallbackTraffic, sv.Upload)
	assert.Equal(t, "00:00:00", sv.Uptime)
}

func TestBuildStatusView_Connected(t *testing.T) {
	m := newRenderModel()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	m.Now = start.Add(time.Hour + 2*time.Minute + 3*time.Second)
	m.Snapshot = &api.StatusSnapshot{
		Connected: true,
		Server:    api.StringPtr("Europe West"),
		PublicIP:  api.StringPtr("176.126.1.2"),
		Method:    api.StringPtr("WireGuard"),
		Upload:    "1.2 MB",
		Download:  "3.4 MB",
		StartTime: api.StringPtr(start.Format("2006-01-02T15:04:05")),
	}

	sv := BuildStatusView(m)
	assert.True(t, sv.Connected)
	assert.Equal(t, "Protected", sv.Label)
	assert.Equal(t, "Europe West", sv.Server)
	assert.Equal(t, "176.126.1.2", sv.PublicIP)
	assert.Equal(t, "WireGuard", sv.Method)
	assert.Equal(t, "1.2 MB", sv.Upload)
	assert.Equal(t, "3.4 MB", sv.Download)
	assert.Equal(t, "01:02:03", sv.Uptime)
}

func TestRender_DashboardShowsServersAndSelection(t *testing.T) {
	m := newRenderModel()
	m.ServersLoaded = true
	m.Servers = []api.ServerDescriptor{
		{ID: "ssh-tunnel", Name: "SSH Tunnel", Location: "Local", Type: "ssh"},
		{ID: "eu-west", Name: "Europe West", Location: "Amsterdam", Type: "wireguard", Ping: "42ms"},
	}

	out := Render(m)
	assert.Contains(t, out, "SSH Tunnel")
	assert.Contains(t, out, "Europe West")
	assert.Contains(t, out, "42ms")
	assert.Contains(t, out, "Selected: SSH Tunnel")
	assert.Equal(t, 1, strings.Count(out, IconRadioOn), "exactly one server is checked")
}

func TestRender_BeforeWindowSize(t *testing.T) {
	m := newRenderModel()
	m.Width, m.Height = 0, 0
	assert.Contains(t, Render(m), "waiting for window size")
}

func TestRender_NarrowTerminalStacksPanels(t *testing.T) {
	m := newRenderModel()
	m.Width = 60
	out := Render(m)
	assert.Contains(t, out, "Connection")
	assert.Contains(t, out, "Loading servers...")
}

func TestRender_BusyLabels(t *testing.T) {
	m := newRenderModel()
	m.ActionInFlight = model.ActionConnect
	assert.Contains(t, Render(m), "Connecting...")

	m.ActionInFlight = model.ActionDisconnect
	assert.Contains(t, Render(m), "Disconnecting...")

	m.ActionInFlight = model.ActionNone
	m.ConfigView.Loading = true
	assert.Contains(t, Render(m), "Loading config...")
}

func TestRender_Notifications(t *testing.T) {
	m := newRenderModel()
	m.AddNotification(model.NotificationError, "Failed to load servers: HTTP 500")
	m.AddNotification(model.NotificationSuccess, "Connected")

	out := Render(m)
	assert.Contains(t, out, "Failed to load servers: HTTP 500")
	assert.Contains(t, out, "Connected")
}

func TestRender_Overlays(t *testing.T) {
	m := newRenderModel()

	m.CurrentAppMode = model.ModeConfirmDisconnect
	assert.Contains(t, Render(m), "Disconnect from VPN?")

	m.CurrentAppMode = model.ModeHelpOverlay
	assert.Contains(t, Render(m), "KEYBOARD SHORTCUTS")

	m.CurrentAppMode = model.ModeLogOverlay
	assert.Contains(t, Render(m), "No activity yet")

	m.CurrentAppMode = model.ModeConfigOverlay
	m.ConfigViewport.Width = 60
	m.ConfigViewport.Height = 10
	m.ConfigViewport.SetContent("[Interface]\nPrivateKey = abc")
	assert.Contains(t, Render(m), "[Interface]")

	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "bye"
	assert.Equal(t, "bye", stripANSI(Render(m)))
}

func TestLastUpdatedText(t *testing.T) {
	m := newRenderModel()
	assert.Equal(t, "no status yet", lastUpdatedText(m))

	m.LastUpdated = m.Now
	assert.Equal(t, "updated just now", lastUpdatedText(m))

	m.Now = m.LastUpdated.Add(30 * time.Second)
	assert.Equal(t, "updated 30 seconds ago", lastUpdatedText(m))
}

func TestSafeIcon(t *testing.T) {
	assert.Equal(t, "✔ ", SafeIcon(IconCheck))
	require.True(t, strings.HasPrefix(IconText(IconInfo, "hi"), IconInfo))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
