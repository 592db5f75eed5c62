package controller

import (
	"net/http/httptest"
	"testing"

	"vpndash/internal/api"
	"vpndash/internal/demo"
	"vpndash/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each endpoint answering HTTP 500 must produce exactly one error
// notification and leave the dashboard usable.
func TestFailureVisibility_EveryEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		connected bool
		trigger   func(m *model.Model) (*model.Model, tea.Cmd)
	}{
		{
			name: "status",
			path: api.PathStatus,
			trigger: func(m *model.Model) (*model.Model, tea.Cmd) {
				return m, model.FetchStatusCmd(m.API, m.Config.RequestTimeout)
			},
		},
		{
			name: "servers",
			path: api.PathServers,
			trigger: func(m *model.Model) (*model.Model, tea.Cmd) {
				return m, model.FetchServersCmd(m.API, m.Config.RequestTimeout)
			},
		},
		{
			name: "connect",
			path: api.PathConnect,
			trigger: func(m *model.Model) (*model.Model, tea.Cmd) {
				return press(m, keyRunes("c"))
			},
		},
		{
			name:      "disconnect",
			path:      api.PathDisconnect,
			connected: true,
			trigger: func(m *model.Model) (*model.Model, tea.Cmd) {
				m, _ = press(m, keyRunes("d"))
				return press(m, keyRunes("y"))
			},
		},
		{
			name: "config",
			path: api.PathConfig,
			trigger: func(m *model.Model) (*model.Model, tea.Cmd) {
				return press(m, keyRunes("w"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := demo.NewBackend()
			srv := httptest.NewServer(backend.Handler())
			defer srv.Close()

			m := newTestModel(api.NewClient(srv.URL))
			if tt.connected {
				m.Snapshot = connectedSnapshot()
			}
			prior := m.Snapshot
			backend.FailNext(tt.path)

			m, cmd := tt.trigger(m)
			require.NotPanics(t, func() {
				m, _ = dispatchAll(m, drain(t, cmd))
			})

			require.Len(t, m.Notifications, 1)
			assert.Equal(t, model.NotificationError, m.Notifications[0].Kind)
			assert.Contains(t, m.Notifications[0].Text, "simulated failure")
			assert.Same(t, prior, m.Snapshot, "prior state is kept")
			assert.Equal(t, model.ActionNone, m.ActionInFlight)
			assert.Equal(t, model.ModeMainDashboard, m.CurrentAppMode)
		})
	}
}
