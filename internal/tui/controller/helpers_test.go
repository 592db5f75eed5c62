package controller

import (
	"context"
	"sync"
	"testing"
	"time"

	"vpndash/internal/api"
	"vpndash/internal/config"
	"vpndash/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeAPI is an in-memory api.VPNAPI that counts calls per endpoint.
type fakeAPI struct {
	mu sync.Mutex

	status     api.StatusSnapshot
	statusErr  error
	servers    []api.ServerDescriptor
	serversErr error

	connectResult    api.ActionResult
	connectErr       error
	disconnectResult api.ActionResult
	disconnectErr    error

	configDoc api.ConfigDocument
	configErr error

	calls         map[string]int
	lastConnectID string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		status: api.StatusSnapshot{Connected: false, PublicIP: api.StringPtr("127.0.0.1"), Upload: "0 B", Download: "0 B"},
		servers: []api.ServerDescriptor{
			{ID: "free", Name: "Free Server", Location: "Netherlands", Type: "proxy"},
			{ID: "eu-west", Name: "Europe West", Location: "Amsterdam", Type: "wireguard"},
			{ID: "ssh-tunnel", Name: "SSH Tunnel", Location: "Local", Type: "ssh"},
		},
		connectResult:    api.ActionResult{Success: true, Message: "Connected"},
		disconnectResult: api.ActionResult{Success: true, Message: "Disconnected"},
		configDoc:        api.ConfigDocument{Config: "[Interface]\nPrivateKey = test", Note: "demo"},
		calls:            map[string]int{},
	}
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeAPI) Status(ctx context.Context) (api.StatusSnapshot, error) {
	f.record("status")
	return f.status, f.statusErr
}

func (f *fakeAPI) Servers(ctx context.Context) ([]api.ServerDescriptor, error) {
	f.record("servers")
	return f.servers, f.serversErr
}

func (f *fakeAPI) Connect(ctx context.Context, serverID string) (api.ActionResult, error) {
	f.record("connect")
	f.mu.Lock()
	f.lastConnectID = serverID
	f.mu.Unlock()
	return f.connectResult, f.connectErr
}

func (f *fakeAPI) Disconnect(ctx context.Context) (api.ActionResult, error) {
	f.record("disconnect")
	return f.disconnectResult, f.disconnectErr
}

func (f *fakeAPI) Config(ctx context.Context) (api.ConfigDocument, error) {
	f.record("config")
	return f.configDoc, f.configErr
}

// testConfig uses hour-long intervals so tick commands never fire during a test.
func testConfig() config.DashboardConfig {
	cfg := config.GetDefaultConfig()
	cfg.StatusInterval = time.Hour
	cfg.TrafficInterval = time.Hour
	cfg.UptimeInterval = time.Hour
	cfg.NotificationTTL = time.Hour
	return cfg
}

func newTestModel(client api.VPNAPI) *model.Model {
	m := model.InitialModel(testConfig(), client, false, nil)
	m.Width = 120
	m.Height = 40
	return m
}

// drain runs cmd, expanding batches, and collects every message produced
// within a short window. Timer commands simply never report.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	out := make(chan tea.Msg, 64)

	var run func(c tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, bc := range batch {
					run(bc)
				}
				return
			}
			if msg != nil {
				out <- msg
			}
		}()
	}
	run(cmd)

	var msgs []tea.Msg
	deadline := time.After(150 * time.Millisecond)
	for {
		select {
		case msg := <-out:
			msgs = append(msgs, msg)
		case <-deadline:
			return msgs
		}
	}
}

// msgsOf filters msgs down to those of type T.
func msgsOf[T any](msgs []tea.Msg) []T {
	var found []T
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			found = append(found, v)
		}
	}
	return found
}

// dispatchAll feeds every API result message back into the controller,
// ignoring UI-only messages such as spinner ticks.
func dispatchAll(m *model.Model, msgs []tea.Msg) (*model.Model, []tea.Cmd) {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		switch msg.(type) {
		case model.StatusResultMsg, model.FastStatusResultMsg, model.ServersResultMsg,
			model.ActionResultMsg, model.ConfigResultMsg, model.ClipboardResultMsg:
			var cmd tea.Cmd
			m, cmd = mainControllerDispatch(m, msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, cmds
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model.Model, k tea.KeyMsg) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, k)
}

func connectedSnapshot() *api.StatusSnapshot {
	return &api.StatusSnapshot{
		Connected: true,
		Server:    api.StringPtr("Europe West"),
		PublicIP:  api.StringPtr("176.126.10.20"),
		Method:    api.StringPtr("WireGuard"),
		Upload:    "1 KB",
		Download:  "2 KB",
		StartTime: api.StringPtr(time.Now().Add(-time.Minute).Format(time.RFC3339)),
	}
}
