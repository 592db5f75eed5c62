// Package demo implements a simulated VPN control API.
//
// It serves the same five endpoints the dashboard consumes and fakes the
// backend behaviour: a fixed server catalogue, a deterministic public IP per
// server, traffic counters that grow while connected and a sample WireGuard
// client configuration. It exists for local development and tests; no tunnel
// is ever created.
package demo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"vpndash/internal/api"
	"vpndash/pkg/logging"

	"github.com/dustin/go-humanize"
)

const subsystem = "DemoServer"

// SampleConfig is the WireGuard client configuration served by /api/vpn/config.
const SampleConfig = `[Interface]
PrivateKey = eCwJf1Hvj+FPyO9pizzkLpKQEIyI5Ph1gx6KSRJGXkE=
Address = 10.8.0.2/24
DNS = 1.1.1.1, 8.8.8.8
MTU = 1420

[Peer]
PublicKey = bmXOC+F1FxEMF9dyiK2H5/1SUtzH0JuVo51h2wPfgyo=
AllowedIPs = 0.0.0.0/0, ::/0
Endpoint = vpn.example.com:51820
PersistentKeepalive = 25`

const (
	localIP   = "127.0.0.1"
	zeroBytes = "0 B"
)

type catalogueEntry struct {
	api.ServerDescriptor
	minPing, maxPing int
}

var catalogue = []catalogueEntry{
	{api.ServerDescriptor{ID: "ssh-tunnel", Name: "SSH Tunnel", Location: "Basic VPN", Type: "ssh"}, 10, 30},
	{api.ServerDescriptor{ID: "http-proxy", Name: "HTTP Proxy", Location: "Web Proxy", Type: "proxy"}, 20, 50},
	{api.ServerDescriptor{ID: "us-east", Name: "USA East", Location: "New York", Type: "wireguard"}, 30, 80},
	{api.ServerDescriptor{ID: "eu-west", Name: "Europe West", Location: "Amsterdam", Type: "wireguard"}, 20, 60},
	{api.ServerDescriptor{ID: "free", Name: "Free Server", Location: "Germany", Type: "wireguard"}, 40, 100},
}

// Backend holds the simulated connection state.
type Backend struct {
	mu         sync.Mutex
	status     api.StatusSnapshot
	uploadKB   int
	downloadKB int
	rng        *rand.Rand
	now        func() time.Time

	// paths whose next request returns HTTP 500
	failNext map[string]bool
}

// NewBackend creates a disconnected backend.
func NewBackend() *Backend {
	b := &Backend{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		failNext: make(map[string]bool),
	}
	b.status = disconnectedStatus()
	return b
}

func disconnectedStatus() api.StatusSnapshot {
	return api.StatusSnapshot{
		Connected: false,
		PublicIP:  api.StringPtr(localIP),
		Method:    api.StringPtr("none"),
		Upload:    zeroBytes,
		Download:  zeroBytes,
	}
}

// FailNext arranges for the next request on path to fail with HTTP 500.
func (b *Backend) FailNext(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failNext[path] = true
}

// Status returns the current snapshot, adding a little traffic while connected.
func (b *Backend) Status() api.StatusSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status.Connected {
		b.addTrafficLocked(1, 5, 5, 25)
	}
	return b.status
}

// Servers returns the catalogue with freshly sampled ping values.
func (b *Backend) Servers() []api.ServerDescriptor {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]api.ServerDescriptor, 0, len(catalogue))
	for _, entry := range catalogue {
		d := entry.ServerDescriptor
		d.Ping = fmt.Sprintf("%dms", entry.minPing+b.rng.Intn(entry.maxPing-entry.minPing+1))
		out = append(out, d)
	}
	return out
}

// Connect switches to the connected state for serverID.
func (b *Backend) Connect(serverID string) (api.StatusSnapshot, error) {
	if strings.TrimSpace(serverID) == "" {
		return api.StatusSnapshot{}, api.ErrNoServerSelected
	}

	name := serverID
	for _, entry := range catalogue {
		if entry.ID == serverID {
			name = entry.Name
			break
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.uploadKB, b.downloadKB = 0, 0
	b.status = api.StatusSnapshot{
		Connected: true,
		Server:    api.StringPtr(name),
		PublicIP:  api.StringPtr(PublicIPFor(serverID)),
		Method:    api.StringPtr("demo"),
		Upload:    zeroBytes,
		Download:  zeroBytes,
		StartTime: api.StringPtr(b.now().Format("2006-01-02T15:04:05.000000")),
	}
	logging.Info(subsystem, "connected to %s with IP %s", serverID, *b.status.PublicIP)
	return b.status, nil
}

// Disconnect resets the backend to the disconnected state.
func (b *Backend) Disconnect() api.StatusSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	previous := api.StringOr(b.status.PublicIP, localIP)
	b.uploadKB, b.downloadKB = 0, 0
	b.status = disconnectedStatus()
	logging.Info(subsystem, "disconnected, was connected via %s", previous)
	return b.status
}

// Run grows traffic counters once per interval until ctx is done.
func (b *Backend) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.mu.Lock()
			if b.status.Connected {
				b.addTrafficLocked(5, 20, 20, 100)
			}
			b.mu.Unlock()
		}
	}
}

func (b *Backend) addTrafficLocked(upMin, upMax, downMin, downMax int) {
	b.uploadKB += upMin + b.rng.Intn(upMax-upMin+1)
	b.downloadKB += downMin + b.rng.Intn(downMax-downMin+1)
	b.status.Upload = formatKB(b.uploadKB)
	b.status.Download = formatKB(b.downloadKB)
}

// formatKB renders a kilobyte counter the way the status endpoint reports it.
func formatKB(kb int) string {
	return humanize.IBytes(uint64(kb) * 1024)
}

func (b *Backend) takeFailure(path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failNext[path] {
		delete(b.failNext, path)
		return true
	}
	return false
}

// PublicIPFor derives a stable fake public IP for a server id.
func PublicIPFor(serverID string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(serverID))
	r := rand.New(rand.NewSource(int64(h.Sum64())))
	switch {
	case strings.Contains(serverID, "us-east"):
		return fmt.Sprintf("104.238.%d.%d", 130+r.Intn(11), 1+r.Intn(254))
	case strings.Contains(serverID, "eu-west"):
		return fmt.Sprintf("176.126.%d.%d", 230+r.Intn(11), 1+r.Intn(254))
	case strings.Contains(serverID, "free"):
		return fmt.Sprintf("158.247.%d.%d", 200+r.Intn(11), 1+r.Intn(254))
	default:
		return fmt.Sprintf("192.168.%d.%d", 1+r.Intn(255), 1+r.Intn(254))
	}
}

// Handler returns the HTTP handler serving the control API.
func (b *Backend) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+api.PathStatus, b.withFailure(api.PathStatus, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, b.Status())
	}))
	mux.HandleFunc("GET "+api.PathServers, b.withFailure(api.PathServers, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.ServerList{Servers: b.Servers()})
	}))
	mux.HandleFunc("POST "+api.PathConnect, b.withFailure(api.PathConnect, b.handleConnect))
	mux.HandleFunc("POST "+api.PathDisconnect, b.withFailure(api.PathDisconnect, func(w http.ResponseWriter, r *http.Request) {
		status := b.Disconnect()
		writeJSON(w, http.StatusOK, api.ActionResult{Success: true, Message: "VPN disconnected", Status: &status})
	}))
	mux.HandleFunc("GET "+api.PathConfig, b.withFailure(api.PathConfig, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, api.ConfigDocument{Config: SampleConfig, Note: "Copy this config into the WireGuard app"})
	}))
	return mux
}

func (b *Backend) handleConnect(w http.ResponseWriter, r *http.Request) {
	var req api.ConnectRequest
	if r.Body != nil {
		// an empty body falls back to the default server
		err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, api.ActionResult{Success: false, Error: "invalid request body"})
			return
		}
	}
	if req.Server == "" {
		req.Server = "default"
	}
	status, err := b.Connect(req.Server)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, api.ActionResult{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, api.ActionResult{Success: true, Message: "Connected to " + req.Server, Status: &status})
}

func (b *Backend) withFailure(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.takeFailure(path) {
			logging.Warn(subsystem, "injected failure on %s", path)
			writeJSON(w, http.StatusInternalServerError, api.ActionResult{Success: false, Message: "simulated failure"})
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error(subsystem, err, "failed to write response")
	}
}
