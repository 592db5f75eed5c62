package model

import (
	"context"
	"time"

	"vpndash/internal/api"
	"vpndash/pkg/logging"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ClipboardWriter is swapped out in tests where no clipboard is available.
var ClipboardWriter = clipboard.WriteAll

func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// FetchStatusCmd fetches a full status snapshot.
func FetchStatusCmd(client api.VPNAPI, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		status, err := client.Status(ctx)
		return StatusResultMsg{Status: status, At: time.Now(), Err: err}
	}
}

// FetchFastStatusCmd fetches status for the traffic-only poll of generation gen.
func FetchFastStatusCmd(client api.VPNAPI, timeout time.Duration, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		status, err := client.Status(ctx)
		return FastStatusResultMsg{Gen: gen, Status: status, Err: err}
	}
}

// FetchServersCmd loads the server list.
func FetchServersCmd(client api.VPNAPI, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		servers, err := client.Servers(ctx)
		return ServersResultMsg{Servers: servers, Err: err}
	}
}

// ConnectCmd asks the API to connect through serverID.
func ConnectCmd(client api.VPNAPI, timeout time.Duration, serverID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		result, err := client.Connect(ctx, serverID)
		return ActionResultMsg{Action: ActionConnect, Server: serverID, Result: result, Err: err}
	}
}

// DisconnectCmd asks the API to disconnect.
func DisconnectCmd(client api.VPNAPI, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		result, err := client.Disconnect(ctx)
		return ActionResultMsg{Action: ActionDisconnect, Result: result, Err: err}
	}
}

// FetchConfigCmd fetches the client configuration document.
func FetchConfigCmd(client api.VPNAPI, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		doc, err := client.Config(ctx)
		return ConfigResultMsg{Doc: doc, Err: err}
	}
}

// StatusTickCmd schedules the next slow poll of generation gen.
func StatusTickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return StatusTickMsg{Gen: gen}
	})
}

// FastTickCmd schedules the next traffic poll of generation gen.
func FastTickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FastTickMsg{Gen: gen}
	})
}

// UptimeTickCmd schedules the next uptime refresh of generation gen.
func UptimeTickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return UptimeTickMsg{Gen: gen, Time: t}
	})
}

// DismissNotificationCmd removes notification id after ttl.
func DismissNotificationCmd(ttl time.Duration, id int) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return DismissNotificationMsg{ID: id}
	})
}

// CopyToClipboardCmd writes text to the system clipboard.
func CopyToClipboardCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardResultMsg{What: what, Err: ClipboardWriter(text)}
	}
}

// ListenForLogEntriesCmd waits for the next entry on the logging channel.
// It returns nil once the channel is closed, which ends the listen loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
