package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"vpndash/internal/api"
	"vpndash/internal/tui/design"
	"vpndash/internal/tui/utils"
	"vpndash/internal/tui/view"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// printStatus writes a status snapshot as aligned label/value lines, using
// the same fallbacks as the dashboard.
func printStatus(w io.Writer, s api.StatusSnapshot, now time.Time) {
	state := design.TextErrorStyle.Render("Not protected")
	if s.Connected {
		state = design.TextSuccessStyle.Render("Protected")
	}
	upload, download := s.Upload, s.Download
	if upload == "" {
		upload = view.FallbackTraffic
	}
	if download == "" {
		download = view.FallbackTraffic
	}

	rows := [][2]string{
		{"Status", state},
		{"Server", api.StringOr(s.Server, view.FallbackServer)},
		{"Public IP", api.StringOr(s.PublicIP, view.FallbackPublicIP)},
		{"Method", api.StringOr(s.Method, view.FallbackMethod)},
		{"Upload", upload},
		{"Download", download},
		{"Uptime", utils.FormatUptime(s.StartTime, now)},
	}
	for _, r := range rows {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, design.LabelStyle.Render(r[0]), r[1]))
	}
}

// printServers renders the server list as a table, marking the selected id.
func printServers(w io.Writer, servers []api.ServerDescriptor, selected string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(design.DimStyle).
		Headers("", "ID", "NAME", "LOCATION", "TYPE", "PING")

	for _, s := range servers {
		mark := ""
		if s.ID == selected {
			mark = "*"
		}
		ping := s.Ping
		if ping == "" {
			ping = "-"
		}
		t.Row(mark, s.ID, s.Name, s.Location, s.Type, ping)
	}
	fmt.Fprintln(w, t.Render())
}
