package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"vpndash/internal/api"
	"vpndash/pkg/logging"

	"github.com/spf13/cobra"
)

func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect [server-id]",
		Short: "Connect the VPN through a server",
		Long: `Asks the VPN client to connect through the given server id, or the
configured default server when none is given, and prints the resulting
status.

Use 'vpndash servers' to see the available ids.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDashboardConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			serverID := cfg.DefaultServer
			if len(args) == 1 {
				serverID = args[0]
			}

			client := newAPIClient(cfg)
			logging.Info("CLI", "Connecting to %s via %s", serverID, client.BaseURL())
			result, err := client.Connect(cmd.Context(), serverID)
			if err != nil {
				return fmt.Errorf("connection failed: %s", api.UserMessage(err))
			}
			return reportAction(cmd, client, result, "Connected to "+serverID)
		},
	}
}

func newDisconnectCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "disconnect",
		Short: "Disconnect the VPN",
		Long: `Asks the VPN client to tear down the current connection. Unless --yes
is given the command asks for confirmation first and does nothing on any
answer other than y.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDashboardConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if !assumeYes && cfg.ShouldConfirmDisconnect() {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Disconnect from VPN? [y/N] ")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			client := newAPIClient(cfg)
			result, err := client.Disconnect(cmd.Context())
			if err != nil {
				return fmt.Errorf("disconnect failed: %s", api.UserMessage(err))
			}
			return reportAction(cmd, client, result, "Disconnected")
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// confirm reads one line from in and reports whether it was an affirmative answer.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// reportAction prints the action message and the resulting status, fetching
// it when the response did not include one.
func reportAction(cmd *cobra.Command, client api.VPNAPI, result api.ActionResult, fallback string) error {
	out := cmd.OutOrStdout()
	msg := result.Message
	if msg == "" {
		msg = fallback
	}
	fmt.Fprintln(out, msg)

	status := result.Status
	if status == nil {
		s, err := client.Status(cmd.Context())
		if err != nil {
			logging.Warn("CLI", "Could not refresh status after action: %v", err)
			return nil
		}
		status = &s
	}
	fmt.Fprintln(out)
	printStatus(out, *status, time.Now())
	return nil
}
