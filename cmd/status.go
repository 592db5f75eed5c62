package cmd

import (
	"fmt"
	"time"

	"vpndash/internal/api"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the current VPN connection status",
		Long: `Fetches the connection status once and prints it.
Fields the API leaves empty are shown with the same placeholders the
dashboard uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDashboardConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			status, err := newAPIClient(cfg).Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch status: %s", api.UserMessage(err))
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), status)
			}
			printStatus(cmd.OutOrStdout(), status, time.Now())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw status as JSON")
	return cmd
}

func newServersCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "servers",
		Short: "List the servers available for connecting",
		Long: `Fetches the server list once and prints it in the order the API
returns it. The default server is marked with an asterisk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDashboardConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			servers, err := newAPIClient(cfg).Servers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list servers: %s", api.UserMessage(err))
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), servers)
			}
			printServers(cmd.OutOrStdout(), servers, cfg.DefaultServer)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw server list as JSON")
	return cmd
}
