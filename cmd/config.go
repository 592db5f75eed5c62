package cmd

import (
	"fmt"
	"os"

	"vpndash/internal/api"
	"vpndash/internal/tui/model"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var outputPath string
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the VPN client configuration",
		Long: `Fetches the client configuration (for example a WireGuard config)
from the API and prints it. With --output the text is written to a file
readable only by you; with --copy it is placed on the clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDashboardConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			doc, err := newAPIClient(cfg).Config(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch client config: %s", api.UserMessage(err))
			}

			out := cmd.OutOrStdout()
			switch {
			case outputPath != "":
				if err := os.WriteFile(outputPath, []byte(doc.Config+"\n"), 0o600); err != nil {
					return fmt.Errorf("failed to write %s: %w", outputPath, err)
				}
				fmt.Fprintf(out, "Client config written to %s\n", outputPath)
			case copyToClipboard:
				if err := model.ClipboardWriter(doc.Config); err != nil {
					return fmt.Errorf("failed to copy config to clipboard: %w", err)
				}
				fmt.Fprintln(out, "Client config copied to clipboard")
			default:
				fmt.Fprintln(out, doc.Config)
			}
			if doc.Note != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), doc.Note)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the config to this file")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the config to the clipboard")
	return cmd
}
