package cmd

import (
	"fmt"
	"os"

	"vpndash/internal/api"
	"vpndash/internal/color"
	"vpndash/internal/config"
	"vpndash/internal/tui/controller"
	"vpndash/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	endpointFlag string
	serverFlag   string
	themeFlag    string
	debugMode    bool
)

// rootCmd runs the dashboard when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vpndash",
	Short: "Terminal dashboard for a VPN client's control API",
	Long: `vpndash watches and drives a VPN client through its REST control API.

Without a subcommand it starts an interactive dashboard that polls the
connection status, lists the available servers, and lets you connect,
disconnect and view the client configuration. The subcommands perform the
same operations once and print the result, which is useful for scripting.

Configuration is read from ~/.config/vpndash/config.yaml and then
./.vpndash/config.yaml; command line flags override both.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unreachable endpoint, failed actions)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			logging.InitForCLI(logLevel(), os.Stderr)
		}
	},
	RunE: runDashboard,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "vpndash version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "", "Base URL of the VPN control API (default from config, "+config.DefaultEndpoint+")")
	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "Server id selected by default (default from config, "+config.DefaultServerID+")")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Color theme: auto, dark or light")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newServersCmd())
	rootCmd.AddCommand(newConnectCmd())
	rootCmd.AddCommand(newDisconnectCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDemoServerCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

func logLevel() logging.LogLevel {
	if debugMode {
		return logging.LevelDebug
	}
	return logging.LevelInfo
}

// loadDashboardConfig layers the config files and then the command line flags.
func loadDashboardConfig() (config.DashboardConfig, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return cfg, err
	}
	cfg = applyFlagOverrides(cfg)
	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyFlagOverrides(cfg config.DashboardConfig) config.DashboardConfig {
	if endpointFlag != "" {
		cfg.Endpoint = endpointFlag
	}
	if serverFlag != "" {
		cfg.DefaultServer = serverFlag
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	return cfg
}

func newAPIClient(cfg config.DashboardConfig) *api.Client {
	return api.NewClient(cfg.Endpoint,
		api.WithUserAgent(cfg.UserAgent),
		api.WithTimeout(cfg.RequestTimeout),
	)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadDashboardConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	color.Apply(cfg.Theme)

	logChannel := logging.InitForTUI(logLevel())
	defer logging.CloseTUIChannel()

	logging.Info("CLI", "Starting dashboard against %s", cfg.Endpoint)
	p := controller.NewProgram(cfg, newAPIClient(cfg), debugMode, logChannel)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with error: %w", err)
	}
	return nil
}
