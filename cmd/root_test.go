package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpndash/internal/config"
)

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "vpndash", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.RunE, "root command should start the dashboard")
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "vpndash version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())

	assert.Equal(t, "vpndash version 1.0.0\n", buf.String())
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}

	for _, name := range []string{"status", "servers", "connect", "disconnect", "config", "demo-server", "version", "self-update"} {
		assert.True(t, found[name], "expected subcommand %s to be registered", name)
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"endpoint", "server", "theme", "debug"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, "e", rootCmd.PersistentFlags().Lookup("endpoint").Shorthand)
}

func TestApplyFlagOverrides(t *testing.T) {
	defer func() { endpointFlag, serverFlag, themeFlag = "", "", "" }()

	base := config.GetDefaultConfig()

	got := applyFlagOverrides(base)
	assert.Equal(t, base.Endpoint, got.Endpoint, "no flags leaves the config alone")

	endpointFlag = "http://10.0.0.1:8080"
	serverFlag = "eu-west"
	themeFlag = "light"
	got = applyFlagOverrides(base)
	assert.Equal(t, "http://10.0.0.1:8080", got.Endpoint)
	assert.Equal(t, "eu-west", got.DefaultServer)
	assert.Equal(t, "light", got.Theme)
}

func TestRootCommandHelp(t *testing.T) {
	var buf bytes.Buffer
	testRootCmd := &cobra.Command{
		Use:          rootCmd.Use,
		Short:        rootCmd.Short,
		Long:         rootCmd.Long,
		SilenceUsage: true,
		Run:          func(*cobra.Command, []string) {},
	}
	testRootCmd.SetOut(&buf)
	testRootCmd.SetArgs([]string{"--help"})
	require.NoError(t, testRootCmd.Execute())

	output := buf.String()
	assert.True(t, strings.Contains(output, "vpndash"))
	assert.Contains(t, output, "interactive dashboard")
}
