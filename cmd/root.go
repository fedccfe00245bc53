package cmd

import (
	"os"

	"github.com/mj1618/uibridge/internal/config"
	"github.com/mj1618/uibridge/internal/output"
	"github.com/mj1618/uibridge/internal/version"
	"github.com/spf13/cobra"
)

// cfg is loaded once per invocation by the root pre-run hook.
var cfg = config.NewDefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "uibridge",
	Short: "Drive and record a desktop application's widget tree",
	Long: `uibridge exposes an application's widgets to automation clients over a JSON
command protocol and records user sessions as replayable procedure documents.

Run "uibridge serve" inside or alongside the host, then use the other
subcommands (or "uibridge mcp" for AI agents) to talk to it.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version.String()
	rootCmd.PersistentFlags().String("config", "", "Path to a yaml config file")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent json output")
	rootCmd.PersistentFlags().String("endpoint", "", "Command endpoint URL (overrides server.endpoint)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}

// endpointURL returns the --endpoint flag or server.endpoint.
func endpointURL() string {
	if ep, _ := rootCmd.PersistentFlags().GetString("endpoint"); ep != "" {
		return ep
	}
	return cfg.Server.Endpoint
}
