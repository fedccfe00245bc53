package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/observability"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Read recent server log messages",
	Long: `Print the server's most recent log messages, oldest first.

With --follow the server's log file (logger.log_file) is tailed instead.

Examples:
  uibridge logs --limit 50
  uibridge logs --category uibridge
  uibridge logs --follow`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().String("category", "", "Only messages in this category")
	logsCmd.Flags().Int("limit", 0, "Number of messages (server default when unset)")
	logsCmd.Flags().BoolP("follow", "f", false, "Tail the server log file")
}

func runLogs(cmd *cobra.Command, args []string) error {
	if follow, _ := cmd.Flags().GetBool("follow"); follow {
		if cfg.Logger.LogFile == "" {
			return fmt.Errorf("--follow needs logger.log_file to be configured")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		out := cmd.OutOrStdout()
		return observability.Follow(ctx, cfg.Logger.LogFile, true, func(line string) {
			fmt.Fprintln(out, line)
		})
	}

	p := command.Params{}
	setString(cmd, p, "category", "category")
	if cmd.Flags().Changed("limit") {
		limit, _ := cmd.Flags().GetInt("limit")
		p["limit"] = limit
	}
	return callAndPrint(cmd, "log.read", p)
}
