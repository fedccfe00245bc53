package cmd

import (
	"strings"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/spf13/cobra"
)

var checkpointCmd = &cobra.Command{
	Use:     "checkpoint",
	Aliases: []string{"crash"},
	Short:   "Save and restore project checkpoints",
}

var checkpointSaveCmd = &cobra.Command{
	Use:   "save <operation>",
	Short: "Record a checkpoint before a risky operation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAndPrint(cmd, "crash.save", command.Params{"operation": strings.Join(args, " ")})
	},
}

var checkpointListCmd = &cobra.Command{
	Use:   "list",
	Short: "List checkpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAndPrint(cmd, "crash.list", nil)
	},
}

var checkpointRestoreCmd = &cobra.Command{
	Use:   "restore <checkpoint_id>",
	Short: "Look up a checkpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAndPrint(cmd, "crash.restore", command.Params{"checkpoint_id": args[0]})
	},
}

func init() {
	rootCmd.AddCommand(checkpointCmd)
	checkpointCmd.AddCommand(checkpointSaveCmd, checkpointListCmd, checkpointRestoreCmd)
}
