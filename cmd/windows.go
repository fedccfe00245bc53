package cmd

import (
	"github.com/mj1618/uibridge/internal/command"
	"github.com/spf13/cobra"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List top-level windows",
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().Bool("all", false, "Include hidden windows")
}

func runWindows(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	return callAndPrint(cmd, "widget.list_windows", command.Params{"visible_only": !all})
}
