package cmd

import (
	"github.com/mj1618/uibridge/internal/command"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <objectName>",
	Short: "Show a widget's properties",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("children", false, "Include direct children")
}

func runInspect(cmd *cobra.Command, args []string) error {
	children, _ := cmd.Flags().GetBool("children")
	return callAndPrint(cmd, "widget.inspect", command.Params{
		"objectName":       args[0],
		"include_children": children,
	})
}
