package cmd

import (
	"fmt"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/spf13/cobra"
)

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "List visible error dialogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAndPrint(cmd, "error.detect", nil)
	},
}

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close a top-level dialog",
	Long: `Close a dialog by exact objectName or title substring.

Examples:
  uibridge close --title Error
  uibridge close --name layerDialog --force`,
	RunE: runClose,
}

func init() {
	rootCmd.AddCommand(errorsCmd)
	rootCmd.AddCommand(closeCmd)
	closeCmd.Flags().String("name", "", "Dialog objectName")
	closeCmd.Flags().String("title", "", "Dialog title substring")
	closeCmd.Flags().Bool("force", false, "Close even if the dialog refuses")
}

func runClose(cmd *cobra.Command, args []string) error {
	p := command.Params{}
	setString(cmd, p, "name", "objectName")
	setString(cmd, p, "title", "title")
	if len(p) == 0 {
		return fmt.Errorf("--name or --title is required")
	}
	setBool(cmd, p, "force", "force")
	return callAndPrint(cmd, "dialog.close", p)
}
