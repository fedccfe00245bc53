package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find widgets by objectName, title, class or text",
	Long: `Search the widget tree and print every match.

Examples:
  uibridge find --by title --value Layers
  uibridge find --by class --value QPushButton --parent QgisApp --visible`,
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	addTargetFlags(findCmd)
	findCmd.Flags().Bool("visible", false, "Only visible widgets")
}

func runFind(cmd *cobra.Command, args []string) error {
	p := targetParams(cmd)
	if p.String("type", "") == "" || p.String("value", "") == "" {
		return fmt.Errorf("--by and --value are required")
	}
	delete(p, "objectName")
	setBool(cmd, p, "visible", "visible_only")
	return callAndPrint(cmd, "widget.find", p)
}
