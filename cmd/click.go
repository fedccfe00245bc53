package cmd

import (
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click a widget",
	Long: `Click a widget addressed by objectName or by a search.

Examples:
  uibridge click --name okButton
  uibridge click --by text --value "Add Layer" --button right`,
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	addTargetFlags(clickCmd)
	clickCmd.Flags().String("button", "", "Mouse button: left, right, middle")
}

func runClick(cmd *cobra.Command, args []string) error {
	p := targetParams(cmd)
	setString(cmd, p, "button", "button")
	return callAndPrint(cmd, "widget.click", p)
}
