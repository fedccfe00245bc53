package cmd

import (
	"github.com/mj1618/uibridge/internal/command"
	"github.com/spf13/cobra"
)

var setTextCmd = &cobra.Command{
	Use:   "set-text <text>",
	Short: "Set the text of an input widget",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetText,
}

var selectCmd = &cobra.Command{
	Use:   "select <objectName> <item>",
	Short: "Select an item in a list or combo box",
	Args:  cobra.ExactArgs(2),
	RunE:  runSelect,
}

func init() {
	rootCmd.AddCommand(setTextCmd)
	addTargetFlags(setTextCmd)
	setTextCmd.Flags().Bool("append", false, "Keep existing text")

	rootCmd.AddCommand(selectCmd)
	selectCmd.Flags().Bool("index", false, "Treat <item> as a zero-based index")
}

func runSetText(cmd *cobra.Command, args []string) error {
	p := targetParams(cmd)
	p["text"] = args[0]
	if appendText, _ := cmd.Flags().GetBool("append"); appendText {
		p["clear_first"] = false
	}
	return callAndPrint(cmd, "widget.set_text", p)
}

func runSelect(cmd *cobra.Command, args []string) error {
	byIndex, _ := cmd.Flags().GetBool("index")
	p := command.Params{"objectName": args[0], "value": args[1], "by_index": byIndex}
	if byIndex {
		p["value"] = parseValue(args[1])
	}
	return callAndPrint(cmd, "widget.select_item", p)
}
