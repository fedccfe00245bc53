package cmd

import (
	"github.com/mj1618/uibridge/internal/command"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys <keys>",
	Short: "Send a key combination or literal text",
	Long: `Send keys to a widget, or to the focused widget when no target is given.

A combination such as Ctrl+S or a named key such as Enter is sent as one
stroke; anything else is typed character by character.

Examples:
  uibridge keys Ctrl+S
  uibridge keys "hello world" --name searchBox --delay 0.05`,
	Args: cobra.ExactArgs(1),
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().String("name", "", "Target widget objectName")
	keysCmd.Flags().Float64("delay", 0, "Seconds between strokes")
}

func runKeys(cmd *cobra.Command, args []string) error {
	p := command.Params{"keys": args[0]}
	setString(cmd, p, "name", "objectName")
	setFloat(cmd, p, "delay", "delay")
	return callAndPrint(cmd, "widget.send_keys", p)
}
