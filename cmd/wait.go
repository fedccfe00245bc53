package cmd

import (
	"time"

	"github.com/mj1618/uibridge/internal/client"
	"github.com/spf13/cobra"
)

var waitCmd = &cobra.Command{
	Use:   "wait <state>",
	Short: "Wait for a widget to reach a state",
	Long: `Wait on the server until a widget reaches a state.

States: visible, hidden, enabled, disabled, exists, gone.

Examples:
  uibridge wait visible --name layerDialog
  uibridge wait gone --by title --value "Loading" --timeout 30`,
	Args: cobra.ExactArgs(1),
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	addTargetFlags(waitCmd)
	waitCmd.Flags().Float64("timeout", 0, "Timeout in seconds (server default when unset)")
}

func runWait(cmd *cobra.Command, args []string) error {
	p := targetParams(cmd)
	p["state"] = args[0]
	setFloat(cmd, p, "timeout", "timeout")

	// Waits run server side; keep the round trip open past the wait itself.
	c := newClient()
	if budget := p.Seconds("timeout", 0) + 5*time.Second; budget > client.DefaultTimeout {
		c.WithTimeout(budget)
	}
	return callWithAndPrint(cmd, c, "widget.wait_for", p)
}
