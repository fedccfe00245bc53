package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <command> [key=value...]",
	Short: "Send any command to the server",
	Long: `Send one command to the server and print the result.

Parameters are given as key=value pairs or as a JSON object with --params.
Pairs are applied on top of --params.

Examples:
  uibridge call help
  uibridge call widget.find type=title value=Layers
  uibridge call widget.click --params '{"objectName": "okButton"}'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().String("params", "", "JSON object of parameters")
}

func runCall(cmd *cobra.Command, args []string) error {
	params := command.Params{}
	if raw, _ := cmd.Flags().GetString("params"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &params); err != nil {
			return fmt.Errorf("invalid --params: %w", err)
		}
	}
	pairs, err := parseParams(args[1:])
	if err != nil {
		return err
	}
	for k, v := range pairs {
		params[k] = v
	}
	return callAndPrint(cmd, args[0], params)
}
