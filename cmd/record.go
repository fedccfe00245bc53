package cmd

import (
	"strings"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a user session as a procedure document",
	Long: `Record what the user does in the host application and save it as a
step-by-step procedure document.

Examples:
  uibridge record start add-layer --description "Add a vector layer"
  uibridge record note "Pick the shapefile from the data folder"
  uibridge record stop`,
}

var recordStartCmd = &cobra.Command{
	Use:   "start <workflow_name>",
	Short: "Start recording",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := command.Params{"workflow_name": args[0]}
		setString(cmd, p, "description", "description")
		return callAndPrint(cmd, "workflow.record_start", p)
	},
}

var recordStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop recording and save the document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAndPrint(cmd, "workflow.record_stop", nil)
	},
}

var recordNoteCmd = &cobra.Command{
	Use:   "note <text>",
	Short: "Add a note to the current recording",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAndPrint(cmd, "workflow.add_note", command.Params{"note": strings.Join(args, " ")})
	},
}

var recordStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show recording status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAndPrint(cmd, "workflow.status", nil)
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.AddCommand(recordStartCmd, recordStopCmd, recordNoteCmd, recordStatusCmd)
	recordStartCmd.Flags().String("description", "", "What the workflow does")
}
