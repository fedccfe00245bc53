package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/output"
	"github.com/spf13/cobra"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Browse saved procedure documents",
}

var workflowListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved workflows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAndPrint(cmd, "workflow.list", nil)
	},
}

var workflowShowCmd = &cobra.Command{
	Use:   "show <workflow_name>",
	Short: "Show a saved workflow",
	Long: `Show a saved workflow. With --render the markdown document is rendered
for the terminal instead of printed as a result.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkflowShow,
}

func init() {
	rootCmd.AddCommand(workflowCmd)
	workflowCmd.AddCommand(workflowListCmd, workflowShowCmd)
	workflowShowCmd.Flags().Bool("render", false, "Render the markdown document")
	workflowShowCmd.Flags().String("style", "auto", "Render style: auto, dark, light, notty")
}

func runWorkflowShow(cmd *cobra.Command, args []string) error {
	params := command.Params{"workflow_name": args[0]}
	if render, _ := cmd.Flags().GetBool("render"); !render {
		return callAndPrint(cmd, "workflow.get", params)
	}

	res, err := newClient().Call(cmd.Context(), "workflow.get", params)
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("workflow.get failed (%s): %s", res.Code, res.Error)
	}
	content, _ := res.Fields["content"].(string)
	style, _ := cmd.Flags().GetString("style")
	return output.RenderMarkdown(cmd.OutOrStdout(), content, style, output.TerminalWidth(os.Stdout))
}
