package nominal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivienm/nominal/pkg/ui"
)

func (a *app) newPlanCmd() *cobra.Command {
	var (
		in     planInputs
		format string
	)

	cmd := &cobra.Command{
		Use:     "plan [SOURCE TARGET]...",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.buildPlan(cmd, &in, args)
			if err != nil {
				return err
			}
			if plan.IsEmpty() && a.format(cmd.OutOrStdout()) != ui.FormatJSON {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNothingToRename)
				return nil
			}
			return a.renderPlan(cmd.OutOrStdout(), plan)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
