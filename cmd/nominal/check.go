package nominal

import (
	"github.com/spf13/cobra"

	"github.com/vivienm/nominal/pkg/errors"
)

func (a *app) newCheckCmd() *cobra.Command {
	var in planInputs

	cmd := &cobra.Command{
		Use:     "check [SOURCE TARGET]...",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.buildPlan(cmd, &in, args)
			if err != nil {
				return err
			}

			conflicts, err := plan.Check()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			theme := a.theme(out)
			if len(conflicts) == 0 {
				printStatus(out, theme.SuccessIndicator(), MsgNoConflicts)
				return nil
			}
			for _, c := range conflicts {
				printStatus(out, theme.WarningIndicator(), "%s", c)
			}
			return errors.Newf(errors.ErrConflict, MsgErrConflictsFormat, len(conflicts)).
				WithDetail("conflicts", len(conflicts))
		},
	}

	in.register(cmd)
	return cmd
}
