package nominal

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/lock"
	"github.com/vivienm/nominal/pkg/paths"
	"github.com/vivienm/nominal/pkg/rename"
	"github.com/vivienm/nominal/pkg/types"
	"github.com/vivienm/nominal/pkg/ui/confirmations"
)

// lockTimeout bounds the wait for a concurrent run to finish applying
const lockTimeout = 5 * time.Second

func (a *app) newApplyCmd() *cobra.Command {
	var (
		in     planInputs
		yes    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "apply [SOURCE TARGET]...",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd)
			if err != nil {
				return err
			}
			confirm := cfg.Confirm.Enabled && !yes && !dryRun
			if confirm && in.readsStdin() && a.confirmer == nil {
				return usageError(MsgErrStdinConfirm)
			}

			plan, err := a.buildPlan(cmd, &in, args)
			if err != nil {
				return err
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			theme := a.theme(errOut)

			if plan.IsEmpty() {
				fmt.Fprintln(out, MsgNothingToRename)
				return nil
			}
			if err := a.renderPlan(out, plan); err != nil {
				return err
			}

			if dryRun {
				fmt.Fprintln(errOut, theme.Muted.Render(MsgDryRunNotice))
				return nil
			}

			var confirmer types.Confirmer = confirmations.AutoConfirmer{Answer: true}
			if confirm {
				confirmer = a.confirmerFor(cmd)
			}
			decision, err := plan.Confirm(confirmer)
			if err != nil {
				return err
			}
			log.Debug().Stringer("decision", decision).Bool("prompted", confirm).Msg("Plan confirmation")
			if decision != rename.DecisionYes {
				return errors.New(errors.ErrNotConfirmed, MsgAborted)
			}

			lk, err := lock.Acquire(paths.LockFile(), lockTimeout)
			if err != nil {
				return err
			}
			defer func() { _ = lk.Release() }()

			if err := plan.Apply(); err != nil {
				printStatus(errOut, theme.ErrorIndicator(), MsgAppliedFormat, plan.Completed(), plan.Len())
				return err
			}
			printStatus(errOut, theme.SuccessIndicator(), MsgAppliedFormat, plan.Completed(), plan.Len())
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)

	return cmd
}
