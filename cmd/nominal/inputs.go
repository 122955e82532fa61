package nominal

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/manifest"
	"github.com/vivienm/nominal/pkg/rename"
)

// planInputs are the flags shared by the commands that build a plan
type planInputs struct {
	manifests []string
}

func (in *planInputs) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&in.manifests, "file", "f", nil, MsgFlagFile)
}

func (in *planInputs) readsStdin() bool {
	return slices.Contains(in.manifests, manifest.Stdin)
}

func usageError(format string, args ...interface{}) error {
	return errors.Newf(errors.ErrInvalidInput, format, args...)
}

// renamesFromArgs pairs up positional arguments as SOURCE TARGET
func renamesFromArgs(args []string) ([]rename.Rename, error) {
	if len(args)%2 != 0 {
		return nil, usageError(MsgErrOddArgs, len(args))
	}
	renames := make([]rename.Rename, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		renames = append(renames, rename.New(args[i], args[i+1]))
	}
	return renames, nil
}

// buildPlan gathers the renames of the arguments then of the manifests, in
// that order, and plans them.
func (a *app) buildPlan(cmd *cobra.Command, in *planInputs, args []string) (*rename.Plan, error) {
	cfg, err := a.config(cmd)
	if err != nil {
		return nil, err
	}

	renames, err := renamesFromArgs(args)
	if err != nil {
		return nil, err
	}

	loader := &manifest.Loader{FS: a.fs, Stdin: cmd.InOrStdin()}
	for _, path := range in.manifests {
		loaded, err := loader.Load(path)
		if err != nil {
			return nil, err
		}
		renames = append(renames, loaded...)
	}

	renamer := rename.FromRenames(renames,
		rename.WithCollation(cfg.Collation()),
		rename.WithFS(a.fs),
	)
	return renamer.Plan()
}
