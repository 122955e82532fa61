package nominal

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vivienm/nominal/pkg/config"
	"github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/paths"
)

func (a *app) newGenConfigCmd() *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			path := a.configPath
			if path == "" {
				path = paths.ConfigFile()
			}

			exists, err := paths.Exists(a.fs, path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "cannot inspect %s", path)
			}
			if exists && !force {
				return errors.Newf(errors.ErrConfigValid, MsgErrConfigExists, path).WithDetail("path", path)
			}

			if err := a.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "cannot create %s", filepath.Dir(path))
			}
			if err := a.fs.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "cannot write %s", path)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}
