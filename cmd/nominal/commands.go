package nominal

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vivienm/nominal/internal/version"
	"github.com/vivienm/nominal/pkg/cobrax/topics"
	"github.com/vivienm/nominal/pkg/config"
	"github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/filesystem"
	"github.com/vivienm/nominal/pkg/logging"
	"github.com/vivienm/nominal/pkg/style"
	"github.com/vivienm/nominal/pkg/types"
	"github.com/vivienm/nominal/pkg/ui"
	"github.com/vivienm/nominal/pkg/ui/confirmations"
)

// Options replace the collaborators of the commands, mostly for tests
type Options struct {
	// FS defaults to the OS filesystem
	FS types.FS
	// Confirmer defaults to a prompt on the command's input and error output
	Confirmer types.Confirmer
}

// app holds the state shared by the commands of one invocation
type app struct {
	fs        types.FS
	confirmer types.Confirmer

	verbosity  int
	configPath string
	natural    bool
	locale     string
	color      string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command with custom collaborators
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{fs: opts.FS, confirmer: opts.Confirmer}
	if a.fs == nil {
		a.fs = filesystem.NewOS()
	}

	rootCmd := &cobra.Command{
		Use:     "nominal",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return usageError(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.configPath, "config", "", MsgFlagConfig)
	flags.BoolVar(&a.natural, "natural", false, MsgFlagNatural)
	flags.StringVar(&a.locale, "locale", "", MsgFlagLocale)
	flags.StringVar(&a.color, "color", "auto", MsgFlagColor)
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp))

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newApplyCmd())
	rootCmd.AddCommand(a.newPlanCmd())
	rootCmd.AddCommand(a.newCheckCmd())
	rootCmd.AddCommand(a.newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help, rendered with glamour
	if _, err := topics.Install(rootCmd, topicsFS, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(func() ui.ColorMode { return a.colorMode(rootCmd) }),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// config loads the configuration once, applying the global flags that were
// set on the command line.
func (a *app) config(cmd *cobra.Command) (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	overrides := make(map[string]interface{})
	if flagChanged(cmd, "natural") {
		overrides["sort.natural"] = a.natural
	}
	if flagChanged(cmd, "locale") {
		overrides["sort.locale"] = a.locale
	}
	if flagChanged(cmd, "color") {
		overrides["output.color"] = a.color
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		overrides["output.format"] = f.Value.String()
	}

	cfg, err := config.Load(config.Options{Path: a.configPath, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	log.Debug().Stringer("config", cfg).Msg("Configuration loaded")

	a.cfg = cfg
	return cfg, nil
}

// flagChanged also sees the global flags of cmd's root, which cobra only
// merges into the flag set of the command being executed.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.Root().PersistentFlags().Lookup(name)
	}
	return f != nil && f.Changed
}

// colorMode is the configured color mode, or ui.ColorAuto when the
// configuration cannot be loaded.
func (a *app) colorMode(cmd *cobra.Command) ui.ColorMode {
	cfg, err := a.config(cmd)
	if err != nil {
		log.Debug().Err(err).Msg("Using automatic colors")
		return ui.ColorAuto
	}
	return cfg.ColorMode()
}

// format resolves the output format for w
func (a *app) format(w io.Writer) ui.Format {
	return ui.ResolveFormat(a.cfg.Format(), a.cfg.ColorMode(), w)
}

// theme returns the status message styles for w
func (a *app) theme(w io.Writer) style.Theme {
	colored := ui.ResolveFormat(ui.FormatAuto, a.cfg.ColorMode(), w) == ui.FormatTerminal
	return style.NewTheme(style.NewRenderer(w, colored))
}

func (a *app) confirmerFor(cmd *cobra.Command) types.Confirmer {
	if a.confirmer != nil {
		return a.confirmer
	}
	return confirmations.NewForTerminal(cmd.InOrStdin(), cmd.ErrOrStderr())
}

func printStatus(w io.Writer, indicator, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", indicator, fmt.Sprintf(format, args...))
}

// ExitCode maps an error returned by the root command to a process exit status
func ExitCode(err error) int {
	switch errors.GetErrorCode(err) {
	case errors.ErrInvalidInput:
		return 2
	default:
		return 1
	}
}
