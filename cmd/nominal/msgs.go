package nominal

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rename files in bulk, safely"
	MsgApplyShort      = "Plan, confirm and apply renames"
	MsgPlanShort       = "Print the plan without applying it"
	MsgPlanLong        = "Plan builds the rename plan from the given renames and prints it, one rename per line, without touching the filesystem."
	MsgCheckShort      = "Report renames that would fail"
	MsgGenConfigShort  = "Print the default configuration"
	MsgGenConfigLong   = "Print the default configuration with every value commented out.\n\nWith --write, the file is written to the user configuration path instead."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgManLong         = "Generate man pages for nominal and its commands into DIR (default: current directory)."

	// Status messages
	MsgNothingToRename = "Nothing to rename"
	MsgDryRunNotice    = "Dry run: no changes were made"
	MsgAppliedFormat   = "%d of %d renames applied"
	MsgAborted         = "Aborted, no changes were made"
	MsgNoConflicts     = "No conflicts found"
	MsgConfigWritten   = "Configuration written to %s\n"
	MsgVersionFormat   = "nominal version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrOddArgs         = "renames are given as SOURCE TARGET pairs, got %d arguments"
	MsgErrStdinConfirm    = "reading renames from standard input requires --yes or --dry-run"
	MsgErrConflictsFormat = "%d conflicts found"
	MsgErrConfigExists    = "configuration file %s already exists, use --force to overwrite it"
	MsgErrNoCommand       = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file (default: $XDG_CONFIG_HOME/nominal/config.toml)"
	MsgFlagNatural = "Sort renames in natural order (file2 before file10)"
	MsgFlagLocale  = "Language tag for natural ordering (e.g. fr, de-CH)"
	MsgFlagColor   = "Color paths: auto, always or never"
	MsgFlagFile    = "Read renames from a manifest file (repeatable, - for stdin)"
	MsgFlagYes     = "Apply without asking for confirmation"
	MsgFlagDryRun  = "Print the plan without applying it"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagWrite   = "Write the configuration file instead of printing it"
	MsgFlagForce   = "Overwrite an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
