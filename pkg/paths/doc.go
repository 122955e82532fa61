// Package paths provides the path helpers nominal relies on.
//
// It covers two concerns:
//
//   - Lexical path algebra used when rendering a rename, most notably
//     CommonAncestor, which works on path components and never touches
//     the filesystem.
//   - Filesystem-aware checks such as Exists, which inspects an entry
//     without following a trailing symbolic link.
//
// It also resolves nominal's XDG locations (configuration file, log file).
//
// # Environment Variables
//
//   - NOMINAL_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/nominal)
//   - NOMINAL_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/nominal)
package paths
