// Package config loads nominal's settings.
//
// Settings are layered, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user configuration file, $XDG_CONFIG_HOME/nominal/config.toml
//     or the file given with --config (TOML, or YAML by extension)
//  3. NOMINAL_<SECTION>_<KEY> environment variables
//  4. command line flag overrides
package config
