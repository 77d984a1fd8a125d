// Package cli implements the yarn-completions command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/yarn-completions/pkg/buildinfo"
	"github.com/matzehuels/yarn-completions/pkg/deps"
	"github.com/matzehuels/yarn-completions/pkg/deps/curated"
	"github.com/matzehuels/yarn-completions/pkg/deps/custom"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the binary name shown in usage and completion scripts.
	appName = "yarn-completions"

	// envPrefix namespaces the environment variables bound to flags.
	envPrefix = "YARN_COMPLETIONS"
)

// Settings keys shared by flags and environment variables.
const (
	keyConfig  = "config"
	keyDir     = "dir"
	keyVerbose = "verbose"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Fs     afero.Fs

	settings *viper.Viper
}

// New creates a CLI that reads from the real filesystem and logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Fs:       afero.NewOsFs(),
		settings: newSettings(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Unknown subcommands and a missing subcommand run the root's no-op handler,
// so the binary prints nothing instead of usage text.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName + " <scripts|add|add-dev|remove|why>",
		Short:         "Completion data for the yarn CLI",
		Long:          `yarn-completions prints newline-separated package, script and module names for shell completion of yarn subcommands.`,
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.settings.GetBool(keyVerbose) {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				c.Logger.Debug("ignoring unknown subcommand", "name", args[0])
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	// `help` falls through to RunE like any other unknown word.
	root.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "override document (default ~/"+custom.FileName+")")
	flags.String(keyDir, "", "project directory (default current directory)")
	flags.BoolP(keyVerbose, "v", false, "enable debug logging on stderr")
	for _, key := range []string{keyConfig, keyDir, keyVerbose} {
		_ = c.settings.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(c.scriptsCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.addDevCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.whyCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings
// =============================================================================

// newSettings binds YARN_COMPLETIONS_* environment variables.
func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// projectDir returns --dir, $YARN_COMPLETIONS_DIR or the working directory.
func (c *CLI) projectDir() string {
	if dir := c.settings.GetString(keyDir); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// overridePath returns --config, $YARN_COMPLETIONS_CONFIG or the default
// document in the home directory.
func (c *CLI) overridePath() string {
	if path := c.settings.GetString(keyConfig); path != "" {
		return path
	}
	return custom.DefaultPath()
}

// =============================================================================
// Resolver Factory
// =============================================================================

// newResolver combines the curated catalog with the user's override document.
func (c *CLI) newResolver(ctx context.Context) deps.Resolver {
	overrides := custom.NewReader(c.Fs, c.overridePath()).WithLogger(loggerFromContext(ctx))
	return deps.Resolver{Catalog: curated.Catalog, Overrides: overrides}
}
