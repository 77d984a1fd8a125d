package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/yarn-completions/pkg/deps"
	"github.com/matzehuels/yarn-completions/pkg/deps/javascript"
)

// Every listing command prints nothing when its input is unavailable. The
// cause is logged at debug level only.

func (c *CLI) scriptsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scripts",
		Short: "List script names declared in package.json",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := c.readManifest(cmd.Context())
			if !ok {
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), m.ScriptList())
			return nil
		},
	}
}

func (c *CLI) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "List suggested packages for yarn add",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.printSuggestions(cmd, deps.Normal)
			return nil
		},
	}
}

func (c *CLI) addDevCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-dev",
		Short: "List suggested packages for yarn add --dev",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.printSuggestions(cmd, deps.Dev)
			return nil
		},
	}
}

func (c *CLI) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "List dependencies declared in package.json",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := c.readManifest(cmd.Context())
			if !ok {
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), m.RemoveCandidates())
			return nil
		},
	}
}

func (c *CLI) whyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "why",
		Short: "List packages installed in node_modules",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			pkgs, err := javascript.ScanNodeModules(c.Fs, c.projectDir())
			if err != nil {
				logger.Debug("scan failed", "err", err)
				return nil
			}
			prog.done(fmt.Sprintf("listed %d installed packages", len(pkgs)))
			fmt.Fprint(cmd.OutOrStdout(), strings.Join(pkgs, "\n"))
			return nil
		},
	}
}

// printSuggestions resolves a flavor and prints it followed by a newline.
func (c *CLI) printSuggestions(cmd *cobra.Command, f deps.Flavor) {
	prog := newProgress(loggerFromContext(cmd.Context()))
	names := c.newResolver(cmd.Context()).Resolve(f)
	prog.done(fmt.Sprintf("resolved %d %s", names.Len(), f))
	fmt.Fprintln(cmd.OutOrStdout(), names.String())
}

// readManifest loads package.json from the project directory. ok is false
// when it is missing or malformed.
func (c *CLI) readManifest(ctx context.Context) (*javascript.Manifest, bool) {
	m, err := javascript.ReadManifest(c.Fs, c.projectDir())
	if err != nil {
		loggerFromContext(ctx).Debug("manifest unavailable", "err", err)
		return nil, false
	}
	return m, true
}
