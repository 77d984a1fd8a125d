package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/yarn-completions/pkg/deps/custom"
	"github.com/matzehuels/yarn-completions/pkg/errors"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the override document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	cmd.AddCommand(c.configCheckCommand())
	return cmd
}

// configCheckCommand strictly decodes the override document. Completion
// commands ignore a broken document, so this is the place to find out why
// an addition or exclusion has no effect.
func (c *CLI) configCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the override document and summarise its fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := c.overridePath()
			printKeyValue(out, "path", path)

			doc, err := custom.Load(c.Fs, path)
			switch {
			case errors.Is(err, errors.ErrCodeFileNotFound):
				printWarning(out, "override document not found, curated lists are used unchanged")
				return nil
			case err != nil:
				printError(out, "override document is invalid and will be ignored: %s", errors.UserMessage(err))
				return nil
			}

			printSuccess(out, "override document is valid")
			printKeyValue(out, custom.FieldDependencies, strconv.Itoa(len(doc.Dependencies)))
			printKeyValue(out, custom.FieldDevDependencies, strconv.Itoa(len(doc.DevDependencies)))
			printKeyValue(out, custom.FieldExclude, strconv.Itoa(len(doc.Exclude)))
			return nil
		},
	}
}
