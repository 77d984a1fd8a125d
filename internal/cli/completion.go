package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand generates completion scripts for this binary itself.
// The yarn completion scripts call the listing commands instead.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for yarn-completions.

To load completions:

Bash:
  $ source <(yarn-completions completion bash)

Zsh:
  $ yarn-completions completion zsh > "${fpath[1]}/_yarn-completions"

Fish:
  $ yarn-completions completion fish | source

PowerShell:
  PS> yarn-completions completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}
