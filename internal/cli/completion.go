package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the shell completion command.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for gridscad.

To load completions:

Bash:
  $ source <(gridscad completion bash)

  # To load completions for each session (Linux):
  $ gridscad completion bash > /etc/bash_completion.d/gridscad

Zsh:
  # Requires compinit; start a new shell afterwards.
  $ gridscad completion zsh > "${fpath[1]}/_gridscad"

Fish:
  $ gridscad completion fish | source

  $ gridscad completion fish > ~/.config/fish/completions/gridscad.fish

PowerShell:
  PS> gridscad completion powershell | Out-String | Invoke-Expression

  PS> gridscad completion powershell > gridscad.ps1  # then source it from $PROFILE
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
