package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for hydrodraw.

To load completions:

Bash:
  $ source <(hydrodraw completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ hydrodraw completion bash > /etc/bash_completion.d/hydrodraw
  # macOS:
  $ hydrodraw completion bash > $(brew --prefix)/etc/bash_completion.d/hydrodraw

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ hydrodraw completion zsh > "${fpath[1]}/_hydrodraw"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ hydrodraw completion fish | source

  # To load completions for each session, execute once:
  $ hydrodraw completion fish > ~/.config/fish/completions/hydrodraw.fish

PowerShell:
  PS> hydrodraw completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> hydrodraw completion powershell > hydrodraw.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}

// registerCompletions adds dynamic completion of project references and
// element ids to the commands that take them.
func (c *CLI) registerCompletions(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		switch cmd.Name() {
		case "snap", "export", "inspect":
			cmd.ValidArgsFunction = c.completeProjects
		case "split", "split-all", "trim", "extend":
			cmd.ValidArgsFunction = c.completeElements
		case "project":
			for _, sub := range cmd.Commands() {
				if sub.Name() == "show" || sub.Name() == "delete" {
					sub.ValidArgsFunction = c.completeProjects
				}
			}
		}
	}
}

// completeProjects offers stored project ids for the first argument. JSON
// files stay completable through the shell's file completion.
func (c *CLI) completeProjects(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if err := c.loadConfig(); err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	ctx := context.Background()
	st, err := c.openStore(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	defer st.Close()

	projects, err := st.List(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID+"\t"+p.Name)
	}
	return out, cobra.ShellCompDirectiveDefault
}

// completeElements offers element ids of the project named by the first
// argument.
func (c *CLI) completeElements(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return c.completeProjects(cmd, args, toComplete)
	case 1:
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if err := c.loadConfig(); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	p, err := c.loadProject(context.Background(), args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	out := make([]string, 0, len(p.Elements))
	for _, e := range p.Elements {
		out = append(out, fmt.Sprintf("%s\t%s on %s", e.ElementID(), e.Kind(), e.Layer()))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
