package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "inspect <project>",
		Short: "Browse a project's elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if plain {
				fmt.Fprintln(cmd.OutOrStdout(), elementTable(p.Elements, p.Layers))
				return nil
			}
			_, err = tea.NewProgram(NewElementListModel(p), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print a table instead of the interactive browser")
	return cmd
}
