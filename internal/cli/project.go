package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	drawio "github.com/matzehuels/hydrodraw/pkg/io"
	"github.com/matzehuels/hydrodraw/pkg/workspace"
)

// projectCommand creates the project command group.
func (c *CLI) projectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage stored projects",
	}
	cmd.AddCommand(c.projectListCommand())
	cmd.AddCommand(c.projectCreateCommand())
	cmd.AddCommand(c.projectShowCommand())
	cmd.AddCommand(c.projectImportCommand())
	cmd.AddCommand(c.projectDeleteCommand())
	return cmd
}

func (c *CLI) projectListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored projects",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			projects, err := c.newService(st).List(ctx)
			if err != nil {
				return err
			}
			out := printer{cmd.OutOrStdout()}
			if len(projects) == 0 {
				out.info("no projects")
				return nil
			}
			rows := make([][]string, len(projects))
			for i, p := range projects {
				rows[i] = []string{p.ID, p.Name, fmt.Sprint(len(p.Elements)), fmt.Sprint(len(p.Layers)), p.UpdatedAt.Local().Format("2006-01-02 15:04")}
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("ID", "Name", "Elements", "Layers", "Updated").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return styleHeader
					}
					return lipgloss.NewStyle()
				})
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func (c *CLI) projectCreateCommand() *cobra.Command {
	var req workspace.NewProjectRequest
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			req.Name = args[0]
			p, err := c.newService(st).Create(ctx, req)
			if err != nil {
				return err
			}
			out := printer{cmd.OutOrStdout()}
			out.success("created %s", StyleValue.Render(p.Name))
			out.detail("id %s", p.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "project description")
	cmd.Flags().Float64Var(&req.CanvasWidth, "width", 0, "canvas width (default 2000)")
	cmd.Flags().Float64Var(&req.CanvasHeight, "height", 0, "canvas height (default 1500)")
	return cmd
}

func (c *CLI) projectShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Show a project's settings and elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			out := printer{w}
			fmt.Fprintln(w, StyleTitle.Render(p.Name))
			if p.Description != "" {
				fmt.Fprintln(w, StyleDim.Render(p.Description))
			}
			out.keyValue("id", p.ID)
			out.keyValue("canvas", fmt.Sprintf("%s x %s", trimFloat(p.CanvasWidth), trimFloat(p.CanvasHeight)))
			out.keyValue("grid", fmt.Sprintf("%s (shown %t, snap %t)", trimFloat(p.GridSize), p.GridEnabled, p.SnapToGrid))
			out.keyValue("layers", fmt.Sprint(len(p.Layers)))
			out.keyValue("updated", p.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
			if len(p.Elements) > 0 {
				fmt.Fprintln(w, elementTable(p.Elements, p.Layers))
			}
			return nil
		},
	}
}

func (c *CLI) projectImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a project JSON file into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := drawio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := c.newService(st).Import(ctx, p); err != nil {
				return err
			}
			out := printer{cmd.OutOrStdout()}
			out.success("imported %s with %d elements", StyleValue.Render(p.Name), len(p.Elements))
			out.detail("id %s", p.ID)
			return nil
		},
	}
}

func (c *CLI) projectDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a stored project",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := c.newService(st).Delete(ctx, args[0]); err != nil {
				return err
			}
			printer{cmd.OutOrStdout()}.success("deleted %s", args[0])
			return nil
		},
	}
}
