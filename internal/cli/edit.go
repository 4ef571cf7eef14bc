package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hydrodraw/pkg/workspace"
)

// runEdit opens ref, applies op and saves file-backed projects.
func (c *CLI) runEdit(cmd *cobra.Command, ref, name string, op func(ctx context.Context, s *session) (workspace.Change, error)) error {
	ctx := cmd.Context()
	prog := newProgress(loggerFromContext(ctx))

	s, err := c.openSession(ctx, ref)
	if err != nil {
		return err
	}
	defer s.close()

	change, err := op(ctx, s)
	if err != nil {
		return err
	}
	out := printer{cmd.OutOrStdout()}
	out.change(name, change)
	if change.Empty() {
		return nil
	}
	if err := s.save(ctx); err != nil {
		return err
	}
	if s.file != "" {
		out.file(s.file)
	}
	prog.done(name + " " + s.projectID)
	return nil
}

func (c *CLI) splitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "split <project> <element> <x,y>",
		Short: "Split an element in two at a point",
		Long: `Split a line, polyline, circle or arc at a point on it.

Lines and polylines become two pieces meeting at the point. A circle becomes
an arc with a small gap at the point. An arc becomes two arcs.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parsePoint(args[2])
			if err != nil {
				return err
			}
			return c.runEdit(cmd, args[0], "split", func(ctx context.Context, s *session) (workspace.Change, error) {
				return s.svc.Split(ctx, s.projectID, args[1], at)
			})
		},
	}
}

func (c *CLI) splitAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "split-all <project> <element>",
		Short: "Split an element wherever it crosses another element",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd, args[0], "split-all", func(ctx context.Context, s *session) (workspace.Change, error) {
				return s.svc.SplitAll(ctx, s.projectID, args[1])
			})
		},
	}
}

func (c *CLI) trimCommand() *cobra.Command {
	var edges []string
	cmd := &cobra.Command{
		Use:   "trim <project> <line> <x,y>",
		Short: "Remove the piece of a line between cutting edges",
		Long: `Trim the piece of a line that contains the click point, bounded by the
nearest crossings with the cutting edges on either side.

Without --edges every other visible element cuts.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			click, err := parsePoint(args[2])
			if err != nil {
				return err
			}
			return c.runEdit(cmd, args[0], "trim", func(ctx context.Context, s *session) (workspace.Change, error) {
				return s.svc.Trim(ctx, s.projectID, args[1], click, edges)
			})
		},
	}
	cmd.Flags().StringSliceVarP(&edges, "edges", "e", nil, "cutting edge element ids")
	return cmd
}

func (c *CLI) extendCommand() *cobra.Command {
	var (
		boundaries []string
		pick       string
	)
	cmd := &cobra.Command{
		Use:   "extend <project> <line>",
		Short: "Extend a line to the nearest boundary",
		Long: `Extend a line past its end point to the nearest boundary element.

With --pick the end nearer to the pick point is extended instead. Without
--boundaries every other visible element is a boundary.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := optionalPoint(pick)
			if err != nil {
				return err
			}
			return c.runEdit(cmd, args[0], "extend", func(ctx context.Context, s *session) (workspace.Change, error) {
				return s.svc.Extend(ctx, s.projectID, args[1], boundaries, at)
			})
		},
	}
	cmd.Flags().StringSliceVarP(&boundaries, "boundaries", "b", nil, "boundary element ids")
	cmd.Flags().StringVar(&pick, "pick", "", "extend the end nearer to this x,y point")
	return cmd
}
