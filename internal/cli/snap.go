package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hydrodraw/pkg/snap"
	"github.com/matzehuels/hydrodraw/pkg/workspace"
)

func (c *CLI) snapCommand() *cobra.Command {
	var (
		zoom float64
		ref  string
		all  bool
	)
	cmd := &cobra.Command{
		Use:   "snap <project> <x,y>",
		Short: "Resolve a cursor position to a snap point",
		Long: `Resolve a cursor position against a project's visible elements.

Candidates are tried in priority order: endpoint, midpoint, center,
intersection, perpendicular, tangent, and finally the grid. Perpendicular and
tangent snaps need a reference point (--ref), usually the last placed point.
With --all every candidate within tolerance is listed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cursor, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			reference, err := optionalPoint(ref)
			if err != nil {
				return err
			}

			s, err := c.openSession(ctx, args[0])
			if err != nil {
				return err
			}
			defer s.close()

			out := printer{cmd.OutOrStdout()}
			if !all {
				res, ok, err := s.svc.Snap(ctx, s.projectID, workspace.SnapRequest{Point: cursor, Zoom: zoom, Reference: reference})
				if err != nil {
					return err
				}
				if !ok {
					out.info("no snap near %s", formatPoint(cursor))
					return nil
				}
				out.snapResult(res)
				return nil
			}

			p, err := s.svc.Get(ctx, s.projectID)
			if err != nil {
				return err
			}
			candidates := s.svc.Resolver(p).Candidates(snap.Query{
				Point:     cursor,
				Elements:  p.Elements,
				Layers:    p.Layers,
				Zoom:      zoom,
				Reference: reference,
			})
			if len(candidates) == 0 {
				out.info("no candidates near %s", formatPoint(cursor))
			}
			for _, r := range candidates {
				out.snapResult(r)
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&zoom, "zoom", "z", 1, "view zoom; the pixel tolerance is divided by it")
	cmd.Flags().StringVarP(&ref, "ref", "r", "", "reference x,y for perpendicular and tangent snaps")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every candidate instead of the winner")
	return cmd
}
