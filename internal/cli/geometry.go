package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hydrodraw/pkg/geom"
)

func (c *CLI) orthoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ortho <x1,y1> <x2,y2>",
		Short: "Constrain the second point to the horizontal or vertical through the first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parsePair(args)
			if err != nil {
				return err
			}
			printer{cmd.OutOrStdout()}.info("%s", formatPoint(geom.ApplyOrtho(start, end)))
			return nil
		},
	}
}

func (c *CLI) polarCommand() *cobra.Command {
	var increment float64
	cmd := &cobra.Command{
		Use:   "polar <x1,y1> <x2,y2>",
		Short: "Rotate the second point to the nearest polar tracking angle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parsePair(args)
			if err != nil {
				return err
			}
			var p geom.Point
			if cmd.Flags().Changed("increment") {
				p = geom.ApplyPolar(start, end, increment)
			} else {
				p = c.cfg.Polar(start, end)
			}
			printer{cmd.OutOrStdout()}.info("%s", formatPoint(p))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&increment, "increment", "i", 15, "angle step in degrees (default from config)")
	return cmd
}

func parsePair(args []string) (geom.Point, geom.Point, error) {
	a, err := parsePoint(args[0])
	if err != nil {
		return geom.Point{}, geom.Point{}, err
	}
	b, err := parsePoint(args[1])
	if err != nil {
		return geom.Point{}, geom.Point{}, err
	}
	return a, b, nil
}
