package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hydrodraw/pkg/errors"
	drawio "github.com/matzehuels/hydrodraw/pkg/io"
	"github.com/matzehuels/hydrodraw/pkg/render"
)

// Export formats.
const (
	formatSVG  = "svg"
	formatPNG  = "png"
	formatPDF  = "pdf"
	formatJSON = "json"
)

type exportOpts struct {
	output     string
	format     string
	fit        float64
	background string
	hidden     bool
	scale      float64
}

// formatOf returns the explicit format or the one implied by the output
// extension.
func (o exportOpts) formatOf() (string, error) {
	f := strings.ToLower(o.format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.output)), ".")
	}
	switch f {
	case formatSVG, formatPNG, formatPDF, formatJSON:
		return f, nil
	case "":
		return formatSVG, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unknown export format %q", f)
}

func (o exportOpts) svgOptions() []render.SVGOption {
	var opts []render.SVGOption
	if o.background != "" {
		opts = append(opts, render.WithBackground(o.background))
	}
	if o.hidden {
		opts = append(opts, render.WithHiddenLayers())
	}
	if o.fit >= 0 {
		opts = append(opts, render.WithFit(o.fit))
	}
	return opts
}

func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{fit: -1, scale: 2}
	cmd := &cobra.Command{
		Use:   "export <project>",
		Short: "Write a project as SVG, PNG, PDF or JSON",
		Long: `Write a project to a file. The format follows the output extension unless
--format is given. PNG and PDF need rsvg-convert from librsvg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			format, err := opts.formatOf()
			if err != nil {
				return err
			}
			p, err := c.loadProject(ctx, args[0])
			if err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = sanitize(p.Name) + "." + format
			}

			if format == formatJSON {
				if err := drawio.ExportJSON(p, opts.output); err != nil {
					return err
				}
			} else {
				data := render.RenderSVG(p, opts.svgOptions()...)
				if format != formatSVG {
					sp := newSpinner(ctx, cmd.ErrOrStderr(), "Converting to "+strings.ToUpper(format)+"...")
					err := sp.run(func() error {
						var cerr error
						if format == formatPNG {
							data, cerr = render.ToPNG(data, opts.scale)
						} else {
							data, cerr = render.ToPDF(data)
						}
						return cerr
					})
					if err != nil {
						return err
					}
				}
				if err := os.WriteFile(opts.output, data, 0o644); err != nil {
					return errors.Wrap(errors.ErrCodeStorage, err, "write %s", opts.output)
				}
			}

			out := printer{cmd.OutOrStdout()}
			out.success("exported %s", StyleValue.Render(p.Name))
			out.file(opts.output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <project name>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "svg, png, pdf or json")
	cmd.Flags().Float64Var(&opts.fit, "fit", -1, "crop to the drawing with this margin instead of the canvas")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color")
	cmd.Flags().BoolVar(&opts.hidden, "hidden", false, "include hidden layers")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2, "PNG scale factor")
	return cmd
}

// sanitize turns a project name into a file name.
func sanitize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "drawing"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}
