package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/algcurve/internal/pairfile"
	"github.com/gogpu/algcurve/plot"
)

func newEventsCmd(opts *rootOptions) *cobra.Command {
	var lines bool
	cmd := &cobra.Command{
		Use:   "events [pair.yaml]",
		Short: "List the events of a curve pair and the branch counts between them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := opts.load(args)
			if err != nil {
				return err
			}
			pa, err := file.Analysis()
			if err != nil {
				return err
			}
			if lines {
				pa.Pair().MaterializeAll()
			}
			r := newReporter(cmd.OutOrStdout())
			r.header(pa)
			r.events(pa)
			r.intervals(pa)
			return r.err()
		},
	}
	cmd.Flags().BoolVar(&lines, "all", false, "materialize every line in parallel before reporting")
	return cmd
}

func newLineCmd(opts *rootOptions) *cobra.Command {
	var q pairfile.Query
	cmd := &cobra.Command{
		Use:   "line [pair.yaml]",
		Short: "Show the vertical line at an x-coordinate",
		Long: `Show the points of both curves on the vertical line at --x.

x may be an integer, a fraction, a decimal or root(<polynomial in x>, k) for
the k-th real root counted from 0. --perturb - or + selects the line just left
or right of x. Without --x the queries of the pair file are run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := opts.load(args)
			if err != nil {
				return err
			}
			queries := file.Queries
			if q.X != "" {
				queries = []pairfile.Query{q}
			}
			if len(queries) == 0 {
				return fmt.Errorf("no query: pass --x")
			}
			pa, err := file.Analysis()
			if err != nil {
				return err
			}
			r := newReporter(cmd.OutOrStdout())
			for _, q := range queries {
				x, s, err := q.Resolve()
				if err != nil {
					return err
				}
				r.line(q, pa.VerticalLineForX(x, s))
			}
			return r.err()
		},
	}
	cmd.Flags().StringVar(&q.X, "x", "", "x-coordinate")
	cmd.Flags().StringVar(&q.Perturb, "perturb", "0", "perturbation: -, 0 or +")
	return cmd
}

func newPlotCmd(opts *rootOptions) *cobra.Command {
	var (
		output        string
		width, height int
		window        []float64
		noLabels      bool
	)
	cmd := &cobra.Command{
		Use:   "plot [pair.yaml]",
		Short: "Render a curve pair to PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := opts.load(args)
			if err != nil {
				return err
			}
			pa, err := file.Analysis()
			if err != nil {
				return err
			}

			o := file.Plot.RenderOptions(plot.DefaultOptions())
			o.Workers = file.Workers
			if cmd.Flags().Changed("width") {
				o.Width = width
			}
			if cmd.Flags().Changed("height") {
				o.Height = height
			}
			if len(window) > 0 {
				if len(window) != 4 {
					return fmt.Errorf("--window needs xmin,xmax,ymin,ymax")
				}
				o.XMin, o.XMax, o.YMin, o.YMax = window[0], window[1], window[2], window[3]
			}
			if noLabels {
				o.Labels = false
			}
			if output == "" && file.Plot != nil {
				output = file.Plot.Output
			}
			if output == "" {
				output = "pair.png"
			}

			img, err := plot.Render(pa, o)
			if err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := plot.WritePNG(f, img); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			r := newReporter(cmd.OutOrStdout())
			r.printf("wrote %s (%dx%d, %d events)\n", output, o.Width, o.Height, pa.NumEvents())
			return r.err()
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&output, "output", "o", "", "output file (default pair.png)")
	fl.IntVar(&width, "width", 512, "image width")
	fl.IntVar(&height, "height", 512, "image height")
	fl.Float64SliceVar(&window, "window", nil, "visible window xmin,xmax,ymin,ymax")
	fl.BoolVar(&noLabels, "no-labels", false, "omit event and equation labels")
	return cmd
}
