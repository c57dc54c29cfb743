// Command algcurve analyses pairs of plane algebraic curves.
//
// Usage:
//
//	algcurve events --f "x^2 + y^2 - 1" --g "y - x"
//	algcurve line --f "x^2 + y^2 - 1" --g "y" --x "root(x^2 - 1, 0)" --perturb +
//	algcurve plot pair.yaml -o pair.png
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/algcurve"
	"github.com/gogpu/algcurve/internal/pairfile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions are the flags shared by all subcommands.
type rootOptions struct {
	f, g      string
	precision uint
	workers   int
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "algcurve",
		Short: "Exact topology of pairs of plane algebraic curves",
		Long: `algcurve computes the events of two real plane curves f(x, y) = 0 and
g(x, y) = 0 and reports how their branches are ordered on every vertical line.

Curves come from --f and --g or from a YAML pair file given as argument.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				algcurve.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.f, "f", "", "first curve, e.g. \"x^2 + y^2 - 1\"")
	pf.StringVar(&opts.g, "g", "", "second curve")
	pf.UintVar(&opts.precision, "precision", 0, "y-interval precision in bits (default 16)")
	pf.IntVar(&opts.workers, "workers", 0, "goroutines for parallel work (default GOMAXPROCS)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log analysis steps to stderr")

	root.AddCommand(newEventsCmd(opts), newLineCmd(opts), newPlotCmd(opts))
	return root
}

// load returns the pair file named by args, or one built from --f and --g.
// Flags override file settings.
func (o *rootOptions) load(args []string) (*pairfile.File, error) {
	var file *pairfile.File
	switch {
	case len(args) > 0:
		f, err := pairfile.Load(args[0])
		if err != nil {
			return nil, err
		}
		file = f
	case o.f != "" && o.g != "":
		file = &pairfile.File{Curves: []string{o.f, o.g}}
	default:
		return nil, fmt.Errorf("need a pair file or both --f and --g")
	}
	if o.precision > 0 {
		file.Precision = o.precision
	}
	if o.workers != 0 {
		file.Workers = o.workers
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file, nil
}
