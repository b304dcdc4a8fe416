package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/config"
)

// generateFlags are shared by every generate subcommand.
type generateFlags struct {
	output  string
	prefix  string
	scheme  string
	spacing int
	jitter  int
	seed    int64
}

func (g generateFlags) options() ([]builder.BuilderOption, error) {
	idFn, err := builder.IDScheme(g.scheme, g.prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: --id-scheme: %v", errBadFlag, err)
	}
	if g.spacing <= 0 {
		return nil, fmt.Errorf("%w: --spacing %d", errBadFlag, g.spacing)
	}
	if g.jitter < 0 {
		return nil, fmt.Errorf("%w: --jitter %d", errBadFlag, g.jitter)
	}

	return []builder.BuilderOption{
		builder.WithIDScheme(idFn),
		builder.WithSpacing(g.spacing),
		builder.WithJitter(g.jitter),
		builder.WithSeed(g.seed),
	}, nil
}

func (a *app) generateCmd() *cobra.Command {
	var g generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic road network file",
	}
	cmd.PersistentFlags().StringVarP(&g.output, "output", "o", "-", "output file, - for stdout")
	cmd.PersistentFlags().StringVar(&g.prefix, "prefix", builder.DefaultIDPrefix, "segment id prefix")
	cmd.PersistentFlags().StringVar(&g.scheme, "id-scheme", builder.SchemeDecimal,
		"segment id numbering: "+strings.Join(builder.Schemes(), "|"))
	cmd.PersistentFlags().IntVar(&g.spacing, "spacing", builder.DefaultSpacing, "distance between neighbouring intersections")
	cmd.PersistentFlags().IntVar(&g.jitter, "jitter", 0, "max random offset of each intersection, below spacing/2")
	cmd.PersistentFlags().Int64Var(&g.seed, "seed", 1, "random seed for jitter and random networks")

	shape := func(use, short string, nargs int, build func([]int) builder.Constructor) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(nargs),
			RunE: func(cmd *cobra.Command, args []string) error {
				ints := make([]int, len(args))
				for i, s := range args {
					n, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("%w: %q is not an integer", errBadFlag, s)
					}
					ints[i] = n
				}
				return a.generate(cmd, g, build(ints))
			},
		}
	}

	cmd.AddCommand(
		shape("path N", "N intersections in a row", 1, func(v []int) builder.Constructor { return builder.Path(v[0]) }),
		shape("ring N", "N intersections on a circle, closed", 1, func(v []int) builder.Constructor { return builder.Ring(v[0]) }),
		shape("wheel N", "A ring of N-1 intersections joined to a hub", 1, func(v []int) builder.Constructor { return builder.Wheel(v[0]) }),
		shape("star N", "N-1 leaves joined to a hub", 1, func(v []int) builder.Constructor { return builder.Star(v[0]) }),
		shape("grid ROWS COLS", "A ROWS x COLS street grid", 2, func(v []int) builder.Constructor { return builder.Grid(v[0], v[1]) }),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "random N P",
		Short: "N scattered intersections, each pair joined with probability P",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", errBadFlag, args[0])
			}
			p, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a probability", errBadFlag, args[1])
			}
			return a.generate(cmd, g, builder.RandomSparse(n, p))
		},
	})

	return cmd
}

func (a *app) generate(cmd *cobra.Command, g generateFlags, con builder.Constructor) error {
	opts, err := g.options()
	if err != nil {
		return err
	}
	nw, err := builder.BuildNetwork(opts, con)
	if err != nil {
		return err
	}
	f, err := config.FromNetwork(nw)
	if err != nil {
		return err
	}
	a.log.Info("generated", "command", cmd.Name(), "segments", nw.SegmentCount(), "intersections", nw.IntersectionCount())

	return writeFile(cmd, g.output, f)
}
