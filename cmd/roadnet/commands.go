package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/roadnet/areas"
	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/engine"
	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
	"github.com/katalvlaran/roadnet/places"
	"github.com/katalvlaran/roadnet/trim"
)

var (
	errNoNetwork       = errors.New("roadnet: --network is required")
	errBadCoord        = errors.New("roadnet: coordinate must be X,Y")
	errUnknownEndpoint = errors.New("roadnet: unknown intersection")
	errUnknownSegment  = errors.New("roadnet: unknown segment")
	errTrimFailed      = errors.New("roadnet: trim failed")
	errBadFlag         = errors.New("roadnet: invalid flag value")
)

// app carries the persistent flags and the logger shared by every command.
type app struct {
	networkPath string
	trimMethod  string
	logLevel    string
	log         *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(NewLogHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "roadnet",
		Short: "Query and generate road networks",
		Long: `roadnet loads a YAML road network and answers route, cycle, trim and
lookup queries over it. Coordinates are written X,Y; put "--" before
negative ones so they are not read as flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := parseLevel(a.logLevel)
			if err != nil {
				return fmt.Errorf("%w: --log-level %q", errBadFlag, a.logLevel)
			}
			a.log = slog.New(NewLogHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.networkPath, "network", "n", "", "YAML network file")
	root.PersistentFlags().StringVar(&a.trimMethod, "trim-method", trim.MethodKruskal, "spanning forest method: kruskal or prim")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "debug, info, warn or error")

	root.AddCommand(
		a.routeCmd(),
		a.cycleCmd(),
		a.trimCmd(),
		a.touchingCmd(),
		a.coordsCmd(),
		a.placesCmd(),
		a.areasCmd(),
		a.generateCmd(),
	)

	return root
}

// load reads the network file into a fresh engine.
func (a *app) load() (*engine.Engine, *config.File, error) {
	if a.networkPath == "" {
		return nil, nil, errNoNetwork
	}
	if a.trimMethod != trim.MethodKruskal && a.trimMethod != trim.MethodPrim {
		return nil, nil, fmt.Errorf("%w: --trim-method %q", errBadFlag, a.trimMethod)
	}

	f, err := config.Load(a.networkPath)
	if err != nil {
		return nil, nil, err
	}
	e := engine.New(engine.WithTrimMethod(a.trimMethod))
	if err = f.Apply(e); err != nil {
		return nil, nil, err
	}
	a.log.Info("network loaded",
		"file", a.networkPath,
		"segments", e.Network().SegmentCount(),
		"intersections", e.Network().IntersectionCount(),
		"places", e.Places().Count(),
		"areas", e.Areas().Count())

	return e, f, nil
}

func (a *app) routeCmd() *cobra.Command {
	route := &cobra.Command{
		Use:   "route",
		Short: "Find a route between two intersections",
	}

	search := map[string]struct {
		short string
		run   func(*engine.Engine, geo.Coord, geo.Coord) []network.Step
	}{
		"any":      {"Any route (depth-first)", (*engine.Engine).RouteAny},
		"hops":     {"Route with the fewest segments", (*engine.Engine).RouteFewestHops},
		"shortest": {"Route with the least total length", (*engine.Engine).RouteShortestDistance},
	}
	for _, name := range []string{"any", "hops", "shortest"} {
		s := search[name]
		route.AddCommand(&cobra.Command{
			Use:   name + " FROM TO",
			Short: s.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				from, to, err := parseCoords2(args[0], args[1])
				if err != nil {
					return err
				}
				e, _, err := a.load()
				if err != nil {
					return err
				}

				steps := s.run(e, from, to)
				if len(steps) == 1 && steps[0].Coord == geo.NoCoord {
					return fmt.Errorf("%w: %s or %s", errUnknownEndpoint, from, to)
				}
				out := cmd.OutOrStdout()
				if len(steps) == 0 {
					fmt.Fprintln(out, "no route")
					return nil
				}
				for _, st := range steps {
					fmt.Fprintf(out, "%s %s %d\n", st.Coord, st.Segment, st.Distance)
				}
				a.log.Debug("route", "search", name, "steps", len(steps), "length", steps[len(steps)-1].Distance)
				return nil
			},
		})
	}

	return route
}

func (a *app) cycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle FROM",
		Short: "Find a route from an intersection that returns to an intersection already on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseCoord(args[0])
			if err != nil {
				return err
			}
			e, _, err := a.load()
			if err != nil {
				return err
			}

			steps := e.RouteWithCycle(from)
			if len(steps) == 1 && steps[0].Coord == geo.NoCoord {
				return fmt.Errorf("%w: %s", errUnknownEndpoint, from)
			}
			out := cmd.OutOrStdout()
			if len(steps) == 0 {
				fmt.Fprintln(out, "no cycle")
				return nil
			}
			for _, st := range steps {
				fmt.Fprintf(out, "%s %s\n", st.Coord, st.Segment)
			}
			return nil
		},
	}
}

func (a *app) trimCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "trim",
		Short: "Remove redundant segments and report the length removed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, f, err := a.load()
			if err != nil {
				return err
			}

			before := e.Network().SegmentCount()
			removed := e.Trim()
			if removed == geo.NoDistance {
				return errTrimFailed
			}
			a.log.Info("trimmed", "method", a.trimMethod, "removed_segments", before-e.Network().SegmentCount(), "removed_length", removed)
			fmt.Fprintf(cmd.OutOrStdout(), "removed: %d\n", removed)

			if output == "" {
				return nil
			}
			snap, err := config.FromNetwork(e.Network())
			if err != nil {
				return err
			}
			trimmed := *f
			trimmed.Segments = snap.Segments

			return writeFile(cmd, output, &trimmed)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the trimmed network to this file")

	return cmd
}

func (a *app) touchingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "touching AT",
		Short: "List the segments ending at an intersection and their other ends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseCoord(args[0])
			if err != nil {
				return err
			}
			e, _, err := a.load()
			if err != nil {
				return err
			}
			for _, t := range e.SegmentsTouching(at) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", t.Segment, t.Other)
			}
			return nil
		},
	}
}

func (a *app) coordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coords ID",
		Short: "Print the coordinates of a segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := a.load()
			if err != nil {
				return err
			}
			coords := e.SegmentCoords(network.SegmentID(args[0]))
			if len(coords) == 1 && coords[0] == geo.NoCoord {
				return fmt.Errorf("%w: %q", errUnknownSegment, args[0])
			}
			for _, c := range coords {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func (a *app) placesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places",
		Short: "Query places",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "closest AT [TYPE]",
		Short: "List the places nearest to a coordinate, optionally of one type",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseCoord(args[0])
			if err != nil {
				return err
			}
			typ := places.TypeNone
			if len(args) == 2 {
				if typ, err = places.ParseType(args[1]); err != nil {
					return err
				}
			}
			e, _, err := a.load()
			if err != nil {
				return err
			}
			printPlaces(cmd.OutOrStdout(), e.Places(), e.Places().ClosestTo(at, typ))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "find NAME",
		Short: "List the places with exactly this name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := a.load()
			if err != nil {
				return err
			}
			printPlaces(cmd.OutOrStdout(), e.Places(), e.Places().FindByName(args[0]))
			return nil
		},
	})

	return cmd
}

func printPlaces(out io.Writer, s *places.Store, ids []places.ID) {
	for _, id := range ids {
		name, typ := s.NameType(id)
		fmt.Fprintf(out, "%d %s %s %s\n", id, typ, s.Coord(id), name)
	}
}

func (a *app) areasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "areas",
		Short: "Query the area hierarchy",
	}

	listing := func(use, short string, query func(*areas.Hierarchy, areas.ID) ([]areas.ID, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " ID",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseAreaID(args[0])
				if err != nil {
					return err
				}
				e, _, err := a.load()
				if err != nil {
					return err
				}
				ids, err := query(e.Areas(), id)
				if err != nil {
					return err
				}
				for _, x := range ids {
					fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", x, e.Areas().Name(x))
				}
				return nil
			},
		}
	}
	cmd.AddCommand(
		listing("ancestors", "List the areas containing an area, nearest first", (*areas.Hierarchy).Ancestors),
		listing("descendants", "List the areas contained in an area", (*areas.Hierarchy).Descendants),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "common ID ID",
		Short: "Print the nearest area containing both areas",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseAreaID(args[0])
			if err != nil {
				return err
			}
			y, err := parseAreaID(args[1])
			if err != nil {
				return err
			}
			e, _, err := a.load()
			if err != nil {
				return err
			}
			id := e.Areas().CommonAncestor(x, y)
			if id == areas.NoArea {
				fmt.Fprintln(cmd.OutOrStdout(), "no common area")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", id, e.Areas().Name(id))
			return nil
		},
	})

	return cmd
}

// writeFile saves f to path, or writes YAML to the command output for ""
// and "-".
func writeFile(cmd *cobra.Command, path string, f *config.File) error {
	if path == "" || path == "-" {
		return f.Write(cmd.OutOrStdout())
	}

	return f.Save(path)
}

// parseCoord reads "X,Y".
func parseCoord(s string) (geo.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geo.NoCoord, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return geo.NoCoord, fmt.Errorf("%w: %q", errBadCoord, s)
	}

	return geo.Coord{X: x, Y: y}, nil
}

func parseCoords2(a, b string) (geo.Coord, geo.Coord, error) {
	from, err := parseCoord(a)
	if err != nil {
		return from, geo.NoCoord, err
	}
	to, err := parseCoord(b)

	return from, to, err
}

func parseAreaID(s string) (areas.ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return areas.NoArea, fmt.Errorf("%w: area id %q", errBadFlag, s)
	}

	return areas.ID(n), nil
}
