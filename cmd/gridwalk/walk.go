package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellgrid/cell"
	"github.com/katalvlaran/cellgrid/grid"
	"github.com/katalvlaran/cellgrid/lattice"
	"github.com/katalvlaran/cellgrid/layout"
	"github.com/katalvlaran/cellgrid/navigator"
)

func newWalkCommand(ctx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print the states yielded along one direction",
		Long: `Walk loads a layout, seeds a navigator at the --from cell (default 0,0),
locates the boundary against --direction and prints every state up to the
opposite boundary.`,
		PreRunE: ctx.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, name, err := loadLattice(ctx)
			if err != nil {
				return err
			}
			dir, err := grid.ParseDirection(ctx.v.GetString("direction"))
			if err != nil {
				return err
			}
			g, err := seededGrid(lat, ctx.v.GetString("from"))
			if err != nil {
				return err
			}

			nav, err := navigator.New(g, dir, navigator.WithLogger(ctx.logger))
			if err != nil {
				return err
			}
			nodes := nav.Collect()
			ctx.logger.Info("walk complete", "layout", name, "direction", dir.String(), "yielded", len(nodes))

			return printNodes(cmd, lat, nodes, ctx.v.GetString("format"))
		},
	}

	f := cmd.Flags()
	f.StringP("layout", "l", "", "Layout file (.yaml, .yml or .json)")
	f.StringP("direction", "d", "east", "Traversal direction: a name (east, nw, ...) or x,y")
	f.String("from", "0,0", "Cell x,y the boundary search starts from")
	f.String("format", "symbols", "Output format: symbols, names or ids")

	return cmd
}

func newInspectCommand(ctx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect",
		Short:   "Describe the grid a layout produces",
		PreRunE: ctx.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, name, err := loadLattice(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name: %s\n", name)
			fmt.Fprintf(out, "size: %dx%d\n", lat.Width, lat.Height)
			fmt.Fprintf(out, "connectivity: %s\n", lat.Conn)
			fmt.Fprintf(out, "wrap: %t\n", lat.Wrap)
			fmt.Fprintf(out, "nodes: %d\n", lat.Grid().Len())
			fmt.Fprintf(out, "edges: %d\n", lat.Grid().EdgeCount())
			return nil
		},
	}

	cmd.Flags().StringP("layout", "l", "", "Layout file (.yaml, .yml or .json)")

	return cmd
}

// loadLattice reads the layout named by the "layout" setting and builds it.
func loadLattice(ctx *cmdContext) (*lattice.Lattice[cell.Cell], string, error) {
	path := ctx.v.GetString("layout")
	if path == "" {
		return nil, "", fmt.Errorf("argument `layout` is required")
	}
	l, err := layout.Load(path)
	if err != nil {
		return nil, "", err
	}
	lat, err := l.Build()
	if err != nil {
		return nil, "", err
	}
	ctx.logger.Debug("layout loaded", "path", path, "width", lat.Width, "height", lat.Height)

	return lat, l.Name, nil
}

// seededGrid returns the lattice grid reordered so the cell at "x,y" is the
// boundary-search seed.
func seededGrid(lat *lattice.Lattice[cell.Cell], from string) (*grid.Grid[cell.Cell], error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(from), ",")
	if !ok {
		return nil, fmt.Errorf("invalid --from %q: want x,y", from)
	}
	var x, y int
	if _, err := fmt.Sscan(strings.TrimSpace(xs), &x); err != nil {
		return nil, fmt.Errorf("invalid --from %q: %w", from, err)
	}
	if _, err := fmt.Sscan(strings.TrimSpace(ys), &y); err != nil {
		return nil, fmt.Errorf("invalid --from %q: %w", from, err)
	}
	seed, ok := lat.At(x, y)
	if !ok {
		return nil, fmt.Errorf("--from %d,%d is outside the %dx%d layout", x, y, lat.Width, lat.Height)
	}

	nodes := make([]*grid.Node[cell.Cell], 0, lat.Grid().Len())
	nodes = append(nodes, seed)
	for _, n := range lat.Grid().Nodes() {
		if !n.Equal(seed) {
			nodes = append(nodes, n)
		}
	}

	return grid.NewGrid(nodes...)
}

func printNodes(cmd *cobra.Command, lat *lattice.Lattice[cell.Cell], nodes []*grid.Node[cell.Cell], format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "symbols":
		var b strings.Builder
		for _, n := range nodes {
			b.WriteRune(n.Cell().State().Symbol())
		}
		fmt.Fprintln(out, b.String())
	case "names":
		for _, n := range nodes {
			fmt.Fprintln(out, n.Cell().State())
		}
	case "ids":
		for _, n := range nodes {
			x, y, _ := lat.Position(n)
			fmt.Fprintf(out, "%s %d,%d %s\n", n.ID(), x, y, n.Cell().State())
		}
	default:
		return fmt.Errorf("unknown --format %q (want symbols, names or ids)", format)
	}

	return nil
}
