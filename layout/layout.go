// Package layout loads initial automaton states from YAML or JSON documents
// and builds them into wired lattices.
//
// A document looks like:
//
//	name: glider
//	connectivity: moore   # conn4 (default) | conn8 | moore | 4 | 8
//	wrap: true
//	rows:
//	  - ".B..."
//	  - "..B.."
//	  - "BBB.."
//
// Each row is a string of state symbols understood by cell.ParseState
// ('W', 'B', '.', '#', '0', '1'); spaces inside a row are ignored.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cellgrid/cell"
	"github.com/katalvlaran/cellgrid/lattice"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .json.
	ErrUnsupportedFormat = errors.New("layout: unsupported format")
	// ErrNoRows indicates a document without any rows.
	ErrNoRows = errors.New("layout: no rows")
	// ErrRaggedRows indicates rows with differing numbers of cells.
	ErrRaggedRows = errors.New("layout: rows differ in length")
)

// Layout is the decoded form of a layout document.
type Layout struct {
	Name         string   `yaml:"name" json:"name"`
	Connectivity string   `yaml:"connectivity" json:"connectivity"`
	Wrap         bool     `yaml:"wrap" json:"wrap"`
	Rows         []string `yaml:"rows" json:"rows"`
}

// Load reads and validates a layout file. The format is chosen by extension.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}

	l, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return l, nil
}

// Parse decodes data in the format named by ext (".yaml", ".yml", ".json")
// and validates the result.
func Parse(data []byte, ext string) (*Layout, error) {
	var l Layout
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("layout: parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("layout: parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q (supported: .json, .yaml, .yml)", ErrUnsupportedFormat, ext)
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}

	return &l, nil
}

// Validate checks connectivity, symbols and that rows form a rectangle.
func (l *Layout) Validate() error {
	if _, err := lattice.ParseConnectivity(l.Connectivity); err != nil {
		return fmt.Errorf("layout %q: %w", l.Name, err)
	}
	_, err := l.States()

	return err
}

// States decodes the rows into rows[y][x] states.
func (l *Layout) States() ([][]cell.State, error) {
	if len(l.Rows) == 0 {
		return nil, fmt.Errorf("layout %q: %w", l.Name, ErrNoRows)
	}

	out := make([][]cell.State, len(l.Rows))
	for y, row := range l.Rows {
		for x, r := range strings.ReplaceAll(row, " ", "") {
			s, err := cell.ParseState(string(r))
			if err != nil {
				return nil, fmt.Errorf("layout %q: row %d col %d: %w", l.Name, y, x, err)
			}
			out[y] = append(out[y], s)
		}
		if len(out[y]) == 0 {
			return nil, fmt.Errorf("layout %q: row %d: %w", l.Name, y, ErrNoRows)
		}
		if len(out[y]) != len(out[0]) {
			return nil, fmt.Errorf("layout %q: row %d has %d cells, want %d: %w",
				l.Name, y, len(out[y]), len(out[0]), ErrRaggedRows)
		}
	}

	return out, nil
}

// Build wires the layout into a lattice of cells using its connectivity and
// wrap settings.
func (l *Layout) Build() (*lattice.Lattice[cell.Cell], error) {
	states, err := l.States()
	if err != nil {
		return nil, err
	}
	conn, err := lattice.ParseConnectivity(l.Connectivity)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", l.Name, err)
	}

	opts := []lattice.Option{lattice.WithConnectivity(conn)}
	if l.Wrap {
		opts = append(opts, lattice.WithWrap())
	}
	rows := make([][]cell.Cell, len(states))
	for y, row := range states {
		rows[y] = cell.FromStates(row...)
	}

	lat, err := lattice.Rect(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", l.Name, err)
	}

	return lat, nil
}
