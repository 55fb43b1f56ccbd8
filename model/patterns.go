package model

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a named set of live cells given as (row, column) offsets from
// the stamp origin
type Pattern struct {
	Name        string
	Description string
	Cells       [][2]int
}

var patterns = map[string]Pattern{
	"glider": {
		Name:        "glider",
		Description: "the smallest spaceship, travels diagonally",
		Cells:       [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	},
	"blinker": {
		Name:        "blinker",
		Description: "period 2 oscillator",
		Cells:       [][2]int{{0, 0}, {1, 0}, {2, 0}},
	},
	"block": {
		Name:        "block",
		Description: "2x2 still life",
		Cells:       [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	"plus": {
		Name:        "plus",
		Description: "a cell and its four orthogonal neighbors",
		Cells:       [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}},
	},
}

// LookupPattern returns the built-in pattern with the given name
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[strings.ToLower(name)]
	return p, ok
}

// PatternNames lists the built-in patterns in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp sets the pattern's cells Alive with its origin at (row, column).
// Coordinates wrap around the universe edges.
func (p Pattern) Stamp(u *Universe, row, column int) {
	if u.width == 0 || u.height == 0 {
		return
	}
	for _, off := range p.Cells {
		r := wrap(row+off[0], u.height)
		c := wrap(column+off[1], u.width)
		u.SetCell(r, c)
	}
}

// Size returns the height and width of the pattern's bounding box
func (p Pattern) Size() (height, width int) {
	for _, off := range p.Cells {
		height = max(height, off[0]+1)
		width = max(width, off[1]+1)
	}
	return
}

// ParsePattern reads a pattern in plaintext (.cells) format. Lines starting
// with '!' are comments, a "!Name:" comment names the pattern, 'O' or '*' is
// a live cell and '.' a dead one.
func ParsePattern(name string, r io.Reader) (Pattern, error) {
	p := Pattern{Name: name}
	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if v, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(v)
			} else if p.Description == "" {
				p.Description = strings.TrimSpace(line[1:])
			}
			continue
		}
		for column, ch := range line {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, [2]int{row, column})
			case '.':
			default:
				return Pattern{}, errors.Errorf("[ParsePattern] unexpected %q at line %d column %d of %s",
					ch, row+1, column+1, name)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, errors.Wrapf(err, "[ParsePattern] failed to read pattern: %+v", name)
	}
	if len(p.Cells) == 0 {
		return Pattern{}, errors.Errorf("[ParsePattern] pattern %s has no live cells", name)
	}
	return p, nil
}

// LoadPatternFile parses the plaintext pattern stored at path
func LoadPatternFile(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[LoadPatternFile] failed to open file: %+v", path)
	}
	defer f.Close()

	return ParsePattern(strings.TrimSuffix(filepath.Base(path), ".cells"), f)
}

func wrap(v, size int) int {
	return ((v % size) + size) % size
}
