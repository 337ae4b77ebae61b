package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Map is a bounded rectangular grid in which some cells are walls.
// Cell (0, 0) is the top left corner; Y increases downwards, one
// row per line of text.
//
// A Map must not be changed while a search over its cells is running.
type Map struct {
	width, height int
	walls         []bool
	marks         map[rune]Point
}

// NewMap returns a width×height map with no walls.
func NewMap(width, height int) *Map {
	if width < 0 || height < 0 {
		panic("grid: negative map size")
	}
	return &Map{
		width:  width,
		height: height,
		walls:  make([]bool, width*height),
		marks:  make(map[rune]Point),
	}
}

// Parse parses a map from text, one row per line. A '#' is a wall and
// a '.' is an open cell. Any other non-space character is an open
// cell that is also recorded as a mark, so that for example the
// positions of 'S' and 'G' can be found with [Map.Mark].
// Leading and trailing blank lines are ignored; all rows must have the
// same length.
func Parse(text string) (*Map, error) {
	text = strings.Trim(text, "\n")
	if text == "" {
		return NewMap(0, 0), nil
	}
	lines := strings.Split(text, "\n")
	width := len([]rune(lines[0]))
	m := NewMap(width, len(lines))
	for y, line := range lines {
		row := []rune(line)
		if len(row) != width {
			return nil, fmt.Errorf("grid: line %d: got %d cells, want %d", y+1, len(row), width)
		}
		for x, r := range row {
			switch {
			case r == '#':
				m.walls[m.index(Point{x, y})] = true
			case r == '.':
			case r == ' ' || r == '\t' || r == '\r':
				return nil, fmt.Errorf("grid: line %d: unexpected whitespace at column %d", y+1, x+1)
			default:
				if p, ok := m.marks[r]; ok {
					return nil, fmt.Errorf("grid: line %d: mark %q already used at %v", y+1, r, p)
				}
				m.marks[r] = Point{x, y}
			}
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// In reports whether p lies inside the map.
func (m *Map) In(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// Wall reports whether p is a wall. Points outside the map
// are treated as walls.
func (m *Map) Wall(p Point) bool {
	return !m.In(p) || m.walls[m.index(p)]
}

// SetWall makes p a wall or an open cell.
// It panics if p is outside the map.
func (m *Map) SetWall(p Point, wall bool) {
	if !m.In(p) {
		panic(fmt.Sprintf("grid: %v outside %dx%d map", p, m.width, m.height))
	}
	m.walls[m.index(p)] = wall
}

// Mark returns the position of the mark r recorded by Parse.
func (m *Map) Mark(r rune) (Point, bool) {
	p, ok := m.marks[r]
	return p, ok
}

// Cell returns the searchable cell of m at p.
func (m *Map) Cell(p Point) Cell {
	return Cell{m: m, p: p}
}

// Render draws the map in the format read by Parse, drawing the
// points of path as '*'. Marks are drawn in preference to the path.
func (m *Map) Render(path []Point) string {
	onPath := make(map[Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	marks := make(map[Point]rune, len(m.marks))
	for r, p := range m.marks {
		marks[p] = r
	}
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := Point{x, y}
			switch r, ok := marks[p]; {
			case ok:
				sb.WriteRune(r)
			case m.Wall(p):
				sb.WriteByte('#')
			case onPath[p]:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *Map) index(p Point) int {
	return p.Y*m.width + p.X
}

// Cell is an open cell of a Map. Its neighbours are the adjacent open
// cells; a wall or a cell outside the map has none.
type Cell struct {
	m *Map
	p Point
}

// Point returns the position of c.
func (c Cell) Point() Point { return c.p }

// Compare orders cells by position.
func (c Cell) Compare(d Cell) int { return c.p.Compare(d.p) }

// MoveCost returns 1.
func (Cell) MoveCost() float64 { return 1 }

// Neighbors yields the open cells adjacent to c, in the same order as
// [Point.Neighbors].
func (c Cell) Neighbors() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if c.m.Wall(c.p) {
			return
		}
		for q := range c.p.Neighbors() {
			if c.m.Wall(q) {
				continue
			}
			if !yield(Cell{m: c.m, p: q}) {
				return
			}
		}
	}
}

// Heuristic returns the Manhattan distance between the two cells.
func (c Cell) Heuristic(goal Cell) float64 { return c.p.Heuristic(goal.p) }

func (c Cell) String() string { return c.p.String() }

// Points returns the positions of cells.
func Points(cells []Cell) []Point {
	if cells == nil {
		return nil
	}
	ps := make([]Point, len(cells))
	for i, c := range cells {
		ps[i] = c.p
	}
	return ps
}
