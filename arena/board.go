// Package arena is a small maze board implementing game.State. It stands in
// for a full game engine when running or testing agents: there are no power
// pellets, no scared ghosts and no lives.
package arena

import (
	"errors"
	"fmt"
	"strings"

	"pacman/game"
)

var ErrLayout = errors.New("bad layout")

const (
	wallCell  = '%'
	dotCell   = '.'
	pacCell   = 'P'
	ghostCell = 'G'
	emptyCell = ' '
)

// Classic is a small maze with two ghosts.
const Classic = `
%%%%%%%%%%%%%%%%%%%%
%......%G  G%......%
%.%%...%%  %%...%%.%
%.%o.%........%.o%.%
%.%%.%.%%%%%%.%.%%.%
%........P.........%
%%%%%%%%%%%%%%%%%%%%
`

// Board holds the fixed part of a game: its size, walls and start position.
type Board struct {
	width  int
	height int
	walls  [][]bool // indexed [y][x]
	start  *State
}

// Parse reads a layout where '%' is a wall, '.' or 'o' a dot, 'P' Pac and
// 'G' a ghost. The first text row is the top of the board. A layout needs
// exactly one Pac and at least one dot.
func Parse(layout string) (*Board, error) {
	rows := strings.Split(strings.Trim(layout, "\n"), "\n")
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], "\r")
	}
	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("%w: empty", ErrLayout)
	}

	b := &Board{width: len(rows[0]), height: len(rows)}
	b.walls = make([][]bool, b.height)
	start := &State{board: b}
	pacs := 0

	for r, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrLayout, r+1, len(row), b.width)
		}
		y := b.height - 1 - r
		b.walls[y] = make([]bool, b.width)
		for x, c := range []byte(row) {
			p := game.Position{X: x, Y: y}
			switch c {
			case wallCell:
				b.walls[y][x] = true
			case dotCell, 'o':
				start.dots = append(start.dots, p)
			case pacCell:
				start.pac = p
				pacs++
			case ghostCell:
				start.ghosts = append(start.ghosts, p)
			case emptyCell:
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at row %d column %d", ErrLayout, c, r+1, x+1)
			}
		}
	}
	if pacs != 1 {
		return nil, fmt.Errorf("%w: found %d pac cells, want 1", ErrLayout, pacs)
	}
	if len(start.dots) == 0 {
		return nil, fmt.Errorf("%w: no dots to eat", ErrLayout)
	}

	b.start = start
	return b, nil
}

// MustParse is Parse for layouts known to be valid.
func MustParse(layout string) *Board {
	b, err := Parse(layout)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// IsWall reports whether p is a wall. Cells off the board count as walls.
func (b *Board) IsWall(p game.Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= b.width || p.Y >= b.height {
		return true
	}
	return b.walls[p.Y][p.X]
}

// Start returns the initial state of the board.
func (b *Board) Start() *State {
	return b.start
}

// openMoves lists the directions leading from p to a free cell.
func (b *Board) openMoves(p game.Position) []game.Move {
	moves := make([]game.Move, 0, len(game.Directions))
	for _, m := range game.Directions {
		if !b.IsWall(p.Step(m)) {
			moves = append(moves, m)
		}
	}
	return moves
}
