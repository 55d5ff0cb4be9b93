package entity

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark - the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	MarkA
	MarkB
)

const (
	Size  = 3
	Cells = Size * Size
)

func (that Mark) String() string {
	switch that {
	case MarkA:
		return PlayerX
	case MarkB:
		return PlayerO
	default:
		return EmptyCell
	}
}

// Opponent - returns the other player's mark, Empty stays Empty.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkA:
		return MarkB
	case MarkB:
		return MarkA
	default:
		return Empty
	}
}

// Board is a fixed 3x3 grid stored row-major. It is a value type: every
// transition produces a new Board.
type Board [Cells]Mark

// Move - addresses a cell by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func MoveFromIndex(cell int) Move {
	return Move{Row: cell / Size, Col: cell % Size}
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) Index() int {
	return that.Row*Size + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// InitialBoard - returns the empty grid.
func InitialBoard() Board {
	return Board{}
}

// At - returns the mark at (row, col). Coordinates must be in bounds.
func (that Board) At(row, col int) Mark {
	return that[row*Size+col]
}

func (that Board) Cell(i int) Mark {
	return that[i]
}

func (that Board) count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}
	return n
}

// Validate - checks the mark-count invariant every reachable board satisfies.
func (that Board) Validate() error {
	a, b := that.count(MarkA), that.count(MarkB)
	if a != b && a != b+1 {
		return fmt.Errorf("%w: %d X marks, %d O marks", apperror.ErrInvalidBoard, a, b)
	}
	return nil
}

func (that Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range Size {
			if mark := that.At(row, col); mark == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(mark.String())
			}
		}
	}
	return sb.String()
}

func (that Board) LogValue() slog.Value {
	return slog.StringValue(that.String())
}

// ParseBoard - builds a board from "XO./.../..." notation, as produced by String.
func ParseBoard(s string) (Board, error) {
	var board Board

	rows := strings.Split(s, "/")
	if len(rows) != Size {
		return Board{}, fmt.Errorf("%w: want %d rows, got %d", apperror.ErrInvalidBoard, Size, len(rows))
	}

	for row, line := range rows {
		if len(line) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidBoard, row, len(line))
		}
		for col, ch := range line {
			switch string(ch) {
			case PlayerX:
				board[row*Size+col] = MarkA
			case PlayerO:
				board[row*Size+col] = MarkB
			case ".":
			default:
				return Board{}, fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidBoard, ch)
			}
		}
	}

	return board, nil
}
