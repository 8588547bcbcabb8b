package generation

import (
	"math/rand"
)

// Position is a board coordinate
type Position struct {
	X, Y int
}

// PositionPool holds the interior cells not yet claimed during one build
type PositionPool struct {
	rng   *rand.Rand
	cells []Position
}

// NewPositionPool creates an empty pool drawing from rng
func NewPositionPool(rng *rand.Rand) *PositionPool {
	return &PositionPool{rng: rng}
}

// Reset refills the pool with every interior cell: 1 <= x <= columns-2 and
// 1 <= y <= rows-2, leaving the one cell border free
func (p *PositionPool) Reset(columns, rows int) {
	p.cells = p.cells[:0]
	for x := 1; x < columns-1; x++ {
		for y := 1; y < rows-1; y++ {
			p.cells = append(p.cells, Position{X: x, Y: y})
		}
	}
}

// Len returns the number of unclaimed cells
func (p *PositionPool) Len() int {
	return len(p.cells)
}

// TakeRandom removes and returns a uniformly chosen unclaimed cell
func (p *PositionPool) TakeRandom() (Position, error) {
	if len(p.cells) == 0 {
		return Position{}, ErrGridExhausted
	}

	i := p.rng.Intn(len(p.cells))
	pos := p.cells[i]

	last := len(p.cells) - 1
	p.cells[i] = p.cells[last]
	p.cells = p.cells[:last]

	return pos, nil
}
