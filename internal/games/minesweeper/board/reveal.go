package board

import "strconv"

// TileValue is what a revealed tile shows: a mine or a clear tile with its
// adjacent-mine count.
type TileValue struct {
	Mine  bool `json:"mine"`
	Count int  `json:"count"`
}

// Mine returns the value of a mine tile.
func Mine() TileValue {
	return TileValue{Mine: true}
}

// Clear returns the value of a non-mine tile with n adjacent mines.
func Clear(n int) TileValue {
	return TileValue{Count: n}
}

// String returns "mine" or the count.
func (v TileValue) String() string {
	if v.Mine {
		return "mine"
	}
	return strconv.Itoa(v.Count)
}

// DisplayState is the read-only view of a tile used for rendering.
// Value is only meaningful when Covered is false.
type DisplayState struct {
	Covered bool
	Value   TileValue
}

// Uncover reveals the tile at index and returns its value. Uncovering an
// uncovered tile changes nothing and returns the same value. A mine is
// reported, not acted upon: ending the game is up to the caller.
func (b *Board) Uncover(index int) (TileValue, error) {
	if !b.inBounds(index) {
		return TileValue{}, ErrIndexOutOfBounds
	}
	if !b.initialized {
		return TileValue{}, ErrNotInitialized
	}

	b.tiles[index].IsCovered = false
	return b.tiles[index].Value(), nil
}

// TileDisplay returns the display state of the tile at index.
func (b *Board) TileDisplay(index int) (DisplayState, error) {
	if !b.inBounds(index) {
		return DisplayState{}, ErrIndexOutOfBounds
	}

	t := b.tiles[index]
	if t.IsCovered {
		return DisplayState{Covered: true}, nil
	}
	return DisplayState{Value: t.Value()}, nil
}

// FloodReveal expands an uncovered zero-count tile: covered neighbors are
// uncovered breadth-first, and expansion continues only through tiles that
// are themselves zero. Mines are never uncovered. The covered flag doubles
// as the visited mark, so each tile is processed at most once.
//
// It returns the newly uncovered indices in visit order; nothing happens if
// the tile at index is covered or has a non-zero count.
func (b *Board) FloodReveal(index int) ([]int, error) {
	if !b.inBounds(index) {
		return nil, ErrIndexOutOfBounds
	}
	if !b.initialized {
		return nil, ErrNotInitialized
	}

	start := b.tiles[index]
	if start.IsCovered || start.IsMine || start.AdjacentCount != 0 {
		return nil, nil
	}

	var revealed []int
	queue := []int{index}
	neighbors := make([]int, 0, 8)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		neighbors = b.appendNeighbors(neighbors[:0], cur)
		for _, n := range neighbors {
			t := &b.tiles[n]
			if !t.IsCovered || t.IsMine {
				continue
			}
			t.IsCovered = false
			revealed = append(revealed, n)
			if t.AdjacentCount == 0 {
				queue = append(queue, n)
			}
		}
	}

	return revealed, nil
}
