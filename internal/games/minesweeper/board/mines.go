package board

// Initialize places mineCount mines uniformly at random, never on
// safeIndex, then computes adjacency counts. It may be called once.
//
// Placement is a partial Fisher-Yates shuffle over every index except
// safeIndex, so it stays O(n) at any density. A mineCount of zero yields a
// valid board without mines.
func (b *Board) Initialize(safeIndex, mineCount int) error {
	if err := b.checkPlacement(safeIndex, mineCount); err != nil {
		return err
	}

	candidates := make([]int, 0, len(b.tiles)-1)
	for i := range b.tiles {
		if i != safeIndex {
			candidates = append(candidates, i)
		}
	}

	// Swap each pick to the front of the unpicked tail.
	for i := range mineCount {
		j := i + b.rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	b.layMines(candidates[:mineCount])
	return nil
}

// PlaceMines lays out mines at the given indices instead of drawing them at
// random. It applies the same validation as Initialize and additionally
// rejects out-of-range and duplicate indices. Used for replays and fixed
// layouts.
func (b *Board) PlaceMines(safeIndex int, mines []int) error {
	if err := b.checkPlacement(safeIndex, len(mines)); err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(mines))
	for _, m := range mines {
		if !b.inBounds(m) {
			return ErrIndexOutOfBounds
		}
		if m == safeIndex {
			return ErrInvalidMineCount
		}
		if _, dup := seen[m]; dup {
			return ErrDuplicateMine
		}
		seen[m] = struct{}{}
	}

	b.layMines(mines)
	return nil
}

func (b *Board) checkPlacement(safeIndex, mineCount int) error {
	if b.initialized {
		return ErrAlreadyInitialized
	}
	if !b.inBounds(safeIndex) {
		return ErrIndexOutOfBounds
	}
	// The safe tile must stay free, so at most len-1 mines fit.
	if mineCount < 0 || mineCount >= len(b.tiles) {
		return ErrInvalidMineCount
	}
	return nil
}

// layMines marks the mines and adds each one exactly once to the count of
// every in-bounds neighbor, mines included.
func (b *Board) layMines(mines []int) {
	neighbors := make([]int, 0, 8)
	for _, m := range mines {
		b.tiles[m].IsMine = true
		neighbors = b.appendNeighbors(neighbors[:0], m)
		for _, n := range neighbors {
			b.tiles[n].AdjacentCount++
		}
	}
	b.mines = len(mines)
	b.initialized = true
}
