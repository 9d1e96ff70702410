package board

// Openings returns the number of connected regions of zero-count safe
// tiles. Each one clears with a single click when flood reveal is on.
func Openings(b *Board) int {
	n, _ := openings(b)
	return n
}

// BBBV returns the board's 3BV: the minimum number of clicks needed to
// clear it without flags. Every opening counts once, plus every numbered
// safe tile that no opening reveals.
func BBBV(b *Board) int {
	n, marked := openings(b)
	for i, t := range b.tiles {
		if !t.IsMine && !marked[i] {
			n++
		}
	}
	return n
}

// openings flood-fills every zero region over the layout, ignoring cover
// state, and marks every tile such a region would reveal.
func openings(b *Board) (int, []bool) {
	marked := make([]bool, len(b.tiles))
	if !b.initialized {
		return 0, marked
	}

	count := 0
	neighbors := make([]int, 0, 8)
	var stack []int

	for i, t := range b.tiles {
		if marked[i] || t.IsMine || t.AdjacentCount != 0 {
			continue
		}

		count++
		marked[i] = true
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			neighbors = b.appendNeighbors(neighbors[:0], cur)
			for _, n := range neighbors {
				if marked[n] || b.tiles[n].IsMine {
					continue
				}
				marked[n] = true
				if b.tiles[n].AdjacentCount == 0 {
					stack = append(stack, n)
				}
			}
		}
	}

	return count, marked
}
