package gofocus

// layout builds the starting grid. Patterns that divide the row evenly are
// laid down a run at a time; anything else is counted out square by square.
func layout(size, pattern int) [][]Stack {
	build := layoutCells
	if size%pattern == 0 {
		build = layoutRuns
	}

	rows := make([][]Stack, size)
	start := ColorRed
	for r := range rows {
		rows[r] = build(size, pattern, start)
		start = start.Other()
	}

	return rows
}

// layoutRuns appends runs of pattern single piece stacks, switching color
// after every run. The final run is cut short if it would overhang the row.
func layoutRuns(size, pattern int, start Color) []Stack {
	row := make([]Stack, 0, size)
	c := start
	for len(row) < size {
		run := min(pattern, size-len(row))
		for range run {
			row = append(row, Stack{c})
		}
		c = c.Other()
	}
	return row
}

// layoutCells walks the row one square at a time and flips color whenever
// pattern squares of the same color have been placed.
func layoutCells(size, pattern int, start Color) []Stack {
	row := make([]Stack, 0, size)
	c := start
	count := 0
	for range size {
		row = append(row, Stack{c})

		count++
		if count >= pattern {
			count = 0
			c = c.Other()
		}
	}
	return row
}
