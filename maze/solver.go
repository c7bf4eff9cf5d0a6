package maze

// Solve returns the shortest walkable path from the start cell to the end cell, both included
// Returns nil when the end is unreachable
func Solve(grid *Grid) []Position {
	start, end := grid.StartPos(), grid.EndPos()
	if !grid.At(start).Walkable() || !grid.At(end).Walkable() {
		return nil
	}

	queue := []Position{start}
	cameFrom := make(map[Position]Position)
	visited := map[Position]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []Position{curr}
			for curr != start {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			// Reverse into start -> end order
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range steps {
			next := curr.Add(d)
			if grid.At(next).Walkable() && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}

// Reachable returns every walkable cell connected to from
func Reachable(grid *Grid, from Position) map[Position]bool {
	seen := make(map[Position]bool)
	if !grid.At(from).Walkable() {
		return seen
	}
	stack := []Position{from}
	seen[from] = true
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range steps {
			next := curr.Add(d)
			if grid.At(next).Walkable() && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return seen
}

// MarkSolution stamps Solution on the path cells that are plain Path
func MarkSolution(grid *Grid, path []Position) {
	for _, p := range path {
		if grid.At(p) == Path {
			grid.Set(p, Solution)
		}
	}
}
