// Package maze implements the wall-grid model of spec.md §4.4/§4.6/§4.7:
// an H x W grid of cells separated by walls, built either by carving a
// uniform-density random maze around a fixed solution path (NewDensity)
// or by growing a perfect spanning tree around it with a 6-parameter
// probability profile (NewTree), plus the "always turn left" solver that
// recovers a path.Path between two cells.
//
// What:
//
//   - Maze is an immutable (height, width, vertical-wall grid,
//     horizontal-wall grid) value, read via FromBMP or produced by
//     NewDensity/NewTree.
//   - NewTree's core is the Pool in pool.go: a ring-buffered union-find
//     whose virtual ids represent "the solution path component" and "the
//     exterior of the grid" alongside the growing cell components, so the
//     carving loop can treat all three uniformly.
//   - Solve walks the boundary of the wall graph, always preferring the
//     leftmost open direction, and cancels retraced steps by popping the
//     direction stack instead of detecting the cycle structurally.
//
// Why:
//
//   - The three extra branches pool.go's get/join/pop support (the
//     solution and border virtual cells) are what let NewTree guarantee a
//     single connected component without ever touching the solution path
//     itself with a wall.
package maze
