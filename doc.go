// Package gridwalk is a small engine for breadth-first traversal of dense
// 2-D grids: a generic container, a lazy exploration iterator and a maze
// layer for shortest distances and routes.
//
// What
//
//   - grid/    — Grid[T], a row-major container generic over its cell type,
//     with text parsing/serialisation, search, and row/column sequences.
//   - explore/ — Explorer[T], pull-based BFS over the 4-neighbourhood with a
//     caller-supplied acceptance Predicate and a packed visited plane.
//   - maze/    — Maze, wall-aware exploration, Distance and Path on top of a
//     character grid.
//
// Data flows one way: build a grid, hand it (with a predicate) to an
// Explorer or to a Maze, then consume positions, distances and routes.
//
// Quick ASCII example:
//
//	#####
//	#B#E#
//	#...#
//	#####
//
// Distance(B, E, '#') == 4.
//
// Non-goals: diagonal moves, weighted edges and non-grid graphs. The engine
// performs no I/O beyond the text grid round trip.
//
//	go get github.com/katalvlaran/gridwalk
package gridwalk
