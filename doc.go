// Package gridpath is a time-aware shortest-path toolkit for discrete
// grids: model a world of cells with terrain costs and obstacles that
// appear or vanish at specific time steps, then search it.
//
// 🚀 What is gridpath?
//
//	A compact, deterministic pathfinding library that brings together:
//		• Grid world: bounds, static obstacles, time-indexed dynamic
//		  obstacles, weighted terrain, 4- or 8-connectivity
//		• Snapshots: plain-text save/load of a grid layout
//		• Heuristics: Manhattan, Euclidean, and Octile estimators behind
//		  an enumerated selector
//		• Search: A* with an admissible heuristic, plus breadth-first and
//		  uniform-cost references sharing one Result boundary
//
// ✨ Why choose gridpath?
//
//   - Reproducible – fixed neighbor order and FIFO tie-breaks make every
//     search replayable bit for bit
//   - Time-aware – one time step per call; replanning is a simple caller loop
//   - Rock-solid guarantees – R/W locks on the world, per-call node arenas
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	grid/      — the environment: Cell, Grid, occupancy, terrain, snapshots
//	heuristic/ — admissible remaining-cost estimators (Kind selector)
//	search/    — AStar, UniformCost, BFS and the shared Result type
//
// Quick ASCII example:
//
//	    S . # . .
//	    . . # . .
//	    . . # . .
//	    . . . . G
//
//	a wall with one opening: A* dips through the gap and climbs back.
//
// Dive into the package docs for the full contracts: admissibility,
// the silent-clamp mutator policy, and the snapshot format.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
