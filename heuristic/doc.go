// Package heuristic provides admissible remaining-cost estimators between
// two grid cells, selected through an enumerated Kind rather than a
// free-floating function value.
//
// What:
//
//   - Manhattan: |dx| + |dy| — admissible for 4-connected movement with
//     unit step cost, and the tightest of the three on such grids.
//   - Euclidean: straight-line distance — admissible for any movement
//     model, loosest bound on a grid.
//   - Octile: max(dx,dy) + (√2−1)·min(dx,dy) — admissible for 8-connected
//     movement with unit orthogonal and √2 diagonal step cost.
//
// Admissibility:
//
//   - Every Kind never overestimates true remaining cost under its intended
//     movement model when the minimum terrain cost is at least 1. This is a
//     caller contract: the search engine treats the estimator as opaque and
//     performs no runtime admissibility check, so an inadmissible pairing
//     (e.g. Manhattan on an 8-connected grid, where it overestimates
//     diagonal progress) silently costs optimality, never termination.
//
// All estimators are pure functions of the two cells: no state, O(1) time.
package heuristic
