// Package path implements the immutable orthogonal-walk model of spec.md
// §4.3 (Path, PathCell, cells/integral/string/BMP rendering) and the guided
// self-avoiding path generator of spec.md §4.5.
//
// What:
//
//   - Path is an immutable (height, width, start cell, direction sequence)
//     value. Empty, New, Generate, and FromBMP are its constructors.
//   - Cells derives the per-row PathCell view used by the maze builders.
//   - Generate produces a random simple path from a start cell to a target
//     cell that is guaranteed to leave the target reachable in the
//     complement of the path at every step, using cumulative rotation and
//     winding bookkeeping instead of a reachability search per candidate
//     step (see generate.go).
//
// Why:
//
//   - The winding/rotation case analysis in generate.go is the
//     topological heart of the whole module: any deviation from it
//     produces paths that can dead-end before reaching the target.
//
// Errors:
//
//   - Every constructor that fails still returns a usable Path: Empty().
//     Generate returns ErrNoRoom or ErrUnreachableTarget alongside it;
//     malformed or unreadable BMP input makes FromBMP return Empty() plus
//     a diagnostic error for logging.
package path
