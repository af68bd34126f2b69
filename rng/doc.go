// Package rng implements the deterministic linear-congruential byte stream
// shared by the path generator and the tree and density maze builders.
//
// What:
//
//   - Source wraps a mutable 32-bit signed seed.
//   - Byte() advances the seed and returns its top 8 bits.
//   - Word() composes four successive Byte() calls into a 32-bit word,
//     high byte first.
//
// Why:
//
//   - Reproducibility: callers share one *Source across an entire
//     construction so that identical (inputs, seed) pairs produce
//     bitwise-identical mazes and paths.
//
// The recurrence and byte-extraction rule are fixed by the format this
// package reproduces; see Source.Byte for the exact arithmetic.
package rng
