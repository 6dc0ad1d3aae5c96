// Package stack implements a growable byte LIFO with a fixed additive
// growth policy.
//
// This package contains:
//   - Stack: the core byte stack (push, pop variants, raw range reads)
//   - Meter: optional growth and throughput counters
//   - Guarded: a mutex-wrapped stack for concurrent embedders
package stack
