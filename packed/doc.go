// Package packed moves typed values through a byte stack.
//
// Each value travels as a one-byte kind tag followed by its payload:
// numeric payloads are fixed-width little-endian, string payloads carry a
// four-byte length ahead of their bytes. Values are appended top-first, so
// the stack's pop reversal hands the tag back before the payload and the
// payload arrives in its natural byte order.
package packed
