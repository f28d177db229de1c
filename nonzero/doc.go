// Package nonzero provides integer wrappers that can never hold zero.
//
// A Value is built with New or MustNew, both of which reject zero, so any
// Value in hand is known to be non-zero. Values compare by their underlying
// integer and implement compare.Ext, compare.Cmper and compare.Comparable:
//
//	n := nonzero.MustNew[int32](5)
//	n.GreaterThan(nonzero.MustNew[int32](-1)) // Success(5)
//
// The package is compiled in by default. Building with -tags nonzero_disabled
// leaves only this file, dropping every non-zero type from the build.
package nonzero
