package testutil

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// PileGen generates arbitrary 64-bit pile values.
//
// The full uint64 range is deliberate: the XOR laws must hold at the
// width boundary, not just for small piles.
func PileGen() gopter.Gen {
	return gen.UInt64()
}

// SmallPileGen generates pile values bounded to realistic game sizes.
// Bounded generation keeps shrunk counterexamples readable.
func SmallPileGen() gopter.Gen {
	return gen.UInt64Range(0, 1<<16)
}

// PilesGen generates pile configurations of arbitrary length, including
// the empty configuration.
func PilesGen() gopter.Gen {
	return gen.SliceOf(SmallPileGen())
}
