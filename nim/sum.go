package nim

import "golang.org/x/sync/errgroup"

// parallelChunk is the per-goroutine slice size used by SumParallel.
// Below one chunk SumParallel falls through to the sequential fold.
const parallelChunk = 4096

// Sum returns the nim-sum of a configuration: the XOR of all pile
// values, reduced to a single pile value.
//
// Defined as the right fold of Xor starting from 0, so that
//
//	Sum(nil) == 0
//	Sum(append(Piles{x}, rest...)) == Xor(x, Sum(rest))
//
// hold by construction. Because Xor is commutative and associative the
// fold direction is immaterial; further laws verified by the property
// suite:
//
//	Sum(xs ++ ys) == Xor(Sum(xs), Sum(ys))   (concatenation)
//	Sum(xs ++ xs) == 0                       (doubling cancels)
//	Sum(perm(xs)) == Sum(xs)                 (permutation-invariance)
//
// Total and pure.
func Sum(piles Piles) Pile {
	var sum Pile
	for i := len(piles) - 1; i >= 0; i-- {
		sum = Xor(piles[i], sum)
	}
	return sum
}

// SumParallel returns the same value as Sum, computing partial sums of
// fixed-size chunks concurrently and combining them.
//
// The XOR fold is associative and commutative, so any balanced
// reduction yields the identical result; SumParallel exists for very
// large configurations and is never required for correctness. Small
// inputs (at most one chunk) are folded sequentially.
func SumParallel(piles Piles) Pile {
	if len(piles) <= parallelChunk {
		return Sum(piles)
	}

	n := (len(piles) + parallelChunk - 1) / parallelChunk
	partial := make([]Pile, n)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		start := i * parallelChunk
		end := min(start+parallelChunk, len(piles))
		g.Go(func() error {
			partial[i] = Sum(piles[start:end])
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = g.Wait()

	return Sum(partial)
}
