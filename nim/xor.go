package nim

// Xor returns the bitwise exclusive-or of two pile values.
//
// The definition is recursive over binary digits rather than a direct
// use of the ^ operator: combine the least-significant bits by parity
// addition mod 2, recurse on the remaining high bits, terminate when
// both operands are zero. Written this way the function is defined for
// non-negative integers of any width; at Pile's fixed 64 bits it
// performs at most 64 recursions and computes exactly what the machine
// XOR instruction would (a cross-check against ^ is part of the test
// suite).
//
// Algebraic laws, each verified as a law in the property suite:
//
//	Xor(x, 0) == Xor(0, x) == x          (identity)
//	Xor(x, y) == Xor(y, x)               (commutativity)
//	Xor(Xor(x, y), z) == Xor(x, Xor(y, z)) (associativity)
//	Xor(x, x) == 0                       (self-cancellation)
//	Xor(x, y) == 0  iff  x == y          (zero-injectivity)
//
// Total and pure: no invalid inputs, no side effects.
func Xor(x, y Pile) Pile {
	if x == 0 && y == 0 {
		return 0
	}
	// Parity addition of the low bits; avoid subtraction so the
	// expression stays within non-negative arithmetic.
	low := (x%2 + y%2) % 2
	return low + 2*Xor(x/2, y/2)
}
