package planner

// Deterministic shuffling. The generator is a 32-bit LCG with the
// Numerical Recipes constants (a=1664525, c=1013904223, mod 2^32)
// driving a Fisher-Yates permutation from the top index down. Ports in
// other languages reproduce the exact permutation by copying these
// constants; do not swap in a different PRNG.

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

type lcg struct {
	state uint32
}

func (r *lcg) next() uint32 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return r.state
}

// intn returns a value in [0, n). n must be > 0.
func (r *lcg) intn(n int) int {
	return int(r.next() % uint32(n))
}

// Shuffle returns a new slice holding a seeded permutation of items.
// The input is never mutated. Same seed, same ordering.
func Shuffle[T any](items []T, seed uint32) []T {
	out := make([]T, len(items))
	copy(out, items)
	r := &lcg{state: seed}
	for i := len(out) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SeedFromKey folds a variant key (a date string, a timestamp, any
// caller-chosen label) into a shuffle seed. Same rolling hash the
// mobile app used for plan ids, so "2025-01-01" seeds identically
// everywhere.
func SeedFromKey(key string) uint32 {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = h*31 + uint32(key[i])
	}
	return h
}
