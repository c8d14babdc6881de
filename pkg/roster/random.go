package roster

import (
	"math/rand/v2"
)

// Random is the source used for clash selection. *rand.Rand satisfies it.
type Random interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// pickTwo returns two distinct indexes in [0, n) chosen uniformly without replacement
func pickTwo(r Random, n int) (int, int) {
	first := r.IntN(n)
	second := r.IntN(n - 1)
	if second >= first {
		second++
	}
	return first, second
}
