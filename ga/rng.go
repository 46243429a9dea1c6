package ga

import "math/rand"

// rootSeed anchors the RNG when a solve leaves GAConfig.Seed at its zero
// value, so "no seed configured" still replays identically run to run.
const rootSeed int64 = 1

// rngFromSeed builds the solve's root generator. seed==0 maps to rootSeed;
// any other value is used as-is.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = rootSeed
	}
	return rand.New(rand.NewSource(seed))
}

// genStream derives an RNG for one generation from the solve's root stream:
// it draws a fresh int64 from parent (advancing the root stream so repeated
// calls decorrelate) and folds the generation index into it. The derived
// stream depends on the root stream's position as well as on generation, so
// a generation's draws are reproduced only by replaying the solve from its
// seed.
func genStream(parent *rand.Rand, generation int) *rand.Rand {
	return rand.New(rand.NewSource(avalanche(parent.Int63(), uint64(generation))))
}

// avalanche mixes seed and salt into a well-distributed 64-bit value. The
// multiply-xorshift rounds are the standard SplitMix64 finalizer; what
// matters here is only that small changes to generation index produce
// uncorrelated streams, not the specific constants.
func avalanche(seed int64, salt uint64) int64 {
	x := uint64(seed) ^ (salt + 0x9e3779b97f4a7c15)
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return int64(x ^ (x >> 31))
}

// shuffle performs an in-place Fisher-Yates shuffle of a.
func shuffle(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a random permutation of 0..n-1.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffle(p, rng)
	return p
}
