package arena

// RNG is the randomness source of a session. *math/rand.Rand satisfies it;
// tests inject scripted sources to force exact outcomes.
type RNG interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}
