package sim

// Physics holds the tunables used by actor updates.
// Speeds are in tiles per second, accelerations in tiles per second squared.
type Physics struct {
	Gravity      float64
	JumpSpeed    float64
	PlayerXSpeed float64
	WobbleSpeed  float64
	WobbleDist   float64
}

// DefaultPhysics returns the classic tuning.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:      30,
		JumpSpeed:    17,
		PlayerXSpeed: 7,
		WobbleSpeed:  8,
		WobbleDist:   0.07,
	}
}

// Rand is the random source used for monster wandering and coin phases.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// env is shared by every state descending from one Start call.
// It is never modified after construction.
type env struct {
	physics Physics
	rng     Rand
}
