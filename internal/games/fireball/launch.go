package fireball

import "math/rand"

// Launcher picks the velocity a hazard gets when it activates.
// Index is the hazard's position in the session's hazard list.
type Launcher interface {
	Launch(index int) (vx, vy int)
}

// LauncherFunc adapts a plain function to the Launcher interface.
type LauncherFunc func(index int) (vx, vy int)

// Launch calls f(index).
func (f LauncherFunc) Launch(index int) (vx, vy int) {
	return f(index)
}

// RandomLauncher draws each velocity component uniformly from
// [minSpeed, maxSpeed] with a random sign. Components are never zero.
type RandomLauncher struct {
	rng      *rand.Rand
	minSpeed int
	maxSpeed int
}

// NewRandomLauncher creates a seeded launcher. Speeds below 1 are raised to 1.
func NewRandomLauncher(seed int64, minSpeed, maxSpeed int) *RandomLauncher {
	minSpeed = max(minSpeed, 1)
	maxSpeed = max(maxSpeed, minSpeed)
	return &RandomLauncher{
		rng:      rand.New(rand.NewSource(seed)),
		minSpeed: minSpeed,
		maxSpeed: maxSpeed,
	}
}

// Launch returns a fresh random velocity.
func (l *RandomLauncher) Launch(int) (vx, vy int) {
	return l.component(), l.component()
}

func (l *RandomLauncher) component() int {
	v := l.minSpeed + l.rng.Intn(l.maxSpeed-l.minSpeed+1)
	if l.rng.Intn(2) == 0 {
		return -v
	}
	return v
}
