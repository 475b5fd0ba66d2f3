package blockfall

// GravityTimer fires once every period frames, independent of input.
type GravityTimer struct {
	period  int
	elapsed int
}

// NewGravityTimer creates a timer that fires every period frames (at least 1).
func NewGravityTimer(period int) *GravityTimer {
	return &GravityTimer{period: max(period, 1)}
}

// Advance counts one frame and reports whether gravity is due.
func (t *GravityTimer) Advance() bool {
	t.elapsed++
	if t.elapsed < t.period {
		return false
	}
	t.elapsed = 0
	return true
}

// Reset restarts the current period.
func (t *GravityTimer) Reset() {
	t.elapsed = 0
}

// Expire makes the next Advance fire.
func (t *GravityTimer) Expire() {
	t.elapsed = t.period
}

// Period returns the number of frames between drops.
func (t *GravityTimer) Period() int {
	return t.period
}
