package animbridge

import (
	"time"

	"github.com/gogpu/animbridge/engine"
)

// Direction is the playback direction of a linear animation.
type Direction int8

const (
	Forwards  Direction = 1
	Backwards Direction = -1
)

// LinearAnimation plays one timeline of an artboard.
type LinearAnimation struct {
	sceneBase
	anim engine.LinearAnimationInstance
}

var _ Scene = (*LinearAnimation)(nil)

func newLinearAnimation(a *Artboard, raw engine.LinearAnimationInstance) *LinearAnimation {
	return &LinearAnimation{sceneBase: sceneBase{artboard: a, raw: raw}, anim: raw}
}

// Time returns the current playhead position.
func (l *LinearAnimation) Time() time.Duration { return seconds(l.anim.Time()) }

// SetTime moves the playhead.
func (l *LinearAnimation) SetTime(t time.Duration) { l.anim.SetTime(float32(t.Seconds())) }

// Direction returns the playback direction.
func (l *LinearAnimation) Direction() Direction {
	if l.anim.Direction() < 0 {
		return Backwards
	}
	return Forwards
}

// SetDirection changes the playback direction.
func (l *LinearAnimation) SetDirection(d Direction) {
	if d == Backwards {
		l.anim.SetDirection(-1)
		return
	}
	l.anim.SetDirection(1)
}

// Advance moves the playhead without applying the pose. It reports
// whether playback is still active.
func (l *LinearAnimation) Advance(elapsed time.Duration) bool {
	return l.anim.Advance(float32(elapsed.Seconds()))
}

// Apply writes the pose at the playhead to the artboard, blended with
// the current pose by mix in [0,1].
func (l *LinearAnimation) Apply(mix float32) { l.anim.Apply(mix) }

// DidLoop reports whether the last advance wrapped or bounced.
func (l *LinearAnimation) DidLoop() bool { return l.anim.DidLoop() }

// SetLoop overrides the loop mode.
func (l *LinearAnimation) SetLoop(mode engine.Loop) { l.anim.SetLoop(mode) }

// IsDone reports whether a one-shot animation reached its end.
func (l *LinearAnimation) IsDone() bool { return !l.anim.KeepGoing() }
