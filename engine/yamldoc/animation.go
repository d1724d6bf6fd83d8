package yamldoc

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

type boundKey struct {
	shape  *shape
	prop   property
	frames []frameDef
	eases  []ease.TweenFunc
}

// sample returns the key's value at time t.
func (k *boundKey) sample(t float32) float32 {
	f := k.frames
	if t <= f[0].Time {
		return f[0].Value
	}
	last := len(f) - 1
	if t >= f[last].Time {
		return f[last].Value
	}
	i := 0
	for i < last && f[i+1].Time <= t {
		i++
	}
	from, to := f[i], f[i+1]
	span := to.Time - from.Time
	if span <= 0 {
		return to.Value
	}
	return k.eases[i](t-from.Time, from.Value, to.Value-from.Value, span)
}

// firedEvent is a timeline event crossed during the last advance.
type firedEvent struct {
	name  string
	delay float32
}

// linearAnimation plays one animation definition on an artboard
// instance.
type linearAnimation struct {
	artboard  *artboard
	def       *animationDef
	loop      engine.Loop
	time      float32
	direction int
	didLoop   bool
	keepGoing bool
	keys      []boundKey
	fired     []firedEvent
}

var _ engine.LinearAnimationInstance = (*linearAnimation)(nil)

func newLinearAnimation(a *artboard, def *animationDef) *linearAnimation {
	l := &linearAnimation{artboard: a, def: def, direction: 1, keepGoing: true}
	l.loop, _ = parseLoop(def.Loop)
	for _, k := range def.Keys {
		prop, _ := parseProperty(k.Property)
		bk := boundKey{shape: a.shapes[k.Shape], prop: prop, frames: k.Frames}
		for _, f := range k.Frames {
			fn, _ := parseEase(f.Ease)
			bk.eases = append(bk.eases, fn)
		}
		l.keys = append(l.keys, bk)
	}
	return l
}

func (l *linearAnimation) Name() string             { return l.def.Name }
func (l *linearAnimation) Width() float32           { return l.artboard.def.Width }
func (l *linearAnimation) Height() float32          { return l.artboard.def.Height }
func (l *linearAnimation) Loop() engine.Loop        { return l.loop }
func (l *linearAnimation) IsTranslucent() bool      { return l.artboard.isTranslucent() }
func (l *linearAnimation) DurationSeconds() float32 { return l.def.Duration }
func (l *linearAnimation) Draw(r engine.Renderer)   { l.artboard.Draw(r) }
func (l *linearAnimation) PointerDown(geom.Vec2D)   {}
func (l *linearAnimation) PointerMove(geom.Vec2D)   {}
func (l *linearAnimation) PointerUp(geom.Vec2D)     {}
func (l *linearAnimation) Time() float32            { return l.time }
func (l *linearAnimation) Direction() int           { return l.direction }
func (l *linearAnimation) DidLoop() bool            { return l.didLoop }
func (l *linearAnimation) SetLoop(mode engine.Loop) { l.loop = mode }
func (l *linearAnimation) KeepGoing() bool          { return l.keepGoing }

func (l *linearAnimation) SetTime(seconds float32) {
	l.time = max(0, min(l.def.Duration, seconds))
	l.keepGoing = true
}

func (l *linearAnimation) SetDirection(dir int) {
	if dir < 0 {
		l.direction = -1
		return
	}
	l.direction = 1
}

func (l *linearAnimation) AdvanceAndApply(elapsedSeconds float32) bool {
	keepGoing := l.Advance(elapsedSeconds)
	l.Apply(1)
	l.artboard.Advance(elapsedSeconds)
	return keepGoing
}

// Advance moves the playhead by elapsedSeconds in the current
// direction and applies the loop mode at either end.
func (l *linearAnimation) Advance(elapsedSeconds float32) bool {
	l.fired = l.fired[:0]
	l.didLoop = false

	end := l.def.Duration
	if end <= 0 {
		l.time = 0
		l.keepGoing = l.loop != engine.LoopOneShot
		return l.keepGoing
	}

	from := l.time
	t := from + elapsedSeconds*float32(l.direction)
	l.keepGoing = true

	switch {
	case t >= end && l.direction > 0:
		over := t - end
		l.collect(from, end, over)
		switch l.loop {
		case engine.LoopOneShot:
			t = end
			l.keepGoing = false
		case engine.LoopLoop:
			t = mod(over, end)
			l.didLoop = true
			l.collect(0, t, 0)
		case engine.LoopPingPong:
			t = l.bounce(end, over)
			l.didLoop = true
		}
	case t <= 0 && l.direction < 0:
		over := -t
		l.collect(from, 0, over)
		switch l.loop {
		case engine.LoopOneShot:
			t = 0
			l.keepGoing = false
		case engine.LoopLoop:
			t = end - mod(over, end)
			l.didLoop = true
			l.collect(end, t, 0)
		case engine.LoopPingPong:
			t = l.bounce(0, over)
			l.didLoop = true
		}
	default:
		t = max(0, min(end, t))
		l.collect(from, t, 0)
	}
	l.time = t
	return l.keepGoing
}

// bounce reflects the playhead off the boundary at, over seconds past
// it, and keeps reflecting off either end until over is spent. It
// leaves l.direction pointing the way the playhead last moved.
func (l *linearAnimation) bounce(at, over float32) float32 {
	end := l.def.Duration
	for {
		l.direction = -l.direction
		other := end - at
		if over <= end {
			t := at + over*float32(l.direction)
			l.collect(at, t, 0)
			return t
		}
		over -= end
		l.collect(at, other, over)
		at = other
	}
}

func mod(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}

// collect records the timeline events crossed moving from -> to. The
// segment includes its start and excludes its end, except that the
// animation's own boundaries are included. after is the time that
// elapsed once the segment was done.
func (l *linearAnimation) collect(from, to, after float32) {
	if from == to {
		return
	}
	end := l.def.Duration
	for _, e := range l.def.Events {
		var crossed bool
		if from < to {
			crossed = e.Time >= from && (e.Time < to || to == end && e.Time == end)
		} else {
			crossed = e.Time <= from && (e.Time > to || to == 0 && e.Time == 0)
		}
		if crossed {
			delay := float32(math.Abs(float64(to-e.Time))) + after
			l.fired = append(l.fired, firedEvent{name: e.Name, delay: delay})
		}
	}
}

// Apply writes the pose at the playhead, blended with the current
// pose by mix.
func (l *linearAnimation) Apply(mix float32) {
	for i := range l.keys {
		k := &l.keys[i]
		v := k.sample(l.time)
		if mix < 1 {
			cur := k.shape.props[k.prop]
			v = cur + (v-cur)*mix
		}
		k.shape.set(k.prop, v)
	}
}

// reset rewinds the playhead for a fresh playthrough in the current
// direction.
func (l *linearAnimation) reset() {
	l.time = 0
	if l.direction < 0 {
		l.time = l.def.Duration
	}
	l.keepGoing = true
	l.didLoop = false
	l.fired = l.fired[:0]
}

func (l *linearAnimation) Release() {
	l.keys = nil
	l.fired = nil
}
