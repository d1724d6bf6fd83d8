package animbridge

import (
	"iter"

	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
)

// Commands is the pull cursor a backend uses to read path geometry.
// It is positioned at the first verb; each Next yields one verb with its
// points and moves forward. The point slices alias the engine's path
// storage, so a backend copies what it keeps and never holds on to the
// cursor after NewPathFromCommands returns.
//
// Count is fixed when the cursor is created. Consumers call Next exactly
// Count times.
type Commands struct {
	it    engine.PathIter
	count int
}

func newCommands(raw *engine.RawPath) Commands {
	return Commands{it: raw.Iter(), count: raw.VerbCount()}
}

// Count returns the total number of verbs the cursor yields.
func (c *Commands) Count() int { return c.count }

// Next returns the current verb and its points, then advances. Move and
// line carry one point, cubic carries two control points and an end
// point, close carries none.
func (c *Commands) Next() (engine.PathVerb, []geom.Vec2D) {
	verb, pts, _ := c.it.Next()
	return verb, pts
}

// All yields every remaining verb in order.
func (c *Commands) All() iter.Seq2[engine.PathVerb, []geom.Vec2D] {
	return func(yield func(engine.PathVerb, []geom.Vec2D) bool) {
		for c.it.Remaining() > 0 {
			verb, pts := c.Next()
			if !yield(verb, pts) {
				return
			}
		}
	}
}
