package host

import (
	"log/slog"
	"unicode/utf8"

	"github.com/gogpu/animbridge"
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/geom"
	"github.com/gogpu/animbridge/internal/slab"
)

// Handle is an opaque reference to a file, artboard or scene. The zero
// Handle refers to nothing.
type Handle uint64

// UseDefault selects the default object in index-taking calls.
const UseDefault = -1

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger for lookup failures and stale handles. The
// package logger of animbridge is used when unset.
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) {
		h.log = l
	}
}

// WithImportOptions passes options to every animbridge.Import call.
func WithImportOptions(opts ...animbridge.ImportOption) Option {
	return func(h *Host) {
		h.importOpts = append(h.importOpts, opts...)
	}
}

// Host owns the handle tables.
type Host struct {
	files      slab.Slab[*animbridge.File]
	artboards  slab.Slab[*animbridge.Artboard]
	scenes     slab.Slab[animbridge.Scene]
	log        *slog.Logger
	importOpts []animbridge.ImportOption
}

// New returns an empty Host.
func New(opts ...Option) *Host {
	h := &Host{}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = animbridge.Logger()
	}
	return h
}

// Live returns the number of handles that have not been released.
func (h *Host) Live() int {
	return h.files.Len() + h.artboards.Len() + h.scenes.Len()
}

func selector(index int) animbridge.Selector {
	if index == UseDefault {
		return animbridge.ByDefault()
	}
	return animbridge.ByIndex(index)
}

func nameSelector(name []byte) (animbridge.Selector, bool) {
	if !utf8.Valid(name) {
		return animbridge.Selector{}, false
	}
	return animbridge.ByName(string(name)), true
}

func (h *Host) file(fh Handle) (*animbridge.File, bool) {
	f, ok := h.files.Get(slab.Handle(fh))
	if !ok {
		h.log.Debug("host: stale file handle", "handle", uint64(fh))
	}
	return f, ok
}

func (h *Host) artboard(ah Handle) (*animbridge.Artboard, bool) {
	a, ok := h.artboards.Get(slab.Handle(ah))
	if !ok {
		h.log.Debug("host: stale artboard handle", "handle", uint64(ah))
	}
	return a, ok
}

// FileNew imports data through importer and backend. It returns the
// file handle, the factory backing the file's primitives and the import
// result. On failure the handle is zero and the factory nil.
func (h *Host) FileNew(data []byte, importer engine.Importer, backend animbridge.Backend) (Handle, *animbridge.Factory, engine.ImportResult) {
	f, err := animbridge.Import(data, importer, backend, h.importOpts...)
	if err != nil {
		h.log.Debug("host: import failed", "error", err)
		return 0, nil, animbridge.ResultOf(err)
	}
	return Handle(h.files.Insert(f)), f.Factory(), engine.ImportSuccess
}

// FileRelease frees a file and its factory.
func (h *Host) FileRelease(fh Handle) {
	if f, ok := h.files.Remove(slab.Handle(fh)); ok {
		f.Release()
	}
}

// ArtboardCount returns the number of artboards in a file.
func (h *Host) ArtboardCount(fh Handle) int {
	f, ok := h.file(fh)
	if !ok {
		return 0
	}
	return f.ArtboardCount()
}

// Artboard instantiates the artboard at index, or the default one for
// UseDefault, into out.
func (h *Host) Artboard(fh Handle, index int, out *Handle) {
	if f, ok := h.file(fh); ok {
		a, found := f.Artboard(selector(index))
		h.putArtboard(a, found, out)
	}
}

// ArtboardNamed instantiates the artboard called name into out.
func (h *Host) ArtboardNamed(fh Handle, name []byte, out *Handle) {
	f, ok := h.file(fh)
	if !ok {
		return
	}
	if sel, ok := nameSelector(name); ok {
		a, found := f.Artboard(sel)
		h.putArtboard(a, found, out)
	}
}

func (h *Host) putArtboard(a *animbridge.Artboard, ok bool, out *Handle) {
	if ok {
		*out = Handle(h.artboards.Insert(a))
	}
}

// ArtboardRelease frees an artboard.
func (h *Host) ArtboardRelease(ah Handle) {
	if a, ok := h.artboards.Remove(slab.Handle(ah)); ok {
		a.Release()
	}
}

// ArtboardName returns the artboard name.
func (h *Host) ArtboardName(ah Handle) string {
	if a, ok := h.artboard(ah); ok {
		return a.Name()
	}
	return ""
}

// ArtboardBounds returns the artboard's intrinsic bounds.
func (h *Host) ArtboardBounds(ah Handle) geom.AABB {
	if a, ok := h.artboard(ah); ok {
		return a.Bounds()
	}
	return geom.AABB{}
}

// ArtboardDraw draws the artboard's current pose with the file's
// backend.
func (h *Host) ArtboardDraw(ah Handle, renderer animbridge.RendererHandle) {
	if a, ok := h.artboard(ah); ok {
		a.Draw(renderer)
	}
}

// LinearAnimation instantiates the animation at index, or the first one
// for UseDefault, into out.
func (h *Host) LinearAnimation(ah Handle, index int, out *Handle) {
	if a, ok := h.artboard(ah); ok {
		la, found := a.LinearAnimation(selector(index))
		h.putScene(la, found, out)
	}
}

// LinearAnimationNamed instantiates the animation called name into out.
func (h *Host) LinearAnimationNamed(ah Handle, name []byte, out *Handle) {
	a, ok := h.artboard(ah)
	if !ok {
		return
	}
	if sel, ok := nameSelector(name); ok {
		la, found := a.LinearAnimation(sel)
		h.putScene(la, found, out)
	}
}

// StateMachine instantiates the state machine at index into out. For
// UseDefault it picks the artboard's designated default, else its first
// state machine, else leaves out untouched.
func (h *Host) StateMachine(ah Handle, index int, out *Handle) {
	if a, ok := h.artboard(ah); ok {
		sm, found := a.StateMachine(selector(index))
		h.putScene(sm, found, out)
	}
}

// StateMachineNamed instantiates the state machine called name into out.
func (h *Host) StateMachineNamed(ah Handle, name []byte, out *Handle) {
	a, ok := h.artboard(ah)
	if !ok {
		return
	}
	if sel, ok := nameSelector(name); ok {
		sm, found := a.StateMachine(sel)
		h.putScene(sm, found, out)
	}
}

func (h *Host) putScene(s animbridge.Scene, ok bool, out *Handle) {
	if ok {
		*out = Handle(h.scenes.Insert(s))
	}
}
