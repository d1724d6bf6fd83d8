package animbridge

import (
	"log/slog"

	"github.com/gogpu/animbridge/engine"
)

// File is an imported animation file together with the factory that
// backs every primitive created for it.
type File struct {
	raw     engine.File
	factory *Factory
	log     *slog.Logger
}

// Import parses data with importer, creating render primitives through
// b. On success the returned File owns a new Factory over b; both are
// released by File.Release.
//
// A failed import returns a nil File and an *ImportError. Use errors.Is
// with ErrMalformed or ErrUnsupportedVersion, or ResultOf, to inspect
// it. A partially constructed file is never returned.
func Import(data []byte, importer engine.Importer, b Backend, opts ...ImportOption) (*File, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	if importer == nil {
		return nil, ErrNilImporter
	}

	o := defaultImportOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	if v, ok := b.(Versioned); ok && v.CommandTableVersion() != o.tableVersion {
		log.Debug("animbridge: backend rejected",
			"declared", v.CommandTableVersion(), "want", o.tableVersion)
		return nil, &ImportError{Result: engine.ImportUnsupportedVersion, Err: ErrIncompatibleBackend}
	}

	factory := newFactory(b, log)
	raw, result := importer.Import(data, factory)
	if result != engine.ImportSuccess || raw == nil {
		factory.release()
		if result == engine.ImportSuccess {
			result = engine.ImportMalformed
		}
		log.Debug("animbridge: import failed", "result", result, "bytes", len(data))
		return nil, &ImportError{Result: result}
	}

	log.Info("animbridge: file imported", "artboards", raw.ArtboardCount(), "bytes", len(data))
	return &File{raw: raw, factory: factory, log: log}, nil
}

// Factory returns the factory tied to this file.
func (f *File) Factory() *Factory { return f.factory }

// Backend returns the command table the file was imported with.
func (f *File) Backend() Backend { return f.factory.backend }

// ArtboardCount returns the number of artboards in the file.
func (f *File) ArtboardCount() int { return f.raw.ArtboardCount() }

// Artboard instantiates an artboard. The default selector picks
// whatever artboard the engine treats as the file's default. The new
// artboard is advanced by zero before it is returned so that its
// layout is valid.
func (f *File) Artboard(sel Selector) (*Artboard, bool) {
	var raw engine.ArtboardInstance
	switch sel.kind {
	case selectIndex:
		if sel.index >= 0 && sel.index < f.raw.ArtboardCount() {
			raw = f.raw.ArtboardAt(sel.index)
		}
	case selectName:
		raw = f.raw.ArtboardNamed(sel.name)
	default:
		raw = f.raw.ArtboardDefault()
	}
	if raw == nil {
		f.log.Debug("animbridge: artboard not found", "selector", sel)
		return nil, false
	}
	return newArtboard(f, raw), true
}

// Release frees the file and its factory together. Artboards and scenes
// instantiated from the file must be released first.
func (f *File) Release() {
	f.raw.Release()
	f.factory.release()
}
