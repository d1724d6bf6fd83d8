package yamldoc

import (
	"github.com/gogpu/animbridge/engine"
)

// file is an imported document. It owns the decoded images; artboard
// instances take their own references on them.
type file struct {
	doc     *document
	factory engine.Factory
	images  map[string]engine.RenderImage
}

var _ engine.File = (*file)(nil)

func newFile(doc *document, factory engine.Factory) (*file, error) {
	raw, err := doc.decodeImages()
	if err != nil {
		return nil, err
	}
	f := &file{doc: doc, factory: factory, images: make(map[string]engine.RenderImage, len(raw))}
	for name, data := range raw {
		// A nil image is kept so that shapes using it draw nothing.
		f.images[name] = factory.DecodeImage(data)
	}
	return f, nil
}

func (f *file) ArtboardCount() int { return len(f.doc.Artboards) }

func (f *file) ArtboardAt(index int) engine.ArtboardInstance {
	if index < 0 || index >= len(f.doc.Artboards) {
		return nil
	}
	return newArtboard(f, &f.doc.Artboards[index])
}

func (f *file) ArtboardNamed(name string) engine.ArtboardInstance {
	for i := range f.doc.Artboards {
		if f.doc.Artboards[i].Name == name {
			return newArtboard(f, &f.doc.Artboards[i])
		}
	}
	return nil
}

// ArtboardDefault returns the designated artboard, or the first one
// when the document designates none.
func (f *file) ArtboardDefault() engine.ArtboardInstance {
	if f.doc.DefaultArtboard != "" {
		return f.ArtboardNamed(f.doc.DefaultArtboard)
	}
	return f.ArtboardAt(0)
}

func (f *file) Release() {
	for name, img := range f.images {
		if img != nil {
			img.Unref()
		}
		delete(f.images, name)
	}
}
