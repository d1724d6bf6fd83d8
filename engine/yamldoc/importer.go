package yamldoc

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/animbridge"
	"github.com/gogpu/animbridge/engine"
)

// SupportedMajor is the document major version this engine reads.
const SupportedMajor = "v1"

// Importer reads scene documents. It implements engine.Importer.
type Importer struct {
	maxArtboards int
	strict       bool
	log          *slog.Logger
}

var _ engine.Importer = (*Importer)(nil)

// Option configures an Importer.
type Option func(*Importer)

// WithMaxArtboards rejects documents with more than n artboards as
// malformed. Zero means no limit.
func WithMaxArtboards(n int) Option {
	return func(im *Importer) {
		im.maxArtboards = n
	}
}

// WithStrict rejects documents containing fields this engine does not
// know.
func WithStrict(strict bool) Option {
	return func(im *Importer) {
		im.strict = strict
	}
}

// WithLogger sets the logger used for import diagnostics. By default
// the importer logs through animbridge.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(im *Importer) {
		im.log = l
	}
}

// NewImporter returns an importer with the given options applied.
func NewImporter(opts ...Option) *Importer {
	im := &Importer{}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

func (im *Importer) logger() *slog.Logger {
	if im.log != nil {
		return im.log
	}
	return animbridge.Logger()
}

// Import implements engine.Importer.
func (im *Importer) Import(data []byte, factory engine.Factory) (engine.File, engine.ImportResult) {
	doc, result, err := im.parse(data)
	if err != nil {
		im.logger().Debug("yamldoc: import rejected", "result", result, "err", err)
		return nil, result
	}
	f, err := newFile(doc, factory)
	if err != nil {
		im.logger().Debug("yamldoc: import rejected", "result", engine.ImportMalformed, "err", err)
		return nil, engine.ImportMalformed
	}
	return f, engine.ImportSuccess
}

// Validate parses data and checks it the way Import does, without
// creating any render primitive.
func (im *Importer) Validate(data []byte) (engine.ImportResult, error) {
	_, result, err := im.parse(data)
	return result, err
}

func (im *Importer) parse(data []byte) (*document, engine.ImportResult, error) {
	doc, err := im.decode(data)
	if err != nil {
		return nil, engine.ImportMalformed, err
	}
	if !semver.IsValid(doc.Version) {
		return nil, engine.ImportMalformed, fmt.Errorf("yamldoc: invalid version %q", doc.Version)
	}
	if major := semver.Major(doc.Version); major != SupportedMajor {
		return nil, engine.ImportUnsupportedVersion,
			fmt.Errorf("yamldoc: version %s not supported, want %s.x", doc.Version, SupportedMajor)
	}
	if im.maxArtboards > 0 && len(doc.Artboards) > im.maxArtboards {
		return nil, engine.ImportMalformed,
			fmt.Errorf("yamldoc: %d artboards exceed the limit of %d", len(doc.Artboards), im.maxArtboards)
	}
	if err := doc.validate(); err != nil {
		return nil, engine.ImportMalformed, err
	}
	return doc, engine.ImportSuccess, nil
}

func (im *Importer) decode(data []byte) (*document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(im.strict)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("yamldoc: empty document")
		}
		return nil, fmt.Errorf("yamldoc: %w", err)
	}
	return &doc, nil
}

// decodeImages returns the raw bytes of every image, keyed by name.
func (d *document) decodeImages() (map[string][]byte, error) {
	out := make(map[string][]byte, len(d.Images))
	for _, img := range d.Images {
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			return nil, fmt.Errorf("yamldoc: image %q: %w", img.Name, err)
		}
		out[img.Name] = data
	}
	return out, nil
}
