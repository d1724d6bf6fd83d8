package animbridge_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/animbridge"
	"github.com/gogpu/animbridge/backend/record"
	"github.com/gogpu/animbridge/engine"
	"github.com/gogpu/animbridge/engine/yamldoc"
)

// importerFunc adapts a function to engine.Importer.
type importerFunc func(data []byte, f engine.Factory) (engine.File, engine.ImportResult)

func (fn importerFunc) Import(data []byte, f engine.Factory) (engine.File, engine.ImportResult) {
	return fn(data, f)
}

// unversioned hides the record backend's CommandTableVersion.
type unversioned struct{ animbridge.Backend }

func TestImportArguments(t *testing.T) {
	if _, err := animbridge.Import(nil, yamldoc.NewImporter(), nil); !errors.Is(err, animbridge.ErrNilBackend) {
		t.Errorf("Import(nil backend) error = %v, want ErrNilBackend", err)
	}
	if _, err := animbridge.Import(nil, nil, record.New()); !errors.Is(err, animbridge.ErrNilImporter) {
		t.Errorf("Import(nil importer) error = %v, want ErrNilImporter", err)
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		opts    []animbridge.ImportOption
		want    engine.ImportResult
		wantErr error
	}{
		{"malformed", "version: [unclosed", nil, engine.ImportMalformed, animbridge.ErrMalformed},
		{"unsupported", "version: v7.0.0\nartboards: []", nil,
			engine.ImportUnsupportedVersion, animbridge.ErrUnsupportedVersion},
		{"incompatible backend", testDoc, []animbridge.ImportOption{animbridge.WithCommandTableVersion(99)},
			engine.ImportUnsupportedVersion, animbridge.ErrIncompatibleBackend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := record.New()
			f, err := animbridge.Import([]byte(tt.data), yamldoc.NewImporter(), b, tt.opts...)
			if f != nil {
				t.Fatal("Import() returned a file on failure")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Import() error = %v, want %v", err, tt.wantErr)
			}
			if got := animbridge.ResultOf(err); got != tt.want {
				t.Errorf("ResultOf() = %v, want %v", got, tt.want)
			}
			if n := b.LiveTotal(); n != 0 {
				t.Errorf("backend holds %d live resources after a failed import", n)
			}
		})
	}
}

func TestImportUnversionedBackendSkipsCheck(t *testing.T) {
	b := unversioned{record.New()}
	f, err := animbridge.Import([]byte(testDoc), yamldoc.NewImporter(), b,
		animbridge.WithCommandTableVersion(99))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	f.Release()
}

func TestImportSuccessWithoutFile(t *testing.T) {
	imp := importerFunc(func([]byte, engine.Factory) (engine.File, engine.ImportResult) {
		return nil, engine.ImportSuccess
	})
	_, err := animbridge.Import([]byte("x"), imp, record.New())
	if !errors.Is(err, animbridge.ErrMalformed) {
		t.Errorf("Import() error = %v, want ErrMalformed", err)
	}
}

func TestImportReleasesFactoryOnFailure(t *testing.T) {
	b := record.New()
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	imp := importerFunc(func(_ []byte, f engine.Factory) (engine.File, engine.ImportResult) {
		p := f.MakeRenderPaint()
		p.Unref()
		return nil, engine.ImportMalformed
	})
	if _, err := animbridge.Import(nil, imp, b, animbridge.WithLogger(log)); err == nil {
		t.Fatal("Import() error = nil")
	}
	if n := b.LiveTotal(); n != 0 {
		t.Errorf("backend holds %d live resources", n)
	}
	if !strings.Contains(buf.String(), "import failed") {
		t.Errorf("log = %q, want an import failure", buf.String())
	}
}

func TestImportLogsSuccess(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	f, err := animbridge.Import([]byte(testDoc), yamldoc.NewImporter(), record.New(), animbridge.WithLogger(log))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	defer f.Release()

	out := buf.String()
	if !strings.Contains(out, "file imported") || !strings.Contains(out, "artboards=2") {
		t.Errorf("log = %q, want the import summary", out)
	}
}

func TestImportErrorMessage(t *testing.T) {
	err := &animbridge.ImportError{Result: engine.ImportMalformed}
	if got := err.Error(); !strings.Contains(got, "malformed") {
		t.Errorf("Error() = %q, want it to name the result", got)
	}
	if got := animbridge.ResultOf(nil); got != engine.ImportSuccess {
		t.Errorf("ResultOf(nil) = %v, want success", got)
	}
	if got := animbridge.ResultOf(errors.New("other")); got != engine.ImportMalformed {
		t.Errorf("ResultOf(other) = %v, want malformed", got)
	}
}
