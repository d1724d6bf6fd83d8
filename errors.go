package animbridge

import (
	"errors"
	"fmt"

	"github.com/gogpu/animbridge/engine"
)

var (
	// ErrMalformed matches imports that failed because the data could not
	// be parsed.
	ErrMalformed = errors.New("animbridge: malformed file")

	// ErrUnsupportedVersion matches imports that failed because the file
	// or the backend command table has an unsupported version.
	ErrUnsupportedVersion = errors.New("animbridge: unsupported version")

	// ErrIncompatibleBackend is the cause recorded when a backend declares
	// a command table version other than CommandTableVersion.
	ErrIncompatibleBackend = errors.New("animbridge: incompatible backend command table")

	// ErrNilBackend is returned by Import when no backend is given.
	ErrNilBackend = errors.New("animbridge: nil backend")

	// ErrNilImporter is returned by Import when no importer is given.
	ErrNilImporter = errors.New("animbridge: nil importer")
)

// ImportError is returned by Import when the engine rejects a file.
type ImportError struct {
	Result engine.ImportResult
	// Err is an optional underlying cause.
	Err error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("animbridge: import failed: %s: %v", e.Result, e.Err)
	}
	return fmt.Sprintf("animbridge: import failed: %s", e.Result)
}

// Is matches ErrMalformed and ErrUnsupportedVersion by result code.
func (e *ImportError) Is(target error) bool {
	switch target {
	case ErrMalformed:
		return e.Result == engine.ImportMalformed
	case ErrUnsupportedVersion:
		return e.Result == engine.ImportUnsupportedVersion
	}
	return false
}

func (e *ImportError) Unwrap() error { return e.Err }

// ResultOf returns the import result code carried by err. A nil error
// is ImportSuccess; errors that carry no code are ImportMalformed.
func ResultOf(err error) engine.ImportResult {
	if err == nil {
		return engine.ImportSuccess
	}
	var ie *ImportError
	if errors.As(err, &ie) {
		return ie.Result
	}
	return engine.ImportMalformed
}
