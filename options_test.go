package animbridge

import (
	"log/slog"
	"testing"
)

func TestDefaultImportOptions(t *testing.T) {
	o := defaultImportOptions()
	if o.logger != nil {
		t.Errorf("default logger = %v, want nil", o.logger)
	}
	if o.tableVersion != CommandTableVersion {
		t.Errorf("default tableVersion = %d, want %d", o.tableVersion, CommandTableVersion)
	}
}

func TestImportOptions(t *testing.T) {
	l := slog.Default()
	o := defaultImportOptions()
	for _, opt := range []ImportOption{WithLogger(l), WithCommandTableVersion(7)} {
		opt(&o)
	}
	if o.logger != l {
		t.Error("WithLogger did not set the logger")
	}
	if o.tableVersion != 7 {
		t.Errorf("tableVersion = %d, want 7", o.tableVersion)
	}
}
