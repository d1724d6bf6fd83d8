package animbridge

import "log/slog"

// ImportOption configures Import.
//
// Example:
//
//	file, err := animbridge.Import(data, imp, backend,
//	    animbridge.WithLogger(logger))
type ImportOption func(*importOptions)

type importOptions struct {
	logger       *slog.Logger
	tableVersion uint32
}

func defaultImportOptions() importOptions {
	return importOptions{
		tableVersion: CommandTableVersion,
	}
}

// WithLogger sets the logger used by the file, its factory and
// everything instantiated from it. The package logger is used when
// unset.
func WithLogger(l *slog.Logger) ImportOption {
	return func(o *importOptions) {
		o.logger = l
	}
}

// WithCommandTableVersion sets the command table version a Versioned
// backend must declare. It defaults to CommandTableVersion.
func WithCommandTableVersion(v uint32) ImportOption {
	return func(o *importOptions) {
		o.tableVersion = v
	}
}
