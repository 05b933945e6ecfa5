package bruteforce

import (
	"errors"
	"io"
	"log/slog"
	"runtime"
)

// ErrModelTooLarge indicates more free variables than Options.MaxVariables
// allows for exhaustive enumeration.
var ErrModelTooLarge = errors.New("bruteforce: model has too many free variables to enumerate")

// Default option values.
const (
	// DefaultChunkSize is the number of assignments evaluated per chunk.
	DefaultChunkSize = 1 << 16
	// DefaultMaxVariables bounds the free-variable count; 2^24 assignments
	// is the largest enumeration accepted by default.
	DefaultMaxVariables = 24
)

// Options configures the exhaustive sampler.
//   - ChunkSize: assignments per chunk (default DefaultChunkSize).
//   - MaxVariables: refuse models with more free variables (default
//     DefaultMaxVariables).
//   - Workers: concurrent chunk evaluators (default runtime.NumCPU()).
//   - Logger: passive diagnostics sink; nil discards.
type Options struct {
	ChunkSize    int
	MaxVariables int
	Workers      int
	Logger       *slog.Logger
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		ChunkSize:    DefaultChunkSize,
		MaxVariables: DefaultMaxVariables,
		Workers:      runtime.NumCPU(),
	}
}

// normalize fills unset fields with their defaults.
func (o *Options) normalize() {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.MaxVariables <= 0 {
		o.MaxVariables = DefaultMaxVariables
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}
