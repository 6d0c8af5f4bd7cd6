package fsource

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/aalvaropc/setop/internal/domain"
	"github.com/aalvaropc/setop/internal/ports"
)

// StdinName is the input name that selects standard input.
const StdinName = "-"

type Opener struct {
	stdin io.Reader
	log   *slog.Logger
}

type Option func(*Opener)

// WithStdin replaces os.Stdin, useful for tests.
func WithStdin(r io.Reader) Option {
	return func(o *Opener) { o.stdin = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Opener) {
		if l != nil {
			o.log = l
		}
	}
}

func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		stdin: os.Stdin,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ ports.SourceOpener = (*Opener)(nil)

// Open returns standard input for "-" (closing it is a no-op) and otherwise
// opens the named file read-only.
func (o *Opener) Open(name string) (io.ReadCloser, error) {
	if name == StdinName {
		o.log.Debug("input.opened", "name", "<stdin>")
		return io.NopCloser(o.stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "fsource.open",
			Kind: kind,
			Path: name,
			Err:  err,
		}
	}

	if st, err := f.Stat(); err == nil {
		if st.IsDir() {
			_ = f.Close()
			return nil, &domain.OpError{
				Op:   "fsource.open",
				Kind: domain.KindIO,
				Path: name,
				Err:  fmt.Errorf("%w: is a directory", domain.ErrIO),
			}
		}
		o.log.Debug("input.opened", "name", name, "size", humanize.Bytes(uint64(st.Size())))
	}
	return f, nil
}
