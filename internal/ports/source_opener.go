package ports

import "io"

// SourceOpener opens a named input for reading. The name "-" denotes
// standard input.
type SourceOpener interface {
	Open(name string) (io.ReadCloser, error)
}
