package linewriter

import (
	"bufio"
	"io"
	"iter"

	"github.com/aalvaropc/setop/internal/domain"
)

// Writer emits lines, each followed by a fixed terminator.
type Writer struct {
	bw  *bufio.Writer
	eol string
	n   int
}

func New(w io.Writer, nl domain.Newline) *Writer {
	return &Writer{bw: bufio.NewWriter(w), eol: nl.Terminator()}
}

func (w *Writer) WriteLine(line string) error {
	if _, err := w.bw.WriteString(line); err != nil {
		return w.ioErr(err)
	}
	if _, err := w.bw.WriteString(w.eol); err != nil {
		return w.ioErr(err)
	}
	w.n++
	return nil
}

// WriteAll writes every line of seq and flushes.
func (w *Writer) WriteAll(seq iter.Seq[string]) error {
	for line := range seq {
		if err := w.WriteLine(line); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return w.ioErr(err)
	}
	return nil
}

// Lines reports how many lines have been written.
func (w *Writer) Lines() int { return w.n }

func (w *Writer) ioErr(err error) error {
	return &domain.OpError{Op: "linewriter.write", Kind: domain.KindIO, Err: err}
}
