// Package linereader turns byte streams into line collections.
package linereader

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/aalvaropc/setop/internal/domain"
)

// ReadLines splits r on '\n' and strips every trailing '\r' and '\n' from each
// line, so both LF and CRLF input are accepted. Empty lines are dropped
// wherever they occur. Lines keep their input order.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var out []string
	for {
		line, err := br.ReadString('\n')
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			out = append(out, line)
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, &domain.OpError{
				Op:   "linereader.read",
				Kind: domain.KindIO,
				Err:  err,
			}
		}
	}
}

// ReadSet reads r into a set of distinct lines.
func ReadSet(r io.Reader) (domain.Set, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return domain.Set{}, err
	}
	return domain.NewSet(lines...), nil
}

// ReadMultiset reads r into a multiset counting repeated lines.
func ReadMultiset(r io.Reader) (domain.Multiset, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return domain.Multiset{}, err
	}
	return domain.NewMultiset(lines...), nil
}
