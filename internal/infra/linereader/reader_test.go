package linereader

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/setop/internal/domain"
)

func TestReadLines(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"unix", "foo\nbar\nbaz\n", []string{"foo", "bar", "baz"}},
		{"no trailing newline", "foo\nbar", []string{"foo", "bar"}},
		{"windows", "AAA\r\nBBB\r\nCCC\r\n", []string{"AAA", "BBB", "CCC"}},
		{"mixed", "a\r\nb\nc", []string{"a", "b", "c"}},
		{"interior empty lines dropped", "a\n\n\nb\n\r\n", []string{"a", "b"}},
		{"empty input", "", nil},
		{"only newline", "\n", nil},
		{"lone CR kept inside line", "a\rb\n", []string{"a\rb"}},
		{"repeated lines kept", "x\nx\n", []string{"x", "x"}},
		{"leading spaces kept", "  x \n", []string{"  x "}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(c.input))
			if err != nil {
				t.Fatalf("ReadLines: %v", err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Fatalf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadLines_LongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20)
	got, err := ReadLines(strings.NewReader(long + "\nshort\n"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(got) != 2 || len(got[0]) != 1<<20 || got[1] != "short" {
		t.Fatalf("unexpected result: %d lines", len(got))
	}
}

func TestReadLines_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ReadLines(iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
	if !domain.IsKind(err, domain.KindIO) {
		t.Fatalf("expected KindIO, got %v", err)
	}
}

func TestReadSet(t *testing.T) {
	s, err := ReadSet(strings.NewReader("b\na\nb\n\n"))
	if err != nil {
		t.Fatalf("ReadSet: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, s.Elements()); diff != "" {
		t.Fatalf("set mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMultiset(t *testing.T) {
	m, err := ReadMultiset(strings.NewReader("a\na\nb\nb\nb\nc\n"))
	if err != nil {
		t.Fatalf("ReadMultiset: %v", err)
	}
	if m.Count("a") != 2 || m.Count("b") != 3 || m.Count("c") != 1 {
		t.Fatalf("unexpected counts: a=%d b=%d c=%d", m.Count("a"), m.Count("b"), m.Count("c"))
	}
	if m.Count("") != 0 {
		t.Fatalf("empty line must never be counted")
	}
}
