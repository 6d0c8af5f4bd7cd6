package fsource

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/setop/internal/domain"
)

func TestOpen_Stdin(t *testing.T) {
	o := NewOpener(WithStdin(strings.NewReader("spam\nham\n")))

	rc, err := o.Open("-")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	b, _ := io.ReadAll(rc)
	if err := rc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if string(b) != "spam\nham\n" {
		t.Fatalf("unexpected stdin content %q", string(b))
	}
}

func TestOpen_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(p, []byte("foo\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	o := NewOpener(WithLogger(l))

	rc, err := o.Open(p)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	b, _ := io.ReadAll(rc)
	if string(b) != "foo\r\n" {
		t.Fatalf("expected raw bytes, got %q", string(b))
	}
	if !strings.Contains(logs.String(), `"size":"5 B"`) {
		t.Fatalf("expected humanized size in logs, got %s", logs.String())
	}
}

func TestOpen_Missing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.txt")
	_, err := NewOpener().Open(p)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestOpen_Directory(t *testing.T) {
	_, err := NewOpener().Open(t.TempDir())
	if !domain.IsKind(err, domain.KindIO) {
		t.Fatalf("expected KindIO, got %v", err)
	}
	if !errors.Is(err, domain.ErrIO) {
		t.Fatalf("expected ErrIO in chain, got %v", err)
	}
}
