package configfinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/setop/internal/domain"
)

func TestFindConfig_FindsFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "proj")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	want := filepath.Join(root, DefaultConfigFile)
	if err := os.WriteFile(want, []byte("setop:\n  multiset: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := NewFinder().FindConfig(nested)
	if err != nil {
		t.Fatalf("FindConfig returned error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got=%s", want, got)
	}
}

func TestFindConfig_FromFilePath(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, DefaultConfigFile)
	if err := os.WriteFile(want, []byte("setop: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	input := filepath.Join(root, "lines.txt")
	if err := os.WriteFile(input, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	got, err := NewFinder().FindConfig(input)
	if err != nil {
		t.Fatalf("FindConfig returned error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got=%s", want, got)
	}
}

func TestFindConfig_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := &Finder{ConfigFile: ".setop-test-does-not-exist.yaml"}
	_, err := f.FindConfig(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindConfig_EmptyStart(t *testing.T) {
	_, err := NewFinder().FindConfig("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
