package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/setop/internal/domain"
	"github.com/aalvaropc/setop/internal/ports"
)

const DefaultConfigFile = ".setop.yaml"

// Finder locates the nearest setop config file by searching upward.
type Finder struct {
	ConfigFile string // defaults to ".setop.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: DefaultConfigFile}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindConfig(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.findconfig",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.findconfig",
			Kind: domain.KindIO,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if st, err := os.Stat(cfgPath); err == nil && !st.IsDir() {
			return cfgPath, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "configfinder.findconfig",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
