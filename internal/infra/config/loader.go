package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/setop/internal/domain"
	"github.com/aalvaropc/setop/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.ConfigLoader = (*Loader)(nil)

// LoadConfig reads a YAML config file and applies it on top of the defaults.
func (l *Loader) LoadConfig(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
