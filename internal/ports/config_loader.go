package ports

import "github.com/aalvaropc/setop/internal/domain"

// ConfigLoader loads run defaults from a source (e.g., a YAML file).
type ConfigLoader interface {
	LoadConfig(path string) (domain.Config, error)
}
