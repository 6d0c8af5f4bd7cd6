package ports

// ConfigLocator finds a setop config file starting from an arbitrary directory.
type ConfigLocator interface {
	FindConfig(startDir string) (string, error)
}
