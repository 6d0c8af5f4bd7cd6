package domain

// Config holds run defaults that flags may override.
type Config struct {
	Mode      Mode
	Delimiter string
	Newlines  Newline
	Log       LogConfig
}

type LogConfig struct {
	Debug bool
	File  string
}

// DefaultConfig provides the built-in defaults used when no config file is found.
func DefaultConfig() Config {
	return Config{
		Mode:      ModeSet,
		Delimiter: "\t",
		Newlines:  DefaultNewline(),
	}
}
