package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/setop/internal/domain"
)

// MapConfig applies parsed values on top of the built-in defaults.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if y.Setop.Multiset != nil && *y.Setop.Multiset {
		cfg.Mode = domain.ModeMultiset
	}
	if y.Setop.Delimiter != nil {
		cfg.Delimiter = *y.Setop.Delimiter
	}
	if strings.TrimSpace(y.Setop.Newlines) != "" {
		nl, err := domain.ParseNewline(y.Setop.Newlines)
		if err != nil {
			return cfg, invalidField(path, "setop.newlines", err.Error())
		}
		cfg.Newlines = nl
	}
	if y.Setop.Log.Debug != nil {
		cfg.Log.Debug = *y.Setop.Log.Debug
	}
	cfg.Log.File = strings.TrimSpace(y.Setop.Log.File)

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
