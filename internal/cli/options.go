package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/setop/internal/domain"
	"github.com/aalvaropc/setop/internal/infra/config"
	"github.com/aalvaropc/setop/internal/infra/configfinder"
	"github.com/aalvaropc/setop/internal/ports"
)

const configEnv = "SETOP_CONFIG"

type options struct {
	union        bool
	intersection bool
	difference   bool
	product      bool
	sum          bool

	multiset   bool
	delimiter  string
	newlines   string
	configPath string
	debug      bool
}

type settings struct {
	op      domain.Operation
	cfg     domain.Config
	cfgPath string
}

// resolve merges flags over the config file over built-in defaults. Usage
// errors are reported before the config file is read.
func (o options) resolve(cmd *cobra.Command) (settings, error) {
	op, err := o.operation()
	if err != nil {
		return settings{}, err
	}

	var nl domain.Newline
	if cmd.Flags().Changed("newlines") {
		nl, err = domain.ParseNewline(o.newlines)
		if err != nil {
			return settings{}, domain.UsageError("cli.newlines", err)
		}
	}

	path, err := configPath(o.configPath, configfinder.NewFinder())
	if err != nil {
		return settings{}, err
	}
	cfg, err := loadConfig(path, config.NewLoader())
	if err != nil {
		return settings{}, err
	}

	if o.multiset {
		cfg.Mode = domain.ModeMultiset
	}
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiter = o.delimiter
	}
	if nl != "" {
		cfg.Newlines = nl
	}
	if o.debug {
		cfg.Log.Debug = true
	}

	if err := domain.CheckOperation(op, cfg.Mode); err != nil {
		return settings{}, err
	}
	return settings{op: op, cfg: cfg, cfgPath: path}, nil
}

// operation maps the operation flags to exactly one Operation. Cobra's flag
// groups already reject zero or several before RunE.
func (o options) operation() (domain.Operation, error) {
	flags := []struct {
		op  domain.Operation
		set bool
	}{
		{domain.OpUnion, o.union},
		{domain.OpIntersection, o.intersection},
		{domain.OpDifference, o.difference},
		{domain.OpProduct, o.product},
		{domain.OpSum, o.sum},
	}

	var picked []domain.Operation
	for _, f := range flags {
		if f.set {
			picked = append(picked, f.op)
		}
	}
	switch len(picked) {
	case 1:
		return picked[0], nil
	case 0:
		return "", domain.UsageError("cli.operation", errors.New("one of -u, -i, -d, -p, -s is required"))
	}
	return "", domain.UsageError("cli.operation", fmt.Errorf("only one of -u, -i, -d, -p, -s may be given (got %v)", picked))
}

// configPath picks the config file: explicit flag, then $SETOP_CONFIG, then
// the nearest .setop.yaml above the working directory. An empty result means
// built-in defaults.
func configPath(flag string, locator ports.ConfigLocator) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(configEnv); env != "" {
		return env, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", nil
	}
	p, err := locator.FindConfig(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", nil
		}
		return "", err
	}
	return p, nil
}

func loadConfig(path string, loader ports.ConfigLoader) (domain.Config, error) {
	if path == "" {
		return domain.DefaultConfig(), nil
	}
	return loader.LoadConfig(path)
}
