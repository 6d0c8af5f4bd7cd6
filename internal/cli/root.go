package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/setop/internal/buildinfo"
	"github.com/aalvaropc/setop/internal/domain"
	"github.com/aalvaropc/setop/internal/infra/fsource"
	"github.com/aalvaropc/setop/internal/infra/linewriter"
	"github.com/aalvaropc/setop/internal/infra/logger"
	"github.com/aalvaropc/setop/internal/usecase"
)

var operationFlags = []string{"union", "intersection", "difference", "product", "sum"}

func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	code := exitCode(err)
	printError(stderr, err)
	if code == exitUsage {
		_, _ = io.WriteString(stderr, cmd.UsageString())
	}
	return code
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "setop [flags] [file ...]",
		Short: "Line-wise set operations on files",
		Long: `Make line-wise union, intersection, difference, sum, or Cartesian product
of files and print it to stdout. Use "-" to read standard input.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, files []string) error {
			settings, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			cleanup, err := logger.Setup(logger.Config{
				Out:   cmd.ErrOrStderr(),
				File:  settings.cfg.Log.File,
				Debug: settings.cfg.Log.Debug,
			})
			if err != nil {
				return &domain.OpError{Op: "logger.setup", Kind: domain.KindIO, Path: settings.cfg.Log.File, Err: err}
			}
			defer func() { _ = cleanup() }()

			log := logger.L()
			if settings.cfgPath != "" {
				log.Debug("config.loaded", "path", settings.cfgPath)
			}
			if p := logger.Path(); p != "" {
				log.Info("logger.file", "path", p, "debug", settings.cfg.Log.Debug)
			}

			opener := fsource.NewOpener(fsource.WithStdin(stdin), fsource.WithLogger(log))
			uc := usecase.NewCombine(opener, usecase.WithLogger(log))

			lines, err := uc.Execute(cmd.Context(), usecase.CombineRequest{
				Operation: settings.op,
				Mode:      settings.cfg.Mode,
				Delimiter: settings.cfg.Delimiter,
				Inputs:    files,
			})
			if err != nil {
				return err
			}

			w := linewriter.New(cmd.OutOrStdout(), settings.cfg.Newlines)
			if err := w.WriteAll(lines); err != nil {
				return err
			}
			log.Debug("combine.done", "lines", w.Lines())
			return nil
		},
	}

	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	f := cmd.Flags()
	f.SortFlags = false
	f.BoolVarP(&opts.union, "union", "u", false, "lines(file1) UNION lines(file2) ...")
	f.BoolVarP(&opts.intersection, "intersection", "i", false, "lines(file1) INTERSECTION lines(file2) ...")
	f.BoolVarP(&opts.difference, "difference", "d", false, "lines(file1) - lines(file2) - lines(file3) ...")
	f.BoolVarP(&opts.product, "product", "p", false, "lines(file1) x lines(file2) x lines(file3) ...")
	f.BoolVarP(&opts.sum, "sum", "s", false, "lines(file1) + lines(file2) + ... (multiset only)")
	f.BoolVarP(&opts.multiset, "multiset", "m", false, "treat files as multisets of lines (default: sets)")
	f.StringVarP(&opts.delimiter, "delimiter", "D", "\t", "field delimiter in product mode")
	f.StringVarP(&opts.newlines, "newlines", "n", "", "line separator: unix = LF, windows = CR+LF (default by OS: "+string(domain.DefaultNewline())+")")
	f.StringVar(&opts.configPath, "config", "", "config file (default: $SETOP_CONFIG or nearest .setop.yaml)")
	f.BoolVar(&opts.debug, "debug", false, "write debug logs to stderr")

	cmd.MarkFlagsMutuallyExclusive(operationFlags...)
	cmd.MarkFlagsOneRequired(operationFlags...)
	return cmd
}
