package usecase

import (
	"context"
	"errors"
	"io"
	"iter"
	"log/slog"

	"github.com/aalvaropc/setop/internal/domain"
	"github.com/aalvaropc/setop/internal/engine"
	"github.com/aalvaropc/setop/internal/infra/linereader"
	"github.com/aalvaropc/setop/internal/ports"
)

// CombineRequest is one invocation: an operation applied to inputs in order.
type CombineRequest struct {
	Operation domain.Operation
	Mode      domain.Mode
	Delimiter string
	Inputs    []string
}

type Combine struct {
	sources ports.SourceOpener
	log     *slog.Logger
}

type CombineOption func(*Combine)

func WithLogger(l *slog.Logger) CombineOption {
	return func(uc *Combine) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewCombine(so ports.SourceOpener, opts ...CombineOption) *Combine {
	uc := &Combine{
		sources: so,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute reads every input into memory, then combines them. Operation and
// mode are validated before any input is opened.
func (uc *Combine) Execute(ctx context.Context, req CombineRequest) (iter.Seq[string], error) {
	if err := domain.CheckOperation(req.Operation, req.Mode); err != nil {
		return nil, err
	}

	uc.log.Debug("combine.start",
		"op", string(req.Operation),
		"mode", string(req.Mode),
		"inputs", len(req.Inputs),
	)

	if req.Mode == domain.ModeMultiset {
		plan, err := engine.MultisetPlan(req.Operation, req.Delimiter)
		if err != nil {
			return nil, err
		}
		cs, err := readAll(ctx, uc, req.Inputs, linereader.ReadMultiset)
		if err != nil {
			return nil, err
		}
		return plan.Run(cs), nil
	}

	plan, err := engine.SetPlan(req.Operation, req.Delimiter)
	if err != nil {
		return nil, err
	}
	cs, err := readAll(ctx, uc, req.Inputs, linereader.ReadSet)
	if err != nil {
		return nil, err
	}
	return plan.Run(cs), nil
}

func readAll[C domain.Collection[C]](ctx context.Context, uc *Combine, inputs []string, read func(io.Reader) (C, error)) ([]C, error) {
	out := make([]C, 0, len(inputs))
	for _, name := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c, err := readOne(uc.sources, name, read)
		if err != nil {
			return nil, err
		}
		uc.log.Debug("input.read", "name", name, "elements", c.Len())
		out = append(out, c)
	}
	return out, nil
}

func readOne[C any](so ports.SourceOpener, name string, read func(io.Reader) (C, error)) (C, error) {
	var zero C

	rc, err := so.Open(name)
	if err != nil {
		return zero, err
	}
	defer func() { _ = rc.Close() }()

	c, err := read(rc)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = name
		}
		return zero, err
	}
	return c, nil
}
