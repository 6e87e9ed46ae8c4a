package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/mathobjects/internal/core/observability/log"
	"github.com/zeusync/mathobjects/pkg/vector"
)

// Runner evaluates scenarios. It holds no per-run state and may be
// shared between goroutines.
type Runner struct {
	logger log.Log
}

func NewRunner(logger log.Log) *Runner {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Runner{logger: logger}
}

type env map[string]vector.Vector2D

// Run evaluates every step of s in order. ctx is checked before each step.
// The first failing step stops the run and is returned as a *StepError.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	report := &Report{
		RunID: uuid.New(),
		Name:  s.Name,
	}
	logger := r.logger.With(log.String("scenario", s.Name), log.String("run_id", report.RunID.String()))
	logger.Debug("scenario started", log.Int("vectors", len(s.Vectors)), log.Int("steps", len(s.Steps)))
	started := time.Now()

	vars := make(env, len(s.Vectors))
	for name, def := range s.Vectors {
		v, _ := def.Build()
		vars[name] = v
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := vars.apply(step)
		if err != nil {
			stepErr := &StepError{Index: i, Op: step.Op, Err: err}
			logger.Warn("step failed", log.Int("index", i), log.String("op", step.Op), log.Error(err))
			return nil, stepErr
		}
		res.Index = i
		report.Results = append(report.Results, res)

		fields := []log.Field{log.Int("index", i), log.String("op", step.Op)}
		if res.Kind == KindVector {
			fields = append(fields, log.Stringer("vector", res.Vector), log.Bool("degenerate", res.Vector.IsDegenerate()))
		} else {
			fields = append(fields, log.Float64("scalar", res.Scalar))
		}
		logger.Debug("step evaluated", fields...)
	}

	report.Digest = report.digest()
	logger.Info("scenario finished",
		log.Int("results", len(report.Results)),
		log.String("digest", report.DigestHex()),
		log.Duration("took", time.Since(started)),
	)
	return report, nil
}

func (e env) lookup(name string) (vector.Vector2D, error) {
	v, ok := e[name]
	if !ok {
		return vector.Vector2D{}, fmt.Errorf("%w: %q", ErrUnknownVector, name)
	}
	return v, nil
}

func (e env) args(step Step, n int) ([]vector.Vector2D, error) {
	if len(step.Args) != n {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, step.Op, n, len(step.Args))
	}
	out := make([]vector.Vector2D, n)
	for i, name := range step.Args {
		v, err := e.lookup(name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e env) apply(step Step) (Result, error) {
	res := Result{Op: step.Op, Args: step.Args, Into: step.Into}

	switch step.Op {
	case "add", "sub", "dot":
		vs, err := e.args(step, 2)
		if err != nil {
			return res, err
		}
		switch step.Op {
		case "add":
			res.setVector(vs[0].Add(vs[1]))
		case "sub":
			res.setVector(vs[0].Sub(vs[1]))
		default:
			res.setScalar(vs[0].Dot(vs[1]))
		}

	case "neg", "normalized", "x", "y", "magnitude":
		vs, err := e.args(step, 1)
		if err != nil {
			return res, err
		}
		v := vs[0]
		switch step.Op {
		case "neg":
			res.setVector(v.Neg())
		case "normalized":
			res.setVector(v.Normalized())
		case "x":
			res.setScalar(v.X())
		case "y":
			res.setScalar(v.Y())
		default:
			res.setScalar(v.Magnitude())
		}

	case "normalize":
		vs, err := e.args(step, 1)
		if err != nil {
			return res, err
		}
		v := vs[0]
		v.NormalizeInPlace()
		e[step.Args[0]] = v
		res.setVector(v)

	case "scale", "div":
		vs, err := e.args(step, 1)
		if err != nil {
			return res, err
		}
		if step.K == nil {
			return res, fmt.Errorf("%w: %s needs k", ErrMissingParam, step.Op)
		}
		if step.Op == "scale" {
			res.setVector(vs[0].Scale(*step.K))
		} else {
			res.setVector(vs[0].Div(*step.K))
		}

	case "component":
		vs, err := e.args(step, 1)
		if err != nil {
			return res, err
		}
		if step.Index == nil {
			return res, fmt.Errorf("%w: component needs index", ErrMissingParam)
		}
		c, err := vs[0].Component(*step.Index)
		if err != nil {
			return res, err
		}
		res.setScalar(c)

	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}

	if step.Into != "" {
		if res.Kind != KindVector {
			return res, fmt.Errorf("%w: %s into %q", ErrScalarResult, step.Op, step.Into)
		}
		e[step.Into] = res.Vector
	}
	return res, nil
}
