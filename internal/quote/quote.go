// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quote runs the full pipeline: scan, match, resolve, default and
// calculate. An Engine holds only read-only configuration and is safe for
// concurrent use.
package quote

import (
	"go.uber.org/zap"

	"github.com/pdiddy/paintquote/internal/calc"
	"github.com/pdiddy/paintquote/internal/match"
	"github.com/pdiddy/paintquote/internal/resolve"
	"github.com/pdiddy/paintquote/internal/scan"
	"github.com/pdiddy/paintquote/pkg/types"
)

// Engine parses and prices job descriptions with a fixed configuration.
type Engine struct {
	cfg      types.EngineConfig
	matchers []match.Matcher
}

// NewEngine builds an engine with the standard matcher set for cfg.
func NewEngine(cfg types.EngineConfig) *Engine {
	return &Engine{cfg: cfg, matchers: match.All(cfg)}
}

// NewEngineWithMatchers builds an engine with an explicit matcher list.
func NewEngineWithMatchers(cfg types.EngineConfig, matchers []match.Matcher) *Engine {
	return &Engine{cfg: cfg, matchers: matchers}
}

// Option adjusts a single ParseAndPrice call.
type Option func(*options)

type options struct {
	areaOverride *float64
}

// WithAreaOverride supplies the paintable wall area directly, bypassing the
// size drivers found in the text.
func WithAreaOverride(sqft float64) Option {
	return func(o *options) { o.areaOverride = &sqft }
}

// ParseAndPrice runs the pipeline on text with cfg.
func ParseAndPrice(text string, cfg types.EngineConfig, opts ...Option) (types.Result, error) {
	return NewEngine(cfg).ParseAndPrice(text, opts...)
}

// Parse extracts and resolves the specification without pricing it.
// Resolver warnings are returned alongside.
func (e *Engine) Parse(text string, opts ...Option) (types.QuoteSpecification, []types.Warning, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	segments := scan.Segments(text)
	if len(segments) == 0 {
		return types.QuoteSpecification{}, nil, types.EmptyInputError{}
	}

	candidates := match.Run(e.matchers, segments)
	res := resolve.Resolve(segments, candidates)
	res.Spec.AreaOverride = o.areaOverride
	res.ApplyDefaults(e.cfg)

	zap.L().Debug("quote: parsed",
		zap.Int("segments", len(segments)),
		zap.Int("candidates", len(candidates)),
		zap.Int("warnings", len(res.Warnings)),
	)
	return res.Spec, res.Warnings, nil
}

// ParseAndPrice returns the specification, the breakdown and every warning:
// resolver warnings first, then calculation warnings.
func (e *Engine) ParseAndPrice(text string, opts ...Option) (types.Result, error) {
	spec, warnings, err := e.Parse(text, opts...)
	if err != nil {
		return types.Result{}, err
	}

	bd, err := calc.Calculate(spec, e.cfg)
	if err != nil {
		return types.Result{Specification: spec, Warnings: nonNil(warnings)}, err
	}

	all := make([]types.Warning, 0, len(warnings)+len(bd.Warnings))
	all = append(all, warnings...)
	all = append(all, bd.Warnings...)
	return types.Result{
		Specification: spec,
		Breakdown:     bd,
		Warnings:      all,
	}, nil
}

func nonNil(w []types.Warning) []types.Warning {
	if w == nil {
		return []types.Warning{}
	}
	return w
}
