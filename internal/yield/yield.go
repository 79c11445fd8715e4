package yield

import (
    "context"
    "errors"

    "github.com/rs/zerolog"
)

// ErrNoData signals a source that answered cleanly but has no figure to offer.
var ErrNoData = errors.New("yield: no data")

// Source is one strategy for obtaining the 10-year JGB yield.
type Source interface {
    Name() string
    Fetch(ctx context.Context) (float64, error)
}

// Chain tries sources in trust order and returns the first figure obtained.
// A failing or empty source is logged and skipped, never fatal. When every
// source comes up empty the configured fallback constant is returned, so
// Fetch always yields a number.
type Chain struct {
    sources  []Source
    fallback float64
    log      zerolog.Logger
}

func NewChain(log zerolog.Logger, fallback float64, sources ...Source) *Chain {
    return &Chain{
        sources:  sources,
        fallback: fallback,
        log:      log.With().Str("component", "yield").Logger(),
    }
}

func (c *Chain) Fetch(ctx context.Context) float64 {
    for _, s := range c.sources {
        v, err := s.Fetch(ctx)
        if err != nil {
            c.log.Warn().Err(err).Str("source", s.Name()).Msg("yield source unavailable")
            continue
        }
        c.log.Info().Str("source", s.Name()).Float64("yield", v).Msg("bond yield obtained")
        return v
    }
    c.log.Warn().Float64("fallback", c.fallback).Msg("all yield sources failed, using fallback")
    return c.fallback
}
