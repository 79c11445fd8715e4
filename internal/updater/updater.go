package updater

import (
    "context"
    "time"

    "github.com/rs/zerolog"

    "nikkeitracker/internal/history"
    "nikkeitracker/internal/metrics"
    "nikkeitracker/internal/quote"
)

// Outcome describes how a run ended. Every outcome is a clean exit;
// skips are expected conditions, not failures.
type Outcome int

const (
    Updated Outcome = iota
    SkippedNonBusinessDay
    SkippedAlreadyUpdated
    SkippedQuoteUnavailable
)

func (o Outcome) String() string {
    switch o {
    case Updated:
        return "updated"
    case SkippedNonBusinessDay:
        return "skipped: non-business day"
    case SkippedAlreadyUpdated:
        return "skipped: already updated today"
    case SkippedQuoteUnavailable:
        return "skipped: quote unavailable"
    }
    return "unknown"
}

// YieldFetcher produces a bond yield figure. It never fails.
type YieldFetcher interface {
    Fetch(ctx context.Context) float64
}

// Store is the record store for the history document.
type Store interface {
    Load() history.History
    Save(history.History) error
}

type Config struct {
    Ticker       string
    RangeDays    int
    Retention    int
    Fundamentals metrics.Fundamentals
}

// Updater sequences one daily run: business-day gate, idempotence gate,
// quote fetch, yield fetch, metrics, append with retention, persist.
type Updater struct {
    cfg    Config
    quotes quote.Provider
    yields YieldFetcher
    store  Store
    log    zerolog.Logger

    // Clock reports the current wall time; replaceable in tests.
    Clock func() time.Time
}

func New(cfg Config, quotes quote.Provider, yields YieldFetcher, store Store, log zerolog.Logger) *Updater {
    if cfg.RangeDays <= 0 { cfg.RangeDays = 5 }
    if cfg.Retention <= 0 { cfg.Retention = 60 }
    return &Updater{
        cfg:    cfg,
        quotes: quotes,
        yields: yields,
        store:  store,
        log:    log.With().Str("component", "updater").Logger(),
        Clock:  time.Now,
    }
}

// Run performs one daily update. The returned error is non-nil only when
// persisting the updated history failed; every other failure mode is an
// expected skip. Repeated runs on the same calendar day are no-ops.
func (u *Updater) Run(ctx context.Context) (Outcome, error) {
    now := u.Clock()
    u.log.Info().Str("ticker", u.cfg.Ticker).Msg("daily update starting")

    if !isBusinessDay(now) {
        u.log.Info().Str("weekday", now.Weekday().String()).Msg("not a business day, nothing to do")
        return SkippedNonBusinessDay, nil
    }

    h := u.store.Load()
    today := now.Format("2006-01-02")
    if h.Has(today) {
        u.log.Info().Str("date", today).Msg("already recorded today")
        return SkippedAlreadyUpdated, nil
    }

    u.log.Info().Msg("fetching market data")
    snap, err := quote.LatestSnapshot(ctx, u.quotes, u.cfg.Ticker, u.cfg.RangeDays)
    if err != nil {
        u.log.Warn().Err(err).Msg("quote unavailable, no update today")
        return SkippedQuoteUnavailable, nil
    }

    u.log.Info().Msg("fetching bond yield")
    bond := u.yields.Fetch(ctx)

    v := metrics.Compute(snap.Price, u.cfg.Fundamentals)

    change := 0.0
    if prev, ok := h.Latest(); ok {
        change = metrics.Round2(snap.Price - prev.Price)
    }

    entry := history.Entry{
        Date:          today,
        Price:         snap.Price,
        Volume:        snap.Volume,
        BondYield:     bond,
        PER:           v.PER,
        PBR:           v.PBR,
        EPS:           v.EPS,
        BPS:           v.BPS,
        YieldRate:     v.YieldRate,
        DividendYield: v.DividendYield,
        Change:        change,
    }
    h = h.Prepend(entry, u.cfg.Retention)

    if err := u.store.Save(h); err != nil {
        u.log.Error().Err(err).Msg("could not persist history, update lost")
        return Updated, err
    }

    u.log.Info().
        Str("quote_date", snap.Date).
        Float64("price", entry.Price).
        Float64("change", entry.Change).
        Float64("per", entry.PER).
        Float64("pbr", entry.PBR).
        Msg("update complete")
    return Updated, nil
}

// Business day means a weekday in the process's local calendar.
// Public holidays are not consulted.
func isBusinessDay(t time.Time) bool {
    wd := t.Weekday()
    return wd != time.Saturday && wd != time.Sunday
}
