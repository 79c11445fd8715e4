package updater

import (
    "context"
    "errors"
    "fmt"
    "path/filepath"
    "testing"
    "time"

    "github.com/rs/zerolog"

    "nikkeitracker/internal/history"
    "nikkeitracker/internal/metrics"
    "nikkeitracker/internal/quote"
)

var testFundamentals = metrics.Fundamentals{EPS: 2500, BPS: 27500, Dividend: 900}

type fakeQuotes struct {
    bars  []quote.Daily
    err   error
    calls int
}

func (f *fakeQuotes) Name() string { return "fake" }
func (f *fakeQuotes) History(context.Context, string, int) ([]quote.Daily, error) {
    f.calls++
    return f.bars, f.err
}

type fakeYield struct {
    value float64
    calls int
}

func (f *fakeYield) Fetch(context.Context) float64 { f.calls++; return f.value }

type failingStore struct{}

func (failingStore) Load() history.History        { return history.History{} }
func (failingStore) Save(history.History) error   { return errors.New("disk full") }

// wednesday clock: 2025-06-11 is a Wednesday
func wednesday() time.Time { return time.Date(2025, 6, 11, 18, 30, 0, 0, time.Local) }

func barsFor(close float64, volume int64) []quote.Daily {
    jst := time.FixedZone("JST", 9*3600)
    return []quote.Daily{
        {Date: time.Date(2025, 6, 10, 15, 0, 0, 0, jst), Close: 39100, Volume: 1_000_000_000},
        {Date: time.Date(2025, 6, 11, 15, 0, 0, 0, jst), Close: close, Volume: volume},
    }
}

func newTestUpdater(t *testing.T, quotes *fakeQuotes, yields *fakeYield) (*Updater, *history.Store) {
    t.Helper()
    store := history.NewStore(filepath.Join(t.TempDir(), "data", "history.json"), zerolog.Nop())
    u := New(Config{Ticker: "^N225", Fundamentals: testFundamentals}, quotes, yields, store, zerolog.Nop())
    u.Clock = wednesday
    return u, store
}

func TestRun_AppendsEntryWithMetricsAndChange(t *testing.T) {
    quotes := &fakeQuotes{bars: barsFor(40000.0, 1_234_000_000)}
    yields := &fakeYield{value: 1.485}
    u, store := newTestUpdater(t, quotes, yields)

    if err := store.Save(history.History{{Date: "2025-06-10", Price: 39500}}); err != nil {
        t.Fatal(err)
    }

    out, err := u.Run(t.Context())
    if err != nil || out != Updated {
        t.Fatalf("want Updated, got %v err=%v", out, err)
    }

    h := store.Load()
    if len(h) != 2 {
        t.Fatalf("want 2 entries, got %d", len(h))
    }
    e := h[0]
    if e.Date != "2025-06-11" {
        t.Fatalf("date: %s", e.Date)
    }
    if e.Price != 40000 || e.Volume != 1234 || e.BondYield != 1.485 {
        t.Fatalf("unexpected entry: %+v", e)
    }
    if e.Change != 500 {
        t.Fatalf("change: want 500, got %v", e.Change)
    }
    if e.PER != 16.0 || e.PBR != 1.45 || e.YieldRate != 6.25 || e.DividendYield != 2.25 {
        t.Fatalf("unexpected metrics: %+v", e)
    }
    if e.EPS != 2500 || e.BPS != 27500 {
        t.Fatalf("fundamentals not recorded: %+v", e)
    }
}

func TestRun_EmptyHistory_ChangeIsZero(t *testing.T) {
    u, store := newTestUpdater(t, &fakeQuotes{bars: barsFor(40000.0, 0)}, &fakeYield{value: 1.5})

    out, err := u.Run(t.Context())
    if err != nil || out != Updated {
        t.Fatalf("want Updated, got %v err=%v", out, err)
    }
    h := store.Load()
    if len(h) != 1 || h[0].Change != 0 {
        t.Fatalf("want single entry with zero change: %+v", h)
    }
}

func TestRun_SecondRunSameDayIsNoOp(t *testing.T) {
    quotes := &fakeQuotes{bars: barsFor(40000.0, 1_234_000_000)}
    u, store := newTestUpdater(t, quotes, &fakeYield{value: 1.485})

    if out, err := u.Run(t.Context()); err != nil || out != Updated {
        t.Fatalf("first run: %v err=%v", out, err)
    }
    first := store.Load()

    out, err := u.Run(t.Context())
    if err != nil || out != SkippedAlreadyUpdated {
        t.Fatalf("second run: want SkippedAlreadyUpdated, got %v err=%v", out, err)
    }
    second := store.Load()
    if len(first) != len(second) || first[0] != second[0] {
        t.Fatalf("store mutated by second run: %+v vs %+v", first, second)
    }
    if quotes.calls != 1 {
        t.Fatalf("quote provider called %d times, want 1", quotes.calls)
    }
}

func TestRun_Weekend_NoNetworkNoMutation(t *testing.T) {
    quotes := &fakeQuotes{bars: barsFor(40000.0, 0)}
    yields := &fakeYield{value: 1.5}
    u, store := newTestUpdater(t, quotes, yields)
    u.Clock = func() time.Time { return time.Date(2025, 6, 14, 10, 0, 0, 0, time.Local) } // Saturday

    out, err := u.Run(t.Context())
    if err != nil || out != SkippedNonBusinessDay {
        t.Fatalf("want SkippedNonBusinessDay, got %v err=%v", out, err)
    }
    if quotes.calls != 0 || yields.calls != 0 {
        t.Fatalf("collaborators called on weekend: quotes=%d yields=%d", quotes.calls, yields.calls)
    }
    if h := store.Load(); len(h) != 0 {
        t.Fatalf("store mutated on weekend: %+v", h)
    }
}

func TestRun_QuoteUnavailable_CleanStop(t *testing.T) {
    quotes := &fakeQuotes{err: errors.New("connection reset")}
    yields := &fakeYield{value: 1.5}
    u, store := newTestUpdater(t, quotes, yields)

    out, err := u.Run(t.Context())
    if err != nil || out != SkippedQuoteUnavailable {
        t.Fatalf("want SkippedQuoteUnavailable, got %v err=%v", out, err)
    }
    if yields.calls != 0 {
        t.Fatalf("yield fetched despite missing quote")
    }
    if h := store.Load(); len(h) != 0 {
        t.Fatalf("store mutated: %+v", h)
    }
}

func TestRun_RetentionBoundHolds(t *testing.T) {
    u, store := newTestUpdater(t, &fakeQuotes{bars: barsFor(40000.0, 0)}, &fakeYield{value: 1.5})

    var seed history.History
    for i := 0; i < 60; i++ {
        seed = append(seed, history.Entry{Date: fmt.Sprintf("2025-03-%02d", i), Price: 39000})
    }
    if err := store.Save(seed); err != nil {
        t.Fatal(err)
    }

    out, err := u.Run(t.Context())
    if err != nil || out != Updated {
        t.Fatalf("want Updated, got %v err=%v", out, err)
    }
    h := store.Load()
    if len(h) != 60 {
        t.Fatalf("retention violated: %d entries", len(h))
    }
    if h[0].Date != "2025-06-11" {
        t.Fatalf("newest not at head: %s", h[0].Date)
    }
    if h.Has("2025-03-59") {
        t.Fatalf("oldest seed entry should have been discarded")
    }
}

func TestRun_PersistFailure_SurfacesErrorWithoutPanic(t *testing.T) {
    u := New(Config{Ticker: "^N225", Fundamentals: testFundamentals},
        &fakeQuotes{bars: barsFor(40000.0, 0)}, &fakeYield{value: 1.5}, failingStore{}, zerolog.Nop())
    u.Clock = wednesday

    out, err := u.Run(t.Context())
    if err == nil {
        t.Fatalf("want persist error")
    }
    if out != Updated {
        t.Fatalf("outcome: want Updated, got %v", out)
    }
}

func TestOutcome_Strings(t *testing.T) {
    cases := map[Outcome]string{
        Updated:                 "updated",
        SkippedNonBusinessDay:   "skipped: non-business day",
        SkippedAlreadyUpdated:   "skipped: already updated today",
        SkippedQuoteUnavailable: "skipped: quote unavailable",
    }
    for o, want := range cases {
        if o.String() != want {
            t.Fatalf("outcome %d: want %q, got %q", o, want, o.String())
        }
    }
}
