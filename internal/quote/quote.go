package quote

import (
    "context"
    "fmt"
    "time"

    "github.com/shopspring/decimal"
)

// Daily is one day's bar as returned by a provider, in chronological order.
type Daily struct {
    Date   time.Time
    Close  float64
    Volume int64
}

type Provider interface {
    Name() string
    History(ctx context.Context, symbol string, days int) ([]Daily, error)
}

// Snapshot is the normalized latest-close view consumed by the updater.
type Snapshot struct {
    Date   string  // YYYY-MM-DD
    Price  float64 // closing value, 2 decimal places
    Volume int64   // millions of units, truncated
}

// LatestSnapshot requests a short trailing window from p and normalizes the
// chronologically last bar. An empty window or provider error means no
// snapshot is available today.
func LatestSnapshot(ctx context.Context, p Provider, symbol string, days int) (Snapshot, error) {
    bars, err := p.History(ctx, symbol, days)
    if err != nil {
        return Snapshot{}, fmt.Errorf("%s history: %w", p.Name(), err)
    }
    if len(bars) == 0 {
        return Snapshot{}, fmt.Errorf("%s history: no bars for %s", p.Name(), symbol)
    }
    last := bars[len(bars)-1]
    return Snapshot{
        Date:   last.Date.Format("2006-01-02"),
        Price:  decimal.NewFromFloat(last.Close).Round(2).InexactFloat64(),
        Volume: last.Volume / 1_000_000,
    }, nil
}
