package history

// Entry is one business day's snapshot of the index and its valuation.
// Field order matches the persisted document layout.
type Entry struct {
    Date          string  `json:"date"`
    Price         float64 `json:"price"`
    Volume        int64   `json:"volume"`
    BondYield     float64 `json:"bond_yield"`
    PER           float64 `json:"per"`
    PBR           float64 `json:"pbr"`
    EPS           float64 `json:"eps"`
    BPS           float64 `json:"bps"`
    YieldRate     float64 `json:"yield_rate"`
    DividendYield float64 `json:"dividend_yield"`
    Change        float64 `json:"change"`
}

// History is an ordered sequence of entries, newest first.
// Invariants: no two entries share a Date, length stays within the retention bound.
type History []Entry

// Has reports whether an entry for date (YYYY-MM-DD) is already recorded.
func (h History) Has(date string) bool {
    for _, e := range h {
        if e.Date == date { return true }
    }
    return false
}

// Latest returns the newest entry, if any.
func (h History) Latest() (Entry, bool) {
    if len(h) == 0 { return Entry{}, false }
    return h[0], true
}

// Prepend inserts e as the newest entry and trims the tail so at most
// keep entries remain. keep <= 0 disables trimming.
func (h History) Prepend(e Entry, keep int) History {
    out := make(History, 0, len(h)+1)
    out = append(out, e)
    out = append(out, h...)
    if keep > 0 && len(out) > keep {
        out = out[:keep]
    }
    return out
}
