package yahoo

import (
	"time"

	"nikkeitracker/internal/quote"
)

const baseURL = "https://query1.finance.yahoo.com"

// chartResponse is the top-level container of the v8 chart endpoint.
type chartResponse struct {
	Chart chartData `json:"chart"`
}

type chartData struct {
	Result []chartResult `json:"result"`
	Error  *chartError   `json:"error"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartResult struct {
	Meta       chartMeta       `json:"meta"`
	Timestamp  []int64         `json:"timestamp"`
	Indicators chartIndicators `json:"indicators"`
}

type chartMeta struct {
	Currency  string `json:"currency"`
	Symbol    string `json:"symbol"`
	Timezone  string `json:"timezone"`
	Gmtoffset int    `json:"gmtoffset"`
}

type chartIndicators struct {
	Quote []chartQuote `json:"quote"`
}

// chartQuote arrays are index-aligned with Timestamp; missing observations
// come back as JSON nulls, hence the pointer elements.
type chartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// dailies flattens a chart result into chronological daily bars,
// skipping rows without a close. Dates are rendered in the exchange
// timezone reported by the chart meta.
func (r chartResult) dailies() []quote.Daily {
	loc := time.UTC
	if r.Meta.Gmtoffset != 0 || r.Meta.Timezone != "" {
		loc = time.FixedZone(r.Meta.Timezone, r.Meta.Gmtoffset)
	}

	var q chartQuote
	if len(r.Indicators.Quote) > 0 {
		q = r.Indicators.Quote[0]
	}

	out := make([]quote.Daily, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		if i >= len(q.Close) || q.Close[i] == nil {
			continue
		}
		var volume int64
		if i < len(q.Volume) && q.Volume[i] != nil {
			volume = *q.Volume[i]
		}
		out = append(out, quote.Daily{
			Date:   time.Unix(ts, 0).In(loc),
			Close:  *q.Close[i],
			Volume: volume,
		})
	}
	return out
}
