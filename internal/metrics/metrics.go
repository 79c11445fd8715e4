package metrics

import "github.com/shopspring/decimal"

// Fundamentals are the fixed per-share constants the valuation is derived from.
type Fundamentals struct {
    EPS      float64
    BPS      float64
    Dividend float64
}

// Valuation holds the derived metrics for a single closing price.
type Valuation struct {
    PER           float64
    PBR           float64
    EPS           float64
    BPS           float64
    YieldRate     float64
    DividendYield float64
}

var hundred = decimal.NewFromInt(100)

// Compute derives the valuation metrics from price and fundamentals.
// All results are rounded to 2 decimal places; EPS/BPS pass through.
// A zero price or EPS is a caller bug and panics on division.
func Compute(price float64, f Fundamentals) Valuation {
    p := decimal.NewFromFloat(price)
    eps := decimal.NewFromFloat(f.EPS)
    bps := decimal.NewFromFloat(f.BPS)
    div := decimal.NewFromFloat(f.Dividend)

    per := p.Div(eps)
    return Valuation{
        PER:           per.Round(2).InexactFloat64(),
        PBR:           p.Div(bps).Round(2).InexactFloat64(),
        EPS:           f.EPS,
        BPS:           f.BPS,
        YieldRate:     hundred.Div(per).Round(2).InexactFloat64(),
        DividendYield: div.Div(p).Mul(hundred).Round(2).InexactFloat64(),
    }
}

// Round2 rounds v to 2 decimal places using half-away-from-zero rounding.
func Round2(v float64) float64 {
    return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
