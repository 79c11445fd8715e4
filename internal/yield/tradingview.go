package yield

import "context"

// TradingView is a placeholder slot in the source order. The TradingView
// feed needs an authenticated session, so this source reports no data
// and the chain moves on.
type TradingView struct{}

func (TradingView) Name() string { return "tradingview" }

func (TradingView) Fetch(context.Context) (float64, error) { return 0, ErrNoData }
