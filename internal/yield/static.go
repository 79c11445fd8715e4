package yield

import "context"

// Static always returns a fixed figure. It sits last in the source order
// so a number is produced even when every live source is down.
type Static struct {
    Value float64
}

func (Static) Name() string { return "static" }

func (s Static) Fetch(context.Context) (float64, error) { return s.Value, nil }
