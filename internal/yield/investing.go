package yield

import (
    "context"
    "fmt"
    "net/http"
    "time"

    "nikkeitracker/internal/httpx"
)

// browser-looking UA, the page refuses obvious bots
const investingUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Investing probes the Investing.com bond page. Real HTML extraction is
// deliberately not performed; a reachable page yields the configured
// placeholder figure, anything else is ErrNoData.
// TODO: parse the instrument price out of the page markup and drop Placeholder.
type Investing struct {
    URL         string
    Placeholder float64
    Timeout     time.Duration
    Client      *httpx.Client
}

func (i *Investing) Name() string { return "investing.com" }

func (i *Investing) Fetch(ctx context.Context) (float64, error) {
    timeout := i.Timeout
    if timeout <= 0 { timeout = 10 * time.Second }
    ctx, cancel := context.WithTimeout(ctx, timeout)
    defer cancel()

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.URL, http.NoBody)
    if err != nil { return 0, err }
    req.Header.Set("User-Agent", investingUserAgent)

    resp, err := i.Client.Do(ctx, req)
    if err != nil { return 0, err }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        return 0, fmt.Errorf("GET %s -> %d: %w", i.URL, resp.StatusCode, ErrNoData)
    }
    return i.Placeholder, nil
}
