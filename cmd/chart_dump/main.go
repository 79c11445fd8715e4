package main

import (
    "bytes"
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "io"
    "log"
    "net/http"
    "net/url"
    "os"
    "time"

    "nikkeitracker/internal/config"
)

// Debug helper: fetch the raw Yahoo chart payload for a ticker and
// pretty-print it, so field changes upstream can be inspected without
// touching the tracker itself.
func main() {
    var (
        ticker     string
        rangeArg   string
        interval   string
        outPath    string
        cfgPath    string
        timeoutSec int
    )
    flag.StringVar(&ticker, "ticker", "", "ticker symbol (default: configured index ticker)")
    flag.StringVar(&rangeArg, "range", "5d", "chart range (e.g. 5d, 1mo)")
    flag.StringVar(&interval, "interval", "1d", "bar interval")
    flag.StringVar(&outPath, "out", "", "output file path (default: stdout)")
    flag.StringVar(&cfgPath, "config", "", "path to config.json (optional)")
    flag.IntVar(&timeoutSec, "timeout", 20, "HTTP timeout seconds")
    flag.Parse()

    cfg, err := config.Load(cfgPath)
    if err != nil {
        log.Fatalf("config: %v", err)
    }
    if ticker == "" {
        ticker = cfg.Index.Ticker
    }

    hc := &http.Client{Timeout: time.Duration(timeoutSec) * time.Second}

    query := url.Values{}
    query.Set("range", rangeArg)
    query.Set("interval", interval)
    endpoint := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?%s", url.PathEscape(ticker), query.Encode())

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
    defer cancel()
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
    if err != nil {
        log.Fatalf("request: %v", err)
    }
    req.Header.Set("User-Agent", "nikkei-tracker/1.0")

    resp, err := hc.Do(req)
    if err != nil {
        log.Fatalf("GET %s: %v", endpoint, err)
    }
    defer resp.Body.Close()
    body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
    if err != nil {
        log.Fatalf("read body: %v", err)
    }
    if resp.StatusCode != http.StatusOK {
        log.Fatalf("http %d: %s", resp.StatusCode, string(body))
    }

    var pretty bytes.Buffer
    if err := json.Indent(&pretty, body, "", "  "); err != nil {
        log.Fatalf("indent: %v", err)
    }
    pretty.WriteByte('\n')

    if outPath == "" {
        _, _ = os.Stdout.Write(pretty.Bytes())
        return
    }
    if err := os.WriteFile(outPath, pretty.Bytes(), 0o644); err != nil {
        log.Fatalf("write out: %v", err)
    }
    log.Printf("wrote %s (%d bytes)", outPath, pretty.Len())
}
