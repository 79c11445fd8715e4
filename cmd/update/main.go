package main

import (
    "context"
    "flag"
    "net/http"
    "os"
    "time"

    "nikkeitracker/internal/config"
    "nikkeitracker/internal/history"
    "nikkeitracker/internal/httpx"
    "nikkeitracker/internal/metrics"
    "nikkeitracker/internal/quote/yahoo"
    "nikkeitracker/internal/updater"
    "nikkeitracker/internal/yield"
    "nikkeitracker/pkg/logger"
)

// Daily update job. Meant to be run once per business day by an external
// scheduler; a second invocation on the same day is a safe no-op. Every
// failure path is logged and the process always exits 0.
func main() {
    var configPath string
    var dataFile string
    var ticker string
    flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
    flag.StringVar(&dataFile, "data", "", "history file path override")
    flag.StringVar(&ticker, "ticker", "", "index ticker override")
    flag.Parse()

    cfg, err := config.Load(configPath)
    log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
    if err != nil {
        // defaults remain usable, run with them
        log.Warn().Err(err).Msg("config not fully loaded, using defaults")
    }
    if dataFile != "" { cfg.Store.DataFile = dataFile }
    if ticker != "" { cfg.Index.Ticker = ticker }

    httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

    quotes, err := yahoo.NewClient(
        yahoo.WithHTTPClient(httpClient.HTTP),
        yahoo.WithHeader(http.Header{
            "User-Agent": []string{"nikkei-tracker/1.0"},
        }),
    )
    if err != nil {
        log.Error().Err(err).Msg("yahoo client")
        return
    }

    yields := yield.NewChain(log, cfg.Yield.Fallback,
        &yield.Investing{
            URL:         cfg.Yield.InvestingURL,
            Placeholder: cfg.Yield.Placeholder,
            Timeout:     time.Duration(cfg.Yield.TimeoutSec) * time.Second,
            Client:      httpClient,
        },
        yield.TradingView{},
        yield.Static{Value: cfg.Yield.Static},
    )

    store := history.NewStore(cfg.Store.DataFile, log)

    u := updater.New(updater.Config{
        Ticker:    cfg.Index.Ticker,
        RangeDays: cfg.Index.RangeDays,
        Retention: cfg.Store.Retention,
        Fundamentals: metrics.Fundamentals{
            EPS:      cfg.Fundamentals.EPS,
            BPS:      cfg.Fundamentals.BPS,
            Dividend: cfg.Fundamentals.Dividend,
        },
    }, quotes, yields, store, log)

    ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
    defer cancel()

    outcome, err := u.Run(ctx)
    if err != nil {
        log.Error().Err(err).Msg("update not persisted")
    }
    log.Info().Str("outcome", outcome.String()).Msg("run finished")
}
