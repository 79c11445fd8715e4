package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "strings"

    "github.com/joho/godotenv"
)

type Server struct {
    Port              string `json:"port"`
    RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type Index struct {
    Ticker    string `json:"ticker"`
    RangeDays int    `json:"range_days"`
}

type Store struct {
    DataFile  string `json:"data_file"`
    Retention int    `json:"retention"`
}

// Fundamentals are fixed per-deployment constants, not fetched.
// Using the same EPS/BPS/dividend for every date is an intentional
// simplification; override via config when the figures are revised.
type Fundamentals struct {
    EPS      float64 `json:"eps"`
    BPS      float64 `json:"bps"`
    Dividend float64 `json:"dividend"`
}

type Yield struct {
    InvestingURL string  `json:"investing_url"`
    TimeoutSec   int     `json:"timeout_sec"`
    Placeholder  float64 `json:"placeholder"`
    Static       float64 `json:"static"`
    Fallback     float64 `json:"fallback"`
}

type Config struct {
    Server       Server       `json:"server"`
    Index        Index        `json:"index"`
    Store        Store        `json:"store"`
    Fundamentals Fundamentals `json:"fundamentals"`
    Yield        Yield        `json:"yield"`
    LogLevel     string       `json:"log_level"`
    LogPretty    bool         `json:"log_pretty"`
}

func Default() Config {
    return Config{
        Server: Server{Port: "8080", RequestTimeoutSec: 15},
        Index:  Index{Ticker: "^N225", RangeDays: 5},
        Store:  Store{DataFile: "data/nikkei_data.json", Retention: 60},
        Fundamentals: Fundamentals{
            EPS:      2500,
            BPS:      27500,
            Dividend: 900,
        },
        Yield: Yield{
            InvestingURL: "https://www.investing.com/rates-bonds/japan-10-year-bond-yield",
            TimeoutSec:   10,
            Placeholder:  1.485,
            Static:       1.485,
            Fallback:     1.5,
        },
        LogLevel:  "info",
        LogPretty: true,
    }
}

// Load reads JSON config from path. If path is empty or the file does not exist,
// it returns defaults. A .env file and environment variables override select fields.
func Load(path string) (Config, error) {
    _ = godotenv.Load()

    cfg := Default()
    if path == "" {
        if _, err := os.Stat("config.json"); err == nil {
            path = "config.json"
        }
    }
    if path != "" {
        b, err := os.ReadFile(path)
        if err != nil && !errors.Is(err, os.ErrNotExist) {
            return cfg, fmt.Errorf("read config: %w", err)
        }
        if err == nil {
            if err := json.Unmarshal(b, &cfg); err != nil {
                return cfg, fmt.Errorf("parse config: %w", err)
            }
        }
    }
    applyEnv(&cfg)
    return cfg, nil
}

func applyEnv(cfg *Config) {
    if v := os.Getenv("PORT"); v != "" { cfg.Server.Port = v }
    if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Server.RequestTimeoutSec = x }
    }
    if v := os.Getenv("INDEX_TICKER"); v != "" { cfg.Index.Ticker = v }
    if v := os.Getenv("INDEX_RANGE_DAYS"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Index.RangeDays = x }
    }
    if v := os.Getenv("DATA_FILE"); v != "" { cfg.Store.DataFile = v }
    if v := os.Getenv("RETENTION"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Store.Retention = x }
    }
    if v := os.Getenv("FUND_EPS"); v != "" {
        var x float64; fmt.Sscanf(v, "%g", &x); if x > 0 { cfg.Fundamentals.EPS = x }
    }
    if v := os.Getenv("FUND_BPS"); v != "" {
        var x float64; fmt.Sscanf(v, "%g", &x); if x > 0 { cfg.Fundamentals.BPS = x }
    }
    if v := os.Getenv("FUND_DIVIDEND"); v != "" {
        var x float64; fmt.Sscanf(v, "%g", &x); if x > 0 { cfg.Fundamentals.Dividend = x }
    }
    if v := os.Getenv("YIELD_INVESTING_URL"); v != "" { cfg.Yield.InvestingURL = v }
    if v := os.Getenv("YIELD_TIMEOUT_SEC"); v != "" {
        var x int; fmt.Sscanf(v, "%d", &x); if x > 0 { cfg.Yield.TimeoutSec = x }
    }
    if v := os.Getenv("YIELD_PLACEHOLDER"); v != "" {
        var x float64; fmt.Sscanf(v, "%g", &x); if x > 0 { cfg.Yield.Placeholder = x }
    }
    if v := os.Getenv("YIELD_STATIC"); v != "" {
        var x float64; fmt.Sscanf(v, "%g", &x); if x > 0 { cfg.Yield.Static = x }
    }
    if v := os.Getenv("YIELD_FALLBACK"); v != "" {
        var x float64; fmt.Sscanf(v, "%g", &x); if x > 0 { cfg.Yield.Fallback = x }
    }
    if v := os.Getenv("LOG_LEVEL"); v != "" { cfg.LogLevel = v }
    if v := os.Getenv("LOG_PRETTY"); v != "" {
        switch strings.ToLower(v) {
        case "1", "true", "yes", "y": cfg.LogPretty = true
        case "0", "false", "no", "n": cfg.LogPretty = false
        }
    }
}
