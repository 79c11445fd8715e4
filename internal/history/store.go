package history

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"

    "github.com/rs/zerolog"
)

// Store reads and writes the history document as a single JSON file.
// Writes are full-document overwrites; the last writer wins.
type Store struct {
    path string
    log  zerolog.Logger
}

func NewStore(path string, log zerolog.Logger) *Store {
    return &Store{path: path, log: log.With().Str("component", "store").Logger()}
}

func (s *Store) Path() string { return s.path }

// Load reads the stored history. A missing or unreadable document loads
// as an empty history; the cause is logged, never returned.
func (s *Store) Load() History {
    b, err := os.ReadFile(s.path)
    if err != nil {
        if !os.IsNotExist(err) {
            s.log.Warn().Err(err).Str("path", s.path).Msg("could not read history, starting empty")
        }
        return History{}
    }
    var h History
    if err := json.Unmarshal(b, &h); err != nil {
        s.log.Warn().Err(err).Str("path", s.path).Msg("could not parse history, starting empty")
        return History{}
    }
    return h
}

// Save overwrites the document with h, creating the data directory if needed.
func (s *Store) Save(h History) error {
    if dir := filepath.Dir(s.path); dir != "." && dir != "" {
        if err := os.MkdirAll(dir, 0o755); err != nil {
            return fmt.Errorf("create data dir: %w", err)
        }
    }
    b, err := json.MarshalIndent(h, "", "  ")
    if err != nil {
        return fmt.Errorf("encode history: %w", err)
    }
    if err := os.WriteFile(s.path, b, 0o644); err != nil {
        return fmt.Errorf("write history: %w", err)
    }
    s.log.Info().Str("path", s.path).Int("entries", len(h)).Msg("history saved")
    return nil
}
