package main

import (
    "encoding/json"
    "net/http"
    "sync"
    "time"

    "golang.org/x/sync/singleflight"

    "nikkeitracker/internal/history"
)

func handleHealthz(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write([]byte(`{"status":"ok"}`))
}

// historyLoader serves the history document through a short-lived cache.
// The document changes once per business day, so rereading the file per
// request is wasteful; concurrent reloads are coalesced.
type historyLoader struct {
    store *history.Store
    ttl   time.Duration

    mu      sync.RWMutex
    cached  history.History
    expires time.Time

    sf singleflight.Group
}

func newHistoryLoader(store *history.Store, ttl time.Duration) *historyLoader {
    return &historyLoader{store: store, ttl: ttl}
}

func (l *historyLoader) get() history.History {
    now := time.Now()
    l.mu.RLock()
    if !l.expires.IsZero() && now.Before(l.expires) {
        h := l.cached
        l.mu.RUnlock()
        return h
    }
    l.mu.RUnlock()

    v, _, _ := l.sf.Do("history", func() (any, error) {
        h := l.store.Load()
        l.mu.Lock()
        l.cached = h
        l.expires = time.Now().Add(l.ttl)
        l.mu.Unlock()
        return h, nil
    })
    return v.(history.History)
}

// handleHistory writes the full document, newest first, as a bare array
// to match the published file layout.
func (l *historyLoader) handleHistory(w http.ResponseWriter, r *http.Request) {
    h := l.get()
    if h == nil { h = history.History{} }
    w.WriteHeader(http.StatusOK)
    enc := json.NewEncoder(w)
    enc.SetEscapeHTML(false)
    _ = enc.Encode(h)
}

func (l *historyLoader) handleLatest(w http.ResponseWriter, r *http.Request) {
    e, ok := l.get().Latest()
    if !ok {
        // http.Error would reset Content-Type to text/plain; the body is JSON.
        w.WriteHeader(http.StatusNotFound)
        _, _ = w.Write([]byte(`{"error":"no data"}` + "\n"))
        return
    }
    w.WriteHeader(http.StatusOK)
    enc := json.NewEncoder(w)
    enc.SetEscapeHTML(false)
    _ = enc.Encode(e)
}
