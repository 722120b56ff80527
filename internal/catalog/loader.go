package catalog

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// FileName is the name of the catalog document in the embedded frontend.
const FileName = "workouts.json"

// Loader fetches workouts.json from a URL, a local file or an embedded filesystem.
type Loader struct {
	embedded   fs.FS
	httpClient *http.Client
	log        *slog.Logger
}

// NewLoader creates a Loader with a 30 second HTTP timeout. embedded, which
// may be nil, serves the empty source.
func NewLoader(embedded fs.FS, log *slog.Logger) *Loader {
	return &Loader{
		embedded:   embedded,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

// Load reads the catalog from source: an http(s) URL fetched with GET, a
// path on the local filesystem, or "" for the embedded copy.
func (l *Loader) Load(ctx context.Context, source string) (*Catalog, error) {
	if source == "" {
		if l.embedded == nil {
			return nil, fmt.Errorf("no catalog source configured")
		}
		return LoadFS(l.embedded, FileName)
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.fetch(ctx, source)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// LoadOrEmpty is Load that logs failures and falls back to an empty catalog,
// so a broken catalog source never keeps the app from starting.
func (l *Loader) LoadOrEmpty(ctx context.Context, source string) *Catalog {
	c, err := l.Load(ctx, source)
	if err != nil {
		l.log.Error("catalog load failed, continuing with empty catalog", "source", sourceName(source), "error", err)
		return Empty()
	}
	l.log.Info("catalog loaded", "source", sourceName(source), "workouts", c.Len())
	return c
}

func (l *Loader) fetch(ctx context.Context, url string) (*Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating catalog request: %w", err)
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog request failed (status %d): %s", resp.StatusCode, body)
	}
	return Decode(resp.Body)
}

// LoadFS reads the catalog from a file in fsys, e.g. the embedded frontend.
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening embedded catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func sourceName(source string) string {
	if source == "" {
		return "embedded"
	}
	return source
}
