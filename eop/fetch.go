package eop

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/clipperhouse/hifi"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is where JPL publishes EOP2 files.
	DefaultBaseURL = "https://eop2-external.jpl.nasa.gov/eop2"
	// DefaultTTL is how long a downloaded table is reused.
	DefaultTTL = 24 * time.Hour

	// ShortFile holds the recent past and near-term predictions.
	ShortFile = "latest_eop2.short"
	// LongFile goes back to 1962.
	LongFile = "latest_eop2.long"
)

// Fetcher downloads EOP2 files over HTTP and keeps parsed tables for a TTL.
// It is safe for concurrent use.
type Fetcher struct {
	client  *http.Client
	baseURL string
	tables  *cache.Cache
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the HTTP client. The default has a 30 second timeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithBaseURL sets the URL files are fetched under.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) { f.baseURL = strings.TrimSuffix(u, "/") }
}

// WithTTL sets how long a fetched table is reused. A negative ttl keeps tables forever.
func WithTTL(ttl time.Duration) Option {
	return func(f *Fetcher) { f.tables = cache.New(ttl, cleanupInterval(ttl)) }
}

// WithRateLimit allows at most burst downloads at once, refilled one every
// interval. Cached tables are not counted. Downloads are unlimited by default.
func WithRateLimit(interval time.Duration, burst int) Option {
	return func(f *Fetcher) { f.limiter = rate.NewLimiter(rate.Every(interval), burst) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return -1
	}
	return max(ttl, time.Minute)
}

// NewFetcher returns a Fetcher for DefaultBaseURL caching for DefaultTTL.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: DefaultBaseURL,
		tables:  cache.New(DefaultTTL, DefaultTTL),
		limiter: rate.NewLimiter(rate.Inf, 0),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Short returns the table of ShortFile.
func (f *Fetcher) Short(ctx context.Context) (hifi.UT1Table, error) {
	return f.Fetch(ctx, ShortFile)
}

// Long returns the table of LongFile.
func (f *Fetcher) Long(ctx context.Context) (hifi.UT1Table, error) {
	return f.Fetch(ctx, LongFile)
}

// Fetch returns the table of the named file, downloading it unless a copy
// younger than the TTL is cached.
func (f *Fetcher) Fetch(ctx context.Context, name string) (hifi.UT1Table, error) {
	u := f.baseURL + "/" + name
	if cached, ok := f.tables.Get(u); ok {
		return cached.(hifi.UT1Table), nil
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("eop: fetch %s: %w", u, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eop: fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("eop: fetch %s: %s", u, resp.Status)
	}

	table, err := Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("eop: %s: %w", u, err)
	}

	f.logger.Debug("fetched EOP2 table",
		slog.String("url", u),
		slog.Int("records", len(table)),
		slog.Duration("took", time.Since(start)),
	)
	f.tables.SetDefault(u, table)
	return table, nil
}

// Forget drops every cached table.
func (f *Fetcher) Forget() {
	f.tables.Flush()
}
