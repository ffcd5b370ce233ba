// Package fetcher retrieves CSS sources over a Transport with caching and bounded retries.
package fetcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/cssmerge/internal/core/domain"
	"go.trai.ch/cssmerge/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Sleeper waits for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxAttempts sets the number of GETs made for a URL before it counts as failed.
func WithMaxAttempts(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxAttempts = n
		}
	}
}

// WithRetryDelay sets the fixed delay between two attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		if d >= 0 {
			f.retryDelay = d
		}
	}
}

// WithConcurrency bounds the number of in-flight fetches in FetchAll. Zero means unbounded.
func WithConcurrency(n int) Option {
	return func(f *Fetcher) {
		if n >= 0 {
			f.concurrency = n
		}
	}
}

// WithSleeper replaces the function used to wait between attempts.
func WithSleeper(s Sleeper) Option {
	return func(f *Fetcher) {
		if s != nil {
			f.sleep = s
		}
	}
}

// Fetcher resolves source URLs to text.
type Fetcher struct {
	transport ports.Transport
	cache     *Cache
	logger    ports.Logger
	telemetry ports.Telemetry

	maxAttempts int
	retryDelay  time.Duration
	concurrency int
	sleep       Sleeper
}

// New creates a Fetcher. The cache is shared by every bundle fetched with it.
func New(
	transport ports.Transport,
	cache *Cache,
	logger ports.Logger,
	telemetry ports.Telemetry,
	opts ...Option,
) *Fetcher {
	f := &Fetcher{
		transport:   transport,
		cache:       cache,
		logger:      logger,
		telemetry:   telemetry,
		maxAttempts: domain.DefaultMaxAttempts,
		retryDelay:  domain.DefaultRetryDelay,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithLimit returns a copy of f whose FetchAll runs at most n fetches at once.
// The copy shares f's cache.
func (f *Fetcher) WithLimit(n int) *Fetcher {
	clone := *f
	WithConcurrency(n)(&clone)
	return &clone
}

// Fetch returns the text behind url. ok is false once every attempt has failed;
// that outcome is cached like a success and never retried in this process.
func (f *Fetcher) Fetch(ctx context.Context, url string) (content string, ok bool) {
	ctx, vertex := f.telemetry.Record(ctx, "fetch "+url)

	content, ok, hit := f.cache.Resolve(url, func() (string, bool) {
		text, err := f.fetchWithRetry(ctx, url, vertex)
		if err != nil {
			f.logger.Warn("fetch failed", "url", url, "attempts", f.maxAttempts, "error", err.Error())
			return "", false
		}
		return text, true
	})

	if hit {
		vertex.Cached()
	}
	if !ok {
		vertex.Complete(fmt.Errorf("fetch %s failed", url))
		return "", false
	}
	vertex.Complete(nil)
	return content, true
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, url string, vertex ports.Vertex) (string, error) {
	f.logger.Info("fetching", "url", url)

	var lastErr error
	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := f.sleep(ctx, f.retryDelay); err != nil {
				return "", err
			}
		}

		content, err := f.transport.GetText(ctx, url)
		if err == nil {
			return content, nil
		}
		lastErr = err
		vertex.Log(domain.LogLevelWarn, fmt.Sprintf("attempt %d/%d: %v", attempt, f.maxAttempts, err))
	}
	return "", lastErr
}

// FetchAll fetches every entry concurrently and waits for all of them.
// Results come back in completion order; failed entries carry Failed.
func (f *Fetcher) FetchAll(ctx context.Context, entries []domain.SourceEntry) []domain.FetchedEntry {
	var (
		mu      sync.Mutex
		results = make([]domain.FetchedEntry, 0, len(entries))
	)

	g, gctx := errgroup.WithContext(ctx)
	if f.concurrency > 0 {
		g.SetLimit(f.concurrency)
	}

	// Skipped sources are also noted on the enclosing vertex, if any.
	parent, hasParent := ports.VertexFromContext(ctx)

	for _, entry := range entries {
		g.Go(func() error {
			content, ok := f.Fetch(gctx, entry.URL)
			if !ok {
				f.logger.Warn("skipping source due to fetch error", "url", entry.URL)
				if hasParent {
					parent.Log(domain.LogLevelWarn, "skipped "+entry.URL)
				}
			}

			mu.Lock()
			results = append(results, domain.FetchedEntry{
				SourceEntry: entry,
				Content:     content,
				Failed:      !ok,
			})
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait() // Fetch reports failure through Failed, never through an error.
	return results
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
