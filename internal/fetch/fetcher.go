package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/knownwords/internal/wordlist"
)

// ErrIncomplete is reported when every page has arrived but the number of
// words does not match the total declared by the service.
var ErrIncomplete = errors.New("word list incomplete")

// Listener receives the events of one fetch. Progress may be called
// concurrently from several goroutines. Exactly one of Complete or Failed is
// called per fetch, unless Discover itself returns an error.
type Listener interface {
	Progress(fetched, total int)
	Complete(words []string)
	Failed(err error)
}

// Config holds fetcher settings.
type Config struct {
	// Language is the translation language sent with every request.
	Language string

	// MaxConcurrentPages bounds the number of in-flight page requests.
	// Zero means unbounded.
	MaxConcurrentPages int
}

// Fetcher retrieves a complete word list for a level, one page per request.
type Fetcher struct {
	source wordlist.Source
	cfg    Config
	logger *zap.Logger
}

// New creates a Fetcher reading pages from source.
func New(source wordlist.Source, cfg Config, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{source: source, cfg: cfg, logger: logger.Named("fetch")}
}

// Discover issues the discovery request for level and blocks until its
// response has been handled. The remaining pages are requested in the
// background and reported to l as they arrive.
func (f *Fetcher) Discover(ctx context.Context, level string, l Listener) error {
	r := &run{
		fetcher:  f,
		listener: l,
		base:     wordlist.Request{Level: level, Language: f.cfg.Language},
		logger:   f.logger.With(zap.String("level", level)),
	}

	page, err := f.source.FetchPage(ctx, r.base)
	if err != nil {
		return fmt.Errorf("discover %s: %w", level, err)
	}
	r.handlePage(ctx, page)
	return nil
}

// run is the state of one fetch. words, first, done and pending are shared
// between the page callbacks.
type run struct {
	fetcher  *Fetcher
	listener Listener
	base     wordlist.Request
	logger   *zap.Logger

	mu       sync.Mutex
	words    []string
	total    int
	pageSize int

	first   atomic.Bool
	done    atomic.Bool
	pending atomic.Int64
}

// handlePage is the callback shared by the discovery page and every
// fan-out page.
func (r *run) handlePage(ctx context.Context, page *wordlist.Page) {
	isFirst := r.first.CompareAndSwap(false, true)

	r.mu.Lock()
	if isFirst {
		r.total = page.Total
		r.pageSize = len(page.Words)
	}
	r.words = append(r.words, page.Words...)
	fetched, total, pageSize := len(r.words), r.total, r.pageSize
	r.mu.Unlock()

	r.listener.Progress(fetched, total)

	if isFirst {
		switch {
		case total > 0 && pageSize == 0:
			r.fail(&wordlist.ErrMalformedPage{Err: fmt.Errorf("empty first page with total %d", total)})
			return
		case total > pageSize:
			r.fanOut(ctx, pageSize, total)
		case fetched != total:
			r.fail(fmt.Errorf("%w: first page has %d words, total is %d", ErrIncomplete, fetched, total))
			return
		}
	}

	r.completeIf(fetched, total)
}

// completeIf transitions the run to done when every word has arrived.
// Several callbacks may observe fetched == total; the CAS picks one winner.
func (r *run) completeIf(fetched, total int) {
	if fetched != total || !r.done.CompareAndSwap(false, true) {
		return
	}
	words := r.snapshot()
	r.logger.Info("fetch complete", zap.Int("words", len(words)))
	r.listener.Complete(words)
}

func (r *run) fail(err error) {
	if !r.done.CompareAndSwap(false, true) {
		return
	}
	r.logger.Warn("fetch failed", zap.Error(err))
	r.listener.Failed(err)
}

func (r *run) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.words))
	copy(out, r.words)
	return out
}

// fanOut requests the pages after the first one concurrently. It returns
// immediately; a bounded group may otherwise block the caller.
func (r *run) fanOut(ctx context.Context, pageSize, total int) {
	var offsets []int
	for off := pageSize; off < total; off += pageSize {
		offsets = append(offsets, off)
	}
	r.pending.Store(int64(len(offsets)))
	r.logger.Debug("fanning out", zap.Int("pages", len(offsets)), zap.Int("page_size", pageSize))

	g, gctx := errgroup.WithContext(ctx)
	if r.fetcher.cfg.MaxConcurrentPages > 0 {
		g.SetLimit(r.fetcher.cfg.MaxConcurrentPages)
	}

	go func() {
		for _, off := range offsets {
			req := r.base.At(off)
			g.Go(func() error {
				defer r.pageDone()
				page, err := r.fetcher.source.FetchPage(gctx, req)
				if err != nil {
					err = fmt.Errorf("page at offset %d: %w", req.OffsetOrZero(), err)
					r.fail(err)
					return err
				}
				r.handlePage(gctx, page)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			r.logger.Debug("fan-out stopped", zap.Error(err))
		}
	}()
}

// pageDone reports a stalled fetch once the last outstanding page has been
// handled without reaching the total.
func (r *run) pageDone() {
	if r.pending.Add(-1) != 0 {
		return
	}
	r.mu.Lock()
	fetched, total := len(r.words), r.total
	r.mu.Unlock()
	if fetched != total {
		r.fail(fmt.Errorf("%w: got %d of %d words", ErrIncomplete, fetched, total))
	}
}
