// Package dataset applies a noise.Augmenter across a collection of
// records: it rewrites one feature per record and leaves everything else
// untouched. Documents are independent, so the pass fans out across a
// bounded set of workers, each with its own forked RNG stream — a run is
// deterministic for a fixed seed and worker count.
//
// Per-record failures (missing feature, unexpected value type) never
// abort the pass: the record is carried through unchanged and the failure
// is reported alongside the full output.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/textnoise/noise"
)

var (
	// ErrMissingFeature indicates a record without the requested feature.
	ErrMissingFeature = errors.New("dataset: record has no such feature")
	// ErrFeatureType indicates a feature value that is neither a string
	// nor a []string.
	ErrFeatureType = errors.New("dataset: feature must be a string or a []string")
)

// Record is one dataset row: feature name → value. The augmented feature
// must hold a string or a []string; other features pass through as-is.
type Record = map[string]any

// DefaultWorkers bounds the fan-out when WithWorkers is not given.
const DefaultWorkers = 4

// defaultLogEvery is the progress-report stride when a logger is set.
const defaultLogEvery = 1000

// Option tunes one Augment call.
type Option func(*config)

type config struct {
	workers  int
	logger   *slog.Logger
	logEvery int
}

// WithWorkers bounds the number of concurrent workers. Values below 1
// fall back to DefaultWorkers.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithLogger enables structured progress reports (one line every
// WithLogEvery records). Nil disables logging, which is the default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithLogEvery sets the progress-report stride. Values below 1 are ignored.
func WithLogEvery(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.logEvery = n
		}
	}
}

// Augment rewrites feature through aug in every record of recs and
// returns a new slice in the same order; input records are not modified.
//
// Worker w handles indices w, w+workers, ... with an RNG stream forked
// from aug, so results are reproducible for a fixed seed and worker
// count. The augmenter itself is not used concurrently.
//
// The returned error is nil unless the context was canceled or some
// records failed; in the latter case it joins one wrapped error per
// failed record (errors.Is works against ErrMissingFeature and
// ErrFeatureType) while the output still contains every record, failed
// ones unchanged.
func Augment(ctx context.Context, recs []Record, aug *noise.Augmenter, feature string, opts ...Option) ([]Record, error) {
	cfg := config{workers: DefaultWorkers, logEvery: defaultLogEvery}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers > len(recs) && len(recs) > 0 {
		cfg.workers = len(recs)
	}

	out := make([]Record, len(recs))
	if len(recs) == 0 {
		return out, nil
	}

	// Forking must happen before the workers start: it advances the
	// parent RNG state sequentially.
	workers := make([]*noise.Augmenter, cfg.workers)
	for w := range workers {
		workers[w] = aug.Fork(uint64(w))
	}

	var (
		mu      sync.Mutex
		recErrs []error
		done    atomic.Int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for w := 0; w < cfg.workers; w++ {
		worker := workers[w]
		start := w
		g.Go(func() error {
			for i := start; i < len(recs); i += cfg.workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				rec, err := augmentRecord(recs[i], worker, feature)
				out[i] = rec
				if err != nil {
					mu.Lock()
					recErrs = append(recErrs, fmt.Errorf("record %d: %w", i, err))
					mu.Unlock()
				}

				if n := done.Add(1); cfg.logger != nil && n%int64(cfg.logEvery) == 0 {
					cfg.logger.Info("augmenting dataset",
						slog.Int64("done", n),
						slog.Int("total", len(recs)),
						slog.String("feature", feature))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, errors.Join(recErrs...)
}

// augmentRecord copies rec and rewrites its feature. On failure the copy
// is returned unchanged together with the cause.
func augmentRecord(rec Record, aug *noise.Augmenter, feature string) (Record, error) {
	clone := make(Record, len(rec))
	for k, v := range rec {
		clone[k] = v
	}

	value, ok := rec[feature]
	if !ok {
		return clone, fmt.Errorf("%w: %q", ErrMissingFeature, feature)
	}
	switch v := value.(type) {
	case string:
		noised, err := aug.AugmentString(v)
		if err != nil {
			return clone, err
		}
		clone[feature] = noised
	case []string:
		noised, err := aug.AugmentTokens(v)
		if err != nil {
			return clone, err
		}
		clone[feature] = noised
	default:
		return clone, fmt.Errorf("%w: %q holds %T", ErrFeatureType, feature, value)
	}
	return clone, nil
}
