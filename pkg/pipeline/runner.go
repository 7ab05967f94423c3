package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridscad/pkg/cache"
	"github.com/matzehuels/gridscad/pkg/grid"
	"github.com/matzehuels/gridscad/pkg/observability"
)

// Runner encapsulates conversion with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Convert renders m in every requested format.
//
// Every cell type must be registered, whatever the formats: a model that
// cannot be converted to a script fails before anything is rendered.
func (r *Runner) Convert(ctx context.Context, m *grid.Model, opts Options) (result *Result, err error) {
	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnConvertStart(ctx, m.Metadata.Name, m.Len())
	defer func() {
		hooks.OnConvertComplete(ctx, m.Metadata.Name, m.Len(), time.Since(start), err)
	}()

	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := CheckShapes(m, opts.Registry); err != nil {
		return nil, err
	}

	modelData, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("hash model: %w", err)
	}

	result = &Result{
		ModelHash: cache.Hash(modelData),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		CacheHits: make(map[string]bool, len(opts.Formats)),
		Stats:     Stats{Cells: m.Len()},
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		art, err := r.renderWithCache(ctx, m, result.ModelHash, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = art.data
		result.CacheHits[format] = art.hit
		if format == FormatSCAD {
			result.Stats.Statements = art.statements
		}
		opts.Logger.Debug("rendered artifact", "format", format, "bytes", len(art.data), "cached", art.hit)
	}

	result.Stats.Duration = time.Since(start)
	opts.Logger.Info("converted model",
		"name", m.Metadata.Name,
		"cells", result.Stats.Cells,
		"formats", opts.Formats,
		"duration", result.Stats.Duration)

	return result, nil
}

// artifact is one rendered format. statements is only set for scad.
type artifact struct {
	data       []byte
	hit        bool
	statements int
}

func (r *Runner) renderWithCache(ctx context.Context, m *grid.Model, modelHash, format string, opts Options) (artifact, error) {
	key := r.Keyer.ArtifactKey(modelHash, opts.ArtifactKeyOpts(format))

	cacheHooks := observability.Cache()
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			cacheHooks.OnCacheHit(ctx, format)
			art := artifact{data: data, hit: true}
			if format == FormatSCAD {
				art.statements = CountStatements(data)
			}
			return art, nil
		}
		cacheHooks.OnCacheMiss(ctx, format)
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()
	art, err := r.render(ctx, m, format, opts)
	hooks.OnRenderComplete(ctx, format, len(art.data), time.Since(start), err)
	if err != nil {
		return artifact{}, err
	}

	if err := r.Cache.Set(ctx, key, art.data, cache.TTLArtifact); err != nil {
		opts.Logger.Warn("cache write failed", "format", format, "err", err)
	} else {
		cacheHooks.OnCacheSet(ctx, format, len(art.data))
	}
	return art, nil
}

func (r *Runner) render(ctx context.Context, m *grid.Model, format string, opts Options) (artifact, error) {
	if format == FormatSCAD {
		data, n, err := renderSCAD(m, opts)
		return artifact{data: data, statements: n}, err
	}
	data, err := Render(ctx, m, format, opts)
	return artifact{data: data}, err
}

// applyLogger falls back to the runner's logger when opts has none.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
