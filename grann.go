package grann

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/grann/distance"
	"github.com/hupe1980/grann/graph"
	"github.com/hupe1980/grann/internal/searcher"
)

// instanceSeedStride decorrelates the random sampling of redundant search
// instances derived from one base seed.
const instanceSeedStride = 0x9e3779b9

// Index performs approximate nearest-neighbor search over a precomputed
// proximity graph. The dataset and graph are immutable; an Index is safe for
// concurrent use by any number of goroutines.
type Index struct {
	ds     *graph.Dataset
	g      *graph.Graph
	distFn distance.Func
	opts   options
}

// New creates an Index over the dataset and its proximity graph.
func New(ds *graph.Dataset, g *graph.Graph, optFns ...Option) (*Index, error) {
	if ds == nil || g == nil {
		return nil, fmt.Errorf("dataset and graph must not be nil")
	}

	if ds.Len() != g.Len() {
		return nil, fmt.Errorf("dataset size %d does not match graph size %d", ds.Len(), g.Len())
	}

	if uint64(ds.Len()) >= math.MaxUint32 {
		return nil, fmt.Errorf("dataset size %d exceeds the addressable id space", ds.Len())
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	distFn, err := opts.metric.Func()
	if err != nil {
		return nil, err
	}

	return &Index{ds: ds, g: g, distFn: distFn, opts: opts}, nil
}

// BuildIndex constructs the proximity graph for the dataset and returns an
// Index over it. The configured metric and parallelism drive the build, and
// the build is reported to the configured logger and metrics collector.
func BuildIndex(ctx context.Context, ds *graph.Dataset, degree int, optFns ...Option) (*Index, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()

	g, err := graph.Build(ctx, ds, degree, func(o *graph.BuildOptions) {
		o.Metric = opts.metric
		o.Parallelism = opts.parallelism
	})

	opts.metrics.RecordBuild(ds.Len(), time.Since(start), err)
	opts.logger.LogBuild(ctx, ds.Len(), degree, time.Since(start), err)

	if err != nil {
		return nil, err
	}

	return New(ds, g, optFns...)
}

// Open reads an index file written by graph.WriteIndexFile.
func Open(path string, optFns ...Option) (*Index, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()

	ds, g, err := graph.ReadIndexFile(path)
	if err != nil {
		opts.logger.LogLoad(context.Background(), path, 0, 0, time.Since(start), err)

		return nil, err
	}

	opts.logger.LogLoad(context.Background(), path, ds.Len(), ds.Dim(), time.Since(start), nil)

	return New(ds, g, optFns...)
}

// Dataset returns the underlying dataset.
func (idx *Index) Dataset() *graph.Dataset { return idx.ds }

// Graph returns the underlying proximity graph.
func (idx *Index) Graph() *graph.Graph { return idx.g }

// Search finds the approximate k nearest neighbors of query. Results are
// sorted by distance ascending; fewer than k neighbors may be returned when
// an admission filter rejects candidates or the dataset is small.
func (idx *Index) Search(ctx context.Context, query []float32, k int, params SearchParams) ([]Neighbor, error) {
	start := time.Now()

	neighbors, iterations, err := idx.search(ctx, query, k, params, 0)

	idx.opts.metrics.RecordSearch(k, time.Since(start), err)
	idx.opts.logger.LogSearch(ctx, k, len(neighbors), iterations, time.Since(start), err)

	return neighbors, err
}

// SearchBatch searches many queries concurrently. The query index is passed
// to the admission filter as the query id.
func (idx *Index) SearchBatch(ctx context.Context, queries [][]float32, k int, params SearchParams) ([][]Neighbor, error) {
	start := time.Now()

	results := make([][]Neighbor, len(queries))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(idx.opts.parallelism)

	for qi, query := range queries {
		qi, query := qi, query
		eg.Go(func() error {
			neighbors, _, err := idx.search(ctx, query, k, params, qi)
			if err != nil {
				return fmt.Errorf("query %d: %w", qi, err)
			}

			results[qi] = neighbors

			return nil
		})
	}

	err := eg.Wait()

	idx.opts.metrics.RecordBatchSearch(len(queries), time.Since(start), err)
	idx.opts.logger.LogBatchSearch(ctx, len(queries), time.Since(start), err)

	if err != nil {
		return nil, err
	}

	return results, nil
}

// search runs the configured number of redundant instances and merges their
// outputs. iterations is the maximum executed by any instance.
func (idx *Index) search(ctx context.Context, query []float32, k int, params SearchParams, queryID int) ([]Neighbor, int, error) {
	if len(query) != idx.ds.Dim() {
		return nil, 0, &ErrDimensionMismatch{Expected: idx.ds.Dim(), Actual: len(query)}
	}

	p := params.withDefaults(k, idx.g.Degree(), idx.ds.Len())

	if err := p.Validate(k, idx.g.Degree()); err != nil {
		return nil, 0, err
	}

	var accept func(node uint32) bool
	if p.Filter != nil {
		accept = func(node uint32) bool {
			return p.Filter.Accept(queryID, node)
		}
	}

	baseCfg := searcher.Config{
		ITopK:         p.ITopK,
		SearchWidth:   p.SearchWidth,
		MinIterations: p.MinIterations,
		MaxIterations: p.MaxIterations,
		HashBits:      p.HashBits,
		Seeds:         p.Seeds,
		RandomSamples: p.RandomSamples,
		Distance:      idx.distFn,
		Accept:        accept,
	}

	outputs := make([][]searcher.Candidate, p.Instances)
	iterations := make([]int, p.Instances)

	runInstance := func(i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		s := searcher.Get()
		defer searcher.Put(s)

		cfg := baseCfg
		cfg.Seed = p.Seed + int64(i)*instanceSeedStride

		out, iters, err := s.Search(idx.ds, idx.g, query, cfg)
		if err != nil {
			return err
		}

		outputs[i] = out
		iterations[i] = iters

		return nil
	}

	if p.Instances == 1 {
		if err := runInstance(0); err != nil {
			return nil, 0, err
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(idx.opts.parallelism)
		ctx = egCtx

		for i := 0; i < p.Instances; i++ {
			i := i
			eg.Go(func() error { return runInstance(i) })
		}

		if err := eg.Wait(); err != nil {
			return nil, 0, err
		}
	}

	maxIters := 0
	for _, it := range iterations {
		maxIters = max(maxIters, it)
	}

	return mergeInstances(outputs, k, idx.ds.Len()), maxIters, nil
}
