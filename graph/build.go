package graph

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/grann/distance"
)

// BuildOptions configures Build.
type BuildOptions struct {
	// Metric is the distance used to rank neighbors.
	Metric distance.Metric

	// Parallelism bounds the number of concurrent workers.
	// Defaults to GOMAXPROCS.
	Parallelism int

	// Logger, when non-nil, receives an info-level record per completed
	// build.
	Logger *slog.Logger
}

// Build constructs an exact kNN graph of the given degree by brute force:
// every node is connected to its degree nearest other nodes under the metric.
// Cost is O(n^2 * dim); intended for datasets where build time is not a
// concern, or as a reference for external graph builders.
func Build(ctx context.Context, ds *Dataset, degree int, optFns ...func(o *BuildOptions)) (*Graph, error) {
	opts := BuildOptions{
		Metric:      distance.MetricSquaredL2,
		Parallelism: runtime.GOMAXPROCS(0),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	n := ds.Len()
	if degree < 0 || degree >= n {
		return nil, fmt.Errorf("degree %d out of range [0,%d)", degree, n)
	}

	distFn, err := opts.Metric.Func()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	adj := make([]uint32, n*degree)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Parallelism, 1))

	// One task per source node keeps the scratch per goroutine trivially small.
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			nearestInto(ds, distFn, uint32(i), adj[i*degree:(i+1)*degree])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Logger != nil {
		opts.Logger.InfoContext(ctx, "graph built",
			"nodes", n,
			"degree", degree,
			"duration", time.Since(start),
		)
	}

	return &Graph{adj: adj, degree: degree, n: n}, nil
}

// nearestInto writes the ids of the len(out) nearest nodes to src (excluding
// src itself) into out, closest first. Ties break by id ascending.
func nearestInto(ds *Dataset, distFn distance.Func, src uint32, out []uint32) {
	k := len(out)
	if k == 0 {
		return
	}

	type best struct {
		dist float32
		id   uint32
	}

	bests := make([]best, 0, k)
	q := ds.Vector(src)

	for j := 0; j < ds.Len(); j++ {
		id := uint32(j)
		if id == src {
			continue
		}

		d := distFn(q, ds.Vector(id))

		if len(bests) == k && !less(d, id, bests[k-1].dist, bests[k-1].id) {
			continue
		}

		// Insertion sort into the fixed-size best list.
		pos := len(bests)
		if len(bests) < k {
			bests = append(bests, best{})
		} else {
			pos = k - 1
		}

		for pos > 0 && less(d, id, bests[pos-1].dist, bests[pos-1].id) {
			bests[pos] = bests[pos-1]
			pos--
		}

		bests[pos] = best{dist: d, id: id}
	}

	for j := range out {
		out[j] = bests[j].id
	}
}

func less(d1 float32, id1 uint32, d2 float32, id2 uint32) bool {
	if d1 != d2 {
		return d1 < d2
	}
	return id1 < id2
}
