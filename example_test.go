package grann_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/grann"
	"github.com/hupe1980/grann/distance"
	"github.com/hupe1980/grann/filter"
	"github.com/hupe1980/grann/graph"
)

// Example demonstrates building a proximity graph and searching it.
func Example() {
	ctx := context.Background()

	ds, err := graph.NewDataset([][]float32{
		{0}, {1}, {2}, {3}, {4},
	})
	if err != nil {
		log.Fatal(err)
	}

	// Exact kNN graph; production datasets usually load a prebuilt graph
	// via graph.ReadIndexFile instead.
	g, err := graph.Build(ctx, ds, 2)
	if err != nil {
		log.Fatal(err)
	}

	idx, err := grann.New(ds, g,
		grann.WithMetric(distance.MetricEuclidean),
		grann.WithLogger(grann.NoopLogger()),
	)
	if err != nil {
		log.Fatal(err)
	}

	neighbors, err := idx.Search(ctx, []float32{2.1}, 2, grann.SearchParams{})
	if err != nil {
		log.Fatal(err)
	}

	for _, n := range neighbors {
		fmt.Printf("id=%d distance=%.1f\n", n.ID, n.Distance)
	}
	// Output:
	// id=2 distance=0.1
	// id=3 distance=0.9
}

// Example_filtered demonstrates restricting results with an admission filter.
func Example_filtered() {
	ctx := context.Background()

	ds, err := graph.NewDataset([][]float32{
		{0}, {1}, {2}, {3}, {4},
	})
	if err != nil {
		log.Fatal(err)
	}

	g, err := graph.Build(ctx, ds, 2)
	if err != nil {
		log.Fatal(err)
	}

	idx, err := grann.New(ds, g,
		grann.WithMetric(distance.MetricEuclidean),
		grann.WithLogger(grann.NoopLogger()),
	)
	if err != nil {
		log.Fatal(err)
	}

	neighbors, err := idx.Search(ctx, []float32{2.1}, 1, grann.SearchParams{
		Filter: filter.NewDenylist(2),
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("id=%d\n", neighbors[0].ID)
	// Output:
	// id=3
}
