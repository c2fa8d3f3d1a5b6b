package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/message"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/parallel"
	"github.com/gogpu/geom/internal/scene"
)

type sweepJob struct {
	curve int
	tol   float64
}

func runSweep(p *message.Printer, s *scene.Scene, opts options) error {
	tolerances := slices.Clone(s.Tolerances)
	slices.Sort(tolerances)
	slices.Reverse(tolerances)

	var jobs []sweepJob
	for i := range s.Curves {
		for _, tol := range tolerances {
			jobs = append(jobs, sweepJob{curve: i, tol: tol})
		}
	}

	pool := parallel.NewWorkerPool(opts.workers)
	defer pool.Close()

	// One buffer per job; jobs of one Map call never share a buffer.
	bufs := make([][]geom.Vec2, len(jobs))
	for i := range bufs {
		bufs[i] = make([]geom.Vec2, s.Capacity)
	}
	flatten := func(i int, j sweepJob) int {
		return s.Cubic(j.curve).Flatten(j.tol, bufs[i])
	}

	ctx := context.Background()
	counts, err := parallel.Map(ctx, pool, jobs, flatten)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(opts.n), "sweep")
	start := time.Now()
	for range opts.n {
		again, err := parallel.Map(ctx, pool, jobs, flatten)
		if err != nil {
			return err
		}
		if !slices.Equal(again, counts) {
			return fmt.Errorf("flattening is not deterministic: %v then %v", counts, again)
		}
		if err := bar.Add(1); err != nil {
			return fmt.Errorf("progress: %w", err)
		}
	}
	if err := bar.Close(); err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	elapsed := time.Since(start)

	for i, cv := range s.Curves {
		row := counts[i*len(tolerances) : (i+1)*len(tolerances)]
		for k := 1; k < len(row); k++ {
			if row[k] < row[k-1] {
				return fmt.Errorf("curve %s: %d points at tolerance %g but %d at %g",
					cv.Name, row[k], tolerances[k], row[k-1], tolerances[k-1])
			}
		}
		p.Printf("%-12s points %v\n", cv.Name, row)
	}

	total := opts.n * len(jobs)
	p.Printf("%d flattenings on %d workers in %v (%v each)\n",
		total, pool.Workers(), elapsed.Round(time.Millisecond), perOp(elapsed, total))
	return nil
}

func perOp(d time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return d / time.Duration(n)
}
