package writer

import (
	"context"
	"iter"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Job is one file to write
type Job struct {
	Path   string
	Values iter.Seq[int64]
}

// Pool writes independent jobs with at most Workers files in flight
type Pool struct {
	Workers int
	Stats   *Stats

	// OnStart and OnDone are never called concurrently
	OnStart func(job Job)
	OnDone  func(result *Result)

	mu sync.Mutex
}

func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		Workers: workers,
		Stats:   NewStats(),
	}
}

// Run writes every job and returns the results in job order. The first
// failure cancels the jobs still pending.
func (p *Pool) Run(ctx context.Context, jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.notify(func() {
				if p.OnStart != nil {
					p.OnStart(job)
				}
			})

			result, err := WriteInts(gctx, job.Path, job.Values)
			if err != nil {
				p.Stats.IncrementFailed()
				return err
			}

			results[i] = result
			p.Stats.Add(result)
			p.notify(func() {
				if p.OnDone != nil {
					p.OnDone(result)
				}
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Pool) notify(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn()
}
