package experiment

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/example/covarray/covering"
	"github.com/example/covarray/experiment/domain"
	"github.com/example/covarray/internal/observability"
)

// jobKey labels a (Config, Stride) pair for metrics and result ordering.
func jobKey(cfg covering.Config, stride int) string {
	return fmt.Sprintf("t=%d,k=%d,v=%d,stride=%d", cfg.T, cfg.K, cfg.V, stride)
}

// Runner runs an experiment.Spec: every (Config, Stride) pair, Iterations
// times each, with a bounded pool of goroutines. Concurrency control is the
// semaphore-plus-WaitGroup pattern the dataflow executor in this toolkit's
// CI-orchestrator lineage used to run workflow tasks.
type Runner struct {
	MaxConcurrency int
	Metrics        *observability.Metrics
}

// NewRunner creates a Runner with the given concurrency limit. A limit of 0
// means unbounded (one goroutine per job).
func NewRunner(maxConcurrency int, metrics *observability.Metrics) *Runner {
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	return &Runner{MaxConcurrency: maxConcurrency, Metrics: metrics}
}

// job is one (Config, Stride) pair to sweep, Iterations times.
type job struct {
	index      int
	config     covering.Config
	stride     int
	iterations int
}

// Run executes spec and returns a Report with one Result per
// (Config, Stride) pair, preserving the order Configs x Strides were given
// in. If any iteration fails to build or fails verification, that job stops
// and Run returns an error once every other job has finished; partial
// results are not returned in that case.
func (r *Runner) Run(ctx context.Context, spec domain.Spec) (*domain.Report, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]job, 0, len(spec.Configs)*len(spec.Strides))
	for _, cfg := range spec.Configs {
		for _, stride := range spec.Strides {
			jobs = append(jobs, job{
				index:      len(jobs),
				config:     cfg,
				stride:     stride,
				iterations: spec.Iterations,
			})
		}
	}

	results := make([]domain.Result, len(jobs))

	var sem chan struct{}
	if r.MaxConcurrency > 0 {
		sem = make(chan struct{}, r.MaxConcurrency)
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(jobs))

	runJob := func(j job) {
		if sem != nil {
			sem <- struct{}{}
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sem != nil {
				defer func() { <-sem }()
			}

			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			default:
			}

			res, err := r.runOne(j, spec.Seed)
			if err != nil {
				errCh <- err
				return
			}
			results[j.index] = res
		}()
	}

	for _, j := range jobs {
		runJob(j)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	return &domain.Report{SpecID: spec.ID, Results: results}, nil
}

// runOne runs Iterations independent builds of one (Config, Stride) pair
// and reduces them to a domain.Result.
func (r *Runner) runOne(j job, baseSeed int64) (domain.Result, error) {
	cfg := j.config
	cfg.Stride = j.stride
	label := jobKey(cfg, j.stride)

	sizesCap := j.iterations
	if sizesCap > domain.MaxSizeHistory {
		sizesCap = domain.MaxSizeHistory
	}
	sizes := make([]int, 0, sizesCap)
	min := -1
	var sum float64
	var dropped int

	for iter := 0; iter < j.iterations; iter++ {
		seed := mixSeed(baseSeed, j.index, iter)
		rng := rand.New(rand.NewSource(seed))

		start := time.Now()
		arr, err := covering.Build(cfg, rng)
		r.Metrics.BuildDuration().WithLabels(label).Observe(time.Since(start))
		if err != nil {
			return domain.Result{}, fmt.Errorf("build %s iteration %d: %w", label, iter, err)
		}

		if !covering.Verify(arr) {
			r.Metrics.VerifyFailures().Inc()
			return domain.Result{}, fmt.Errorf("%w: %s iteration %d", domain.ErrVerificationFailed, label, iter)
		}

		n := arr.NumRows()
		if len(sizes) < domain.MaxSizeHistory {
			sizes = append(sizes, n)
		} else {
			if dropped == 0 {
				log.Printf("experiment: %s exceeded %d-sample size history, dropping further raw sizes (summary stats still cover all %d iterations)",
					label, domain.MaxSizeHistory, j.iterations)
			}
			dropped++
		}
		r.Metrics.ArraySize().Set(label, float64(n))
		r.Metrics.BuildsRun().WithLabels(label).Inc()
		r.Metrics.RowsAdded().WithLabels(label).ObserveValue(float64(arr.VerticalRowsAdded))
		r.Metrics.UncoveredRemaining().WithLabels(label).ObserveValue(float64(arr.UncoveredBeforeVertical))
		if min == -1 || n < min {
			min = n
		}
		sum += float64(n)
	}

	return domain.Result{
		Config:  cfg,
		Stride:  j.stride,
		Sizes:   sizes,
		Dropped: dropped,
		Min:     min,
		Mean:    sum / float64(j.iterations),
	}, nil
}

// mixSeed derives a per-iteration seed from the spec's base seed, the job
// index, and the iteration number using splitmix64-style mixing, so every
// iteration of every job gets an independent but reproducible stream.
func mixSeed(base int64, jobIndex, iter int) int64 {
	z := uint64(base) + uint64(jobIndex)*0x9E3779B97F4A7C15 + uint64(iter)*0xBF58476D1CE4E5B9
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return int64(z)
}
