package bake

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zeusync/colliders/internal/core/observability/log"
	"github.com/zeusync/colliders/internal/core/systems"
	"github.com/zeusync/colliders/internal/core/systems/physics"
	"github.com/zeusync/colliders/pkg/concurrent"
)

var _ systems.System = (*System)(nil)

// ErrNilCollider is returned for a job without a collider.
var ErrNilCollider = errors.New("job has no collider")

// Job bakes one collider in place.
type Job struct {
	Name     string
	Collider *physics.Collider
	// Transform supplies the scale and stretch to bake.
	Transform physics.TransformQvvs
	// Legacy, when set, is applied through physics.ScaleCollider instead of
	// the transform's scale and stretch.
	Legacy *physics.PhysicsScale
}

// JobError reports a failed job.
type JobError struct {
	Index int
	Name  string
	Err   error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("bake job %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// Options configures a System.
type Options struct {
	// Workers bounds the number of concurrent jobs. Below 1 means GOMAXPROCS.
	Workers int
}

// System bakes scale and stretch into many colliders in parallel. Each job
// owns its collider, so no two workers ever touch the same value.
type System struct {
	logger  log.Log
	workers int

	mu      sync.Mutex
	metrics systems.Metrics
}

func NewSystem(logger log.Log, opts Options) *System {
	return &System{
		logger:  logger.With(log.String("system", "collider_bake")),
		workers: opts.Workers,
	}
}

func (s *System) Name() string {
	return "collider_bake"
}

func (s *System) GetMetrics() systems.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

// Bake runs every job. A failed job leaves its collider unchanged and does
// not stop the others; all failures are returned joined as *JobError values.
func (s *System) Bake(ctx context.Context, jobs []Job) error {
	start := time.Now()

	errs, ctxErr := concurrent.ForEachAll(ctx, jobs, s.workers, func(_ context.Context, _ int, job Job) error {
		return bakeJob(job)
	})

	var failures []error
	for i, err := range errs {
		if err == nil {
			continue
		}
		jobErr := &JobError{Index: i, Name: jobs[i].Name, Err: err}
		failures = append(failures, jobErr)
		s.logger.Warn("collider bake failed",
			log.Int("job", i),
			log.String("name", jobs[i].Name),
			log.Error(err),
		)
	}

	elapsed := time.Since(start)
	var lastErr error
	if len(failures) > 0 {
		lastErr = failures[len(failures)-1]
	}
	s.mu.Lock()
	s.metrics.Record(elapsed, len(jobs), len(failures), lastErr)
	s.mu.Unlock()

	s.logger.Debug("collider bake finished",
		log.Int("jobs", len(jobs)),
		log.Int("failed", len(failures)),
		log.Duration("elapsed", elapsed),
	)

	if ctxErr != nil {
		return ctxErr
	}
	return errors.Join(failures...)
}

func bakeJob(job Job) error {
	if job.Collider == nil {
		return ErrNilCollider
	}
	if job.Legacy != nil {
		scaled, err := physics.ScaleCollider(*job.Collider, *job.Legacy)
		if err != nil {
			return err
		}
		*job.Collider = scaled
		return nil
	}
	scale, stretch := job.Transform.ScaleStretch()
	return physics.ScaleStretch(job.Collider, scale, stretch)
}
