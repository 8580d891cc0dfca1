package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zeusync/colliders/internal/core/authoring"
	"github.com/zeusync/colliders/internal/core/blobstore"
	"github.com/zeusync/colliders/internal/core/observability/log"
	"github.com/zeusync/colliders/internal/core/systems/bake"
	"github.com/zeusync/colliders/pkg/concurrent"
)

// Pipeline loads collider documents, bakes every entity by its transform
// and renders the baked colliders.
type Pipeline struct {
	logger log.Log
	store  *blobstore.Store
	baker  *bake.System

	// mu serializes runs; each run starts from an empty blob store.
	mu sync.Mutex
}

func New(logger log.Log, store *blobstore.Store, baker *bake.System) *Pipeline {
	return &Pipeline{
		logger: logger,
		store:  store,
		baker:  baker,
	}
}

// RunFiles loads every document in parallel and bakes them together, so
// identical hulls and compounds are shared across files. Loading stops at
// the first file that cannot be read or decoded.
func (p *Pipeline) RunFiles(ctx context.Context, paths ...string) ([]*authoring.Document, error) {
	docs := make([]*authoring.Document, len(paths))
	err := concurrent.ForEach(ctx, paths, 0, func(_ context.Context, i int, path string) error {
		doc, err := authoring.LoadFile(path)
		if err != nil {
			return err
		}
		docs[i] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.RunAll(ctx, docs...)
}

// Run bakes doc.
func (p *Pipeline) Run(ctx context.Context, doc *authoring.Document) (*authoring.Document, error) {
	out, err := p.RunAll(ctx, doc)
	if len(out) == 0 {
		return nil, err
	}
	return out[0], err
}

// RunAll bakes docs in one batch and returns one baked document per input.
// When some entities fail, the returned documents still hold every entity,
// failed ones unbaked, alongside the joined bake errors.
func (p *Pipeline) RunAll(ctx context.Context, docs ...*authoring.Document) ([]*authoring.Document, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	p.store.Reset()

	var entities []authoring.Entity
	counts := make([]int, len(docs))
	for i, doc := range docs {
		built, err := doc.Build(p.store)
		if err != nil {
			return nil, err
		}
		counts[i] = len(built)
		entities = append(entities, built...)
	}

	bakeErr := p.baker.Bake(ctx, Jobs(entities))
	if ctx.Err() != nil {
		return nil, fmt.Errorf("bake interrupted: %w", ctx.Err())
	}

	stats := p.store.Stats()
	p.logger.Info("colliders baked",
		log.Int("documents", len(docs)),
		log.Int("entities", len(entities)),
		log.Int("convex_blobs", stats.ConvexBlobs),
		log.Int("compound_blobs", stats.CompoundBlobs),
		log.Uint64("blob_hits", stats.Hits),
		log.Duration("elapsed", time.Since(start)),
	)

	out := make([]*authoring.Document, len(docs))
	offset := 0
	for i, n := range counts {
		out[i] = authoring.DescribeAll(entities[offset : offset+n])
		offset += n
	}
	return out, bakeErr
}

// Jobs turns entities into bake jobs that write back into the entities.
func Jobs(entities []authoring.Entity) []bake.Job {
	jobs := make([]bake.Job, len(entities))
	for i := range entities {
		e := &entities[i]
		jobs[i] = bake.Job{
			Name:      e.Name,
			Collider:  &e.Collider,
			Transform: e.Transform,
			Legacy:    e.Legacy,
		}
	}
	return jobs
}
