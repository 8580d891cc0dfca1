package blobstore

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/zeusync/colliders/internal/core/observability/log"
	"github.com/zeusync/colliders/internal/core/systems/physics"
)

// Store interns convex and compound blobs by content so that every collider
// built from the same points or children shares one immutable blob.
type Store struct {
	logger log.Log

	mu       sync.RWMutex
	convex   map[uint64][]*physics.ConvexColliderBlob
	compound map[uint64][]*physics.CompoundColliderBlob
	hits     uint64
}

// Stats reports the store contents.
type Stats struct {
	ConvexBlobs   int
	CompoundBlobs int
	Hits          uint64
}

func New(logger log.Log) *Store {
	return &Store{
		logger:   logger,
		convex:   make(map[uint64][]*physics.ConvexColliderBlob),
		compound: make(map[uint64][]*physics.CompoundColliderBlob),
	}
}

// Convex builds a blob from points, or returns the stored blob with the same
// points.
func (s *Store) Convex(points []mgl32.Vec3) (*physics.ConvexColliderBlob, error) {
	blob, err := physics.NewConvexColliderBlob(points)
	if err != nil {
		return nil, err
	}
	return s.InternConvex(blob), nil
}

// InternConvex returns the canonical blob equal to blob, storing blob if it
// is the first of its content.
func (s *Store) InternConvex(blob *physics.ConvexColliderBlob) *physics.ConvexColliderBlob {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.convex[blob.Hash()] {
		if existing.Equal(blob) {
			s.hits++
			return existing
		}
	}
	s.convex[blob.Hash()] = append(s.convex[blob.Hash()], blob)
	s.logger.Debug("convex blob stored",
		log.Stringer("id", blob.ID()),
		log.Int("points", blob.Len()),
	)
	return blob
}

// Compound builds a blob from children, or returns the stored blob with the
// same children.
func (s *Store) Compound(children []physics.CompoundChild) (*physics.CompoundColliderBlob, error) {
	blob, err := physics.NewCompoundColliderBlob(children)
	if err != nil {
		return nil, err
	}
	return s.InternCompound(blob), nil
}

// InternCompound returns the canonical blob equal to blob, storing blob if
// it is the first of its content.
func (s *Store) InternCompound(blob *physics.CompoundColliderBlob) *physics.CompoundColliderBlob {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.compound[blob.Hash()] {
		if existing.Equal(blob) {
			s.hits++
			return existing
		}
	}
	s.compound[blob.Hash()] = append(s.compound[blob.Hash()], blob)
	s.logger.Debug("compound blob stored",
		log.Stringer("id", blob.ID()),
		log.Int("children", blob.Len()),
	)
	return blob
}

// Reset drops every stored blob. Blobs already handed out stay valid.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.convex)
	clear(s.compound)
	s.hits = 0
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{Hits: s.hits}
	for _, bucket := range s.convex {
		stats.ConvexBlobs += len(bucket)
	}
	for _, bucket := range s.compound {
		stats.CompoundBlobs += len(bucket)
	}
	return stats
}
