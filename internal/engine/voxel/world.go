package voxel

import (
	"go.uber.org/zap"

	"github.com/Faultbox/voxelheim/pkg/math"
)

// ChunkKey identifies a chunk by the world XZ of its minimum corner, so a
// lookup from any world coordinate is a single floor division per axis.
type ChunkKey struct {
	X, Z int
}

// ChunkKeyFor returns the key of the chunk whose footprint contains the
// world column (x, z). Floor division keeps negative coordinates in the
// correct chunk.
func ChunkKeyFor(x, z int) ChunkKey {
	return ChunkKey{
		X: math.FloorDiv(x, ChunkWidth) * ChunkWidth,
		Z: math.FloorDiv(z, ChunkDepth) * ChunkDepth,
	}
}

// World is a sparse map of chunks. It routes edits to the owning chunk,
// aggregates dirtiness through a signal shared with every chunk, and caches
// the concatenated mesh between mutations. Chunks are created on first use
// and never destroyed.
type World struct {
	chunks map[ChunkKey]*Chunk
	dirty  *dirtySignal
	mesh   []Instance
	log    *zap.Logger
}

// NewWorld creates an empty world. log may be nil.
func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		chunks: make(map[ChunkKey]*Chunk),
		dirty:  &dirtySignal{},
		log:    log,
	}
}

// ChunkCount returns the number of resident chunks.
func (w *World) ChunkCount() int {
	return len(w.chunks)
}

// chunkFor returns the chunk owning the world column (x, z), creating it on
// first use. Creation alone marks the world dirty.
func (w *World) chunkFor(x, z int) *Chunk {
	key := ChunkKeyFor(x, z)
	c, ok := w.chunks[key]
	if !ok {
		c = newChunk(key.X, key.Z, w.dirty)
		w.chunks[key] = c
		w.dirty.mark()
	}
	return c
}

// Place writes a voxel at a world position.
func (w *World) Place(x, y, z int, color Color) {
	w.chunkFor(x, z).Place(x, y, z, color)
}

// Remove clears the voxel at a world position.
func (w *World) Remove(x, y, z int) {
	w.chunkFor(x, z).Remove(x, y, z)
}

// FillRegion bulk-creates one full chunk column: the chunk containing
// (x, z) is filled solid from Y=0 up to height. An existing chunk at the
// same key is replaced; that is survivable but suspicious, so it is logged
// once per call and reported to the caller.
func (w *World) FillRegion(x, height, z int, color Color) (replaced bool) {
	key := ChunkKeyFor(x, z)
	if _, ok := w.chunks[key]; ok {
		replaced = true
		w.log.Warn("fill region replacing resident chunk",
			zap.Int("chunkX", key.X),
			zap.Int("chunkZ", key.Z),
		)
	}

	c := newChunk(key.X, key.Z, w.dirty)
	w.chunks[key] = c
	w.dirty.mark()

	if height > ChunkHeight {
		height = ChunkHeight
	}
	for cy := 0; cy < height; cy++ {
		for cz := 0; cz < ChunkDepth; cz++ {
			for cx := 0; cx < ChunkWidth; cx++ {
				c.Place(key.X+cx, cy, key.Z+cz, color)
			}
		}
	}
	return replaced
}

// Mesh returns the instance list of every visible voxel. The result is
// cached; a full pass over the chunks happens only when some mutation has
// marked the shared dirty signal since the last call, and each chunk then
// skips its own rebuild unless it was itself touched.
func (w *World) Mesh() []Instance {
	if !w.dirty.dirty {
		return w.mesh
	}

	w.mesh = w.mesh[:0]
	for _, c := range w.chunks {
		w.mesh = append(w.mesh, c.Instances()...)
	}
	w.dirty.dirty = false

	return w.mesh
}
