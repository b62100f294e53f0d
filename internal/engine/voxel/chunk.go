package voxel

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/voxelheim/pkg/math"
)

// Chunk extents. X and Z span the footprint, Y is the full world height;
// every chunk starts at world Y=0.
const (
	ChunkWidth  = 16
	ChunkHeight = 256
	ChunkDepth  = 16
)

// dirtySignal is the shared mutable cell through which a chunk edit becomes
// visible at the world level without the world polling every chunk. The
// world owns one and hands it to each chunk it creates.
type dirtySignal struct {
	dirty bool
}

func (d *dirtySignal) mark() {
	d.dirty = true
}

// Chunk is a fixed-extent dense grid of optional voxels. Cells are stored
// flat, indexed x + y*16 + z*16*256.
type Chunk struct {
	originX, originZ int

	cells []*Voxel

	dirty     bool
	world     *dirtySignal
	instances []Instance
}

func newChunk(originX, originZ int, world *dirtySignal) *Chunk {
	return &Chunk{
		originX: originX,
		originZ: originZ,
		cells:   make([]*Voxel, ChunkWidth*ChunkHeight*ChunkDepth),
		world:   world,
	}
}

// Origin returns the world XZ of the chunk's local (0,0,0) corner.
func (c *Chunk) Origin() (x, z int) {
	return c.originX, c.originZ
}

func cellIndex(lx, ly, lz int) int {
	return lx + ly*ChunkWidth + lz*ChunkWidth*ChunkHeight
}

// LocalPosition translates world coordinates into chunk-local ones and
// reports whether they fall inside this chunk's footprint.
func (c *Chunk) LocalPosition(x, y, z int) (lx, ly, lz int, ok bool) {
	lx = x - c.originX
	ly = y
	lz = z - c.originZ
	ok = lx >= 0 && lx < ChunkWidth &&
		ly >= 0 && ly < ChunkHeight &&
		lz >= 0 && lz < ChunkDepth
	return
}

// VoxelAt returns the voxel at a world position, or nil if the cell is
// empty or outside this chunk.
func (c *Chunk) VoxelAt(x, y, z int) *Voxel {
	lx, ly, lz, ok := c.LocalPosition(x, y, z)
	if !ok {
		return nil
	}
	return c.cells[cellIndex(lx, ly, lz)]
}

// Place writes a voxel at a world position inside this chunk's footprint
// and updates the visibility masks of the cell and its in-chunk neighbors.
// A position outside the footprint means the world routed the edit to the
// wrong chunk; that is a bug, not bad input, and panics.
func (c *Chunk) Place(x, y, z int, color Color) {
	lx, ly, lz, ok := c.LocalPosition(x, y, z)
	if !ok {
		panic(fmt.Sprintf("voxel: place at (%d,%d,%d) outside chunk (%d,%d)",
			x, y, z, c.originX, c.originZ))
	}

	v := &Voxel{Color: color}
	c.cells[cellIndex(lx, ly, lz)] = v

	for s := Side(0); s < sideCount; s++ {
		if n := c.localNeighbor(lx, ly, lz, s); n != nil {
			v.sides[s] = true
			n.sides[s.Opposite()] = true
		}
	}

	c.markDirty()
}

// Remove clears a voxel at a world position inside this chunk's footprint,
// symmetric to Place: the neighbors' masks toward this cell are cleared.
func (c *Chunk) Remove(x, y, z int) {
	lx, ly, lz, ok := c.LocalPosition(x, y, z)
	if !ok {
		panic(fmt.Sprintf("voxel: remove at (%d,%d,%d) outside chunk (%d,%d)",
			x, y, z, c.originX, c.originZ))
	}

	c.cells[cellIndex(lx, ly, lz)] = nil

	for s := Side(0); s < sideCount; s++ {
		if n := c.localNeighbor(lx, ly, lz, s); n != nil {
			n.sides[s.Opposite()] = false
		}
	}

	c.markDirty()
}

// localNeighbor returns the occupant of the cell behind the given face, or
// nil when that cell is empty or lies outside the chunk. Chunks do not
// exchange boundary data, so a neighbor in an adjacent chunk always reads
// as absent here.
func (c *Chunk) localNeighbor(lx, ly, lz int, s Side) *Voxel {
	dx, dy, dz := s.Offset()
	nx, ny, nz := lx+dx, ly+dy, lz+dz
	if nx < 0 || nx >= ChunkWidth ||
		ny < 0 || ny >= ChunkHeight ||
		nz < 0 || nz >= ChunkDepth {
		return nil
	}
	return c.cells[cellIndex(nx, ny, nz)]
}

func (c *Chunk) markDirty() {
	c.dirty = true
	c.world.mark()
}

// Instances returns the chunk's visible voxel list, regenerating it only
// when the chunk is dirty. Fully enclosed voxels are skipped; cells in the
// six outer boundary layers are always emitted because true occupancy
// across the chunk seam is not tracked (known accuracy gap: a boundary
// voxel occluded by a neighboring chunk is still rendered).
func (c *Chunk) Instances() []Instance {
	if !c.dirty {
		return c.instances
	}

	c.instances = c.instances[:0]
	for lz := 0; lz < ChunkDepth; lz++ {
		for ly := 0; ly < ChunkHeight; ly++ {
			for lx := 0; lx < ChunkWidth; lx++ {
				v := c.cells[cellIndex(lx, ly, lz)]
				if v == nil {
					continue
				}
				if v.enclosed() && !isBoundary(lx, ly, lz) {
					continue
				}
				c.instances = append(c.instances, Instance{
					Position: [3]float32{
						float32(c.originX + lx),
						float32(ly),
						float32(c.originZ + lz),
					},
					Color: v.Color,
				})
			}
		}
	}
	c.dirty = false

	return c.instances
}

func isBoundary(lx, ly, lz int) bool {
	return lx == 0 || lx == ChunkWidth-1 ||
		ly == 0 || ly == ChunkHeight-1 ||
		lz == 0 || lz == ChunkDepth-1
}

// VoxelsWithinRadius returns the world positions of occupied cells within
// the given Euclidean distance of center. A bounding box of ceil(radius)
// cells per axis, clamped to the chunk extent, prefilters before the exact
// distance test.
func (c *Chunk) VoxelsWithinRadius(center math.Vec3, radius float32) [][3]int {
	if radius < 0 {
		return nil
	}
	r := int(gomath.Ceil(float64(radius)))
	cx, cy, cz := center.Round()

	lox, loy, loz, _ := c.LocalPosition(cx-r, cy-r, cz-r)
	hix, hiy, hiz, _ := c.LocalPosition(cx+r, cy+r, cz+r)
	lox, hix = clampRange(lox, hix, ChunkWidth)
	loy, hiy = clampRange(loy, hiy, ChunkHeight)
	loz, hiz = clampRange(loz, hiz, ChunkDepth)

	var found [][3]int
	for lz := loz; lz <= hiz; lz++ {
		for ly := loy; ly <= hiy; ly++ {
			for lx := lox; lx <= hix; lx++ {
				if c.cells[cellIndex(lx, ly, lz)] == nil {
					continue
				}
				pos := math.Vec3{
					X: float32(c.originX + lx),
					Y: float32(ly),
					Z: float32(c.originZ + lz),
				}
				if pos.Distance(center) <= radius {
					found = append(found, [3]int{c.originX + lx, ly, c.originZ + lz})
				}
			}
		}
	}
	return found
}

func clampRange(lo, hi, extent int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > extent-1 {
		hi = extent - 1
	}
	return lo, hi
}
