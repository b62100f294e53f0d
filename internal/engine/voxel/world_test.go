package voxel

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestChunkKeyFor(t *testing.T) {
	tests := []struct {
		x, z int
		want ChunkKey
	}{
		{0, 0, ChunkKey{0, 0}},
		{15, 15, ChunkKey{0, 0}},
		{16, 0, ChunkKey{16, 0}},
		{31, 16, ChunkKey{16, 16}},
		{-1, -1, ChunkKey{-16, -16}},
		{-16, -17, ChunkKey{-16, -32}},
	}
	for _, tt := range tests {
		if got := ChunkKeyFor(tt.x, tt.z); got != tt.want {
			t.Errorf("ChunkKeyFor(%d, %d) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}
}

func TestPlaceRoutesToChunk(t *testing.T) {
	w := NewWorld(nil)

	w.Place(-1, 0, -1, red)
	if w.ChunkCount() != 1 {
		t.Fatalf("expected 1 chunk, got %d", w.ChunkCount())
	}

	c := w.chunks[ChunkKey{-16, -16}]
	if c == nil {
		t.Fatal("negative coordinates should land in the chunk at (-16,-16)")
	}
	if c.VoxelAt(-1, 0, -1) == nil {
		t.Error("voxel not stored in its chunk")
	}

	w.Place(0, 0, 0, red)
	if w.ChunkCount() != 2 {
		t.Errorf("expected a second chunk at (0,0), got %d chunks", w.ChunkCount())
	}
}

func TestRemoveThroughWorld(t *testing.T) {
	w := NewWorld(nil)
	w.Place(5, 10, 5, red)
	w.Remove(5, 10, 5)
	if w.chunks[ChunkKey{0, 0}].VoxelAt(5, 10, 5) != nil {
		t.Error("voxel still present after World.Remove")
	}
}

func TestFillRegionCounts(t *testing.T) {
	w := NewWorld(nil)
	w.FillRegion(0, 5, 0, red)

	c := w.chunks[ChunkKey{0, 0}]
	if c == nil {
		t.Fatal("fill region did not create the chunk")
	}

	occupied := 0
	for z := 0; z < ChunkDepth; z++ {
		for y := 0; y < ChunkHeight; y++ {
			for x := 0; x < ChunkWidth; x++ {
				if c.VoxelAt(x, y, z) != nil {
					occupied++
				}
			}
		}
	}
	if occupied != 16*5*16 {
		t.Fatalf("expected %d voxels, got %d", 16*5*16, occupied)
	}

	mesh := w.Mesh()
	if len(mesh) >= occupied {
		t.Errorf("mesh should hide interior voxels: %d instances for %d voxels",
			len(mesh), occupied)
	}

	// Interior of a 16x5x16 solid block: x,z in 1..14, y in 1..3.
	wantVisible := occupied - 14*14*3
	if len(mesh) != wantVisible {
		t.Errorf("expected %d visible instances, got %d", wantVisible, len(mesh))
	}

	// Topmost and boundary layers must be present.
	visible := make(map[[3]float32]bool, len(mesh))
	for _, inst := range mesh {
		visible[inst.Position] = true
	}
	for x := 0; x < ChunkWidth; x++ {
		for z := 0; z < ChunkDepth; z++ {
			if !visible[[3]float32{float32(x), 4, float32(z)}] {
				t.Fatalf("top layer voxel (%d,4,%d) missing from mesh", x, z)
			}
			if !visible[[3]float32{float32(x), 0, float32(z)}] {
				t.Fatalf("bottom boundary voxel (%d,0,%d) missing from mesh", x, z)
			}
		}
	}
}

func TestFillRegionReplacementWarnsOnce(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	w := NewWorld(zap.New(core))

	if replaced := w.FillRegion(3, 4, 3, red); replaced {
		t.Error("first fill should not report replacement")
	}
	if logs.Len() != 0 {
		t.Errorf("first fill logged %d warnings, want 0", logs.Len())
	}

	if replaced := w.FillRegion(0, 4, 0, red); !replaced {
		t.Error("second fill of the same chunk key should report replacement")
	}
	if logs.Len() != 1 {
		t.Errorf("duplicate fill logged %d warnings, want exactly 1", logs.Len())
	}
}

func TestMeshCachedUntilMutation(t *testing.T) {
	w := NewWorld(nil)
	w.Place(1, 1, 1, red)

	first := w.Mesh()
	if len(first) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(first))
	}
	if w.dirty.dirty {
		t.Error("world should be clean after Mesh")
	}

	if again := w.Mesh(); len(again) != 1 {
		t.Errorf("cached mesh changed: %d instances", len(again))
	}

	w.Place(2, 2, 2, Color{0, 1, 0, 1})
	if !w.dirty.dirty {
		t.Error("place should mark the world dirty through the shared signal")
	}
	if updated := w.Mesh(); len(updated) != 2 {
		t.Errorf("expected 2 instances after second place, got %d", len(updated))
	}
}

func TestChunkEditVisibleAtWorldLevel(t *testing.T) {
	// The dirty signal is shared, not copied: editing through a chunk
	// handle obtained earlier must still be visible to World.Mesh.
	w := NewWorld(nil)
	w.Place(0, 0, 0, red)
	w.Mesh()

	c := w.chunks[ChunkKey{0, 0}]
	c.Place(1, 0, 0, red)

	if got := len(w.Mesh()); got != 2 {
		t.Errorf("expected mesh rebuild after direct chunk edit, got %d instances", got)
	}
}

func TestUntouchedChunksSkipRebuild(t *testing.T) {
	w := NewWorld(nil)
	w.Place(0, 0, 0, red)
	w.Place(100, 0, 100, red)
	w.Mesh()

	// Only one chunk is touched; the other must keep its cached list.
	w.Place(1, 0, 0, red)

	far := w.chunks[ChunkKeyFor(100, 100)]
	if far.dirty {
		t.Error("untouched chunk should not be dirty")
	}
	if got := len(w.Mesh()); got != 3 {
		t.Errorf("expected 3 instances, got %d", got)
	}
}
