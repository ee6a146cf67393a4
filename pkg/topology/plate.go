package topology

import (
	"math"

	"github.com/mtkb13/framegen/pkg/errors"
	"github.com/mtkb13/framegen/pkg/model"
)

// PlateSpec describes a floodwall-style plate model built from unit
// (1×1) quad elements: a vertical wall lattice in the x=0 plane and a
// horizontal slab lattice at y=0, composed into one model with
// independently counted joints. The slab is centered on the wall along Z.
//
// Each unit cell contributes one [model.Plate] plus its bounding lattice
// edges as plate-edge members (shared edges emitted once), so the member
// graph of each lattice stays well formed even though plates, not line
// members, are the primary output.
type PlateSpec struct {
	WallHeight float64 `json:"wall_height" bson:"wall_height" toml:"wall_height"`
	WallWidth  float64 `json:"wall_width" bson:"wall_width" toml:"wall_width"`
	SlabLength float64 `json:"slab_length" bson:"slab_length" toml:"slab_length"`
	SlabWidth  float64 `json:"slab_width" bson:"slab_width" toml:"slab_width"`
}

// Kind returns KindPlate.
func (s PlateSpec) Kind() Kind { return KindPlate }

// divisions truncates a dimension to whole unit cells.
func divisions(v float64) int { return int(math.Floor(v)) }

// Validate rejects non-positive or oversized dimensions, and dimensions
// smaller than one unit cell, which would mesh into zero plates.
func (s PlateSpec) Validate() error {
	dims := []struct {
		name string
		v    float64
	}{
		{"wall height", s.WallHeight},
		{"wall width", s.WallWidth},
		{"slab length", s.SlabLength},
		{"slab width", s.SlabWidth},
	}
	for _, d := range dims {
		if err := errors.CheckPositiveDimension(d.name, d.v, MaxDivisions); err != nil {
			return err
		}
		if divisions(d.v) < 1 {
			return errors.New(errors.ErrCodeInfeasible,
				"%s %v is smaller than one unit plate", d.name, d.v)
		}
	}
	return nil
}

// Counts returns the exact model size. A w×h cell lattice has (w+1)(h+1)
// joints, w·h plates, and w(h+1)+h(w+1) edge members; the wall and slab
// lattices are tallied independently.
func (s PlateSpec) Counts() Counts {
	ww, wh := divisions(s.WallWidth), divisions(s.WallHeight)
	sl, sw := divisions(s.SlabLength), divisions(s.SlabWidth)

	return Counts{
		Joints:  (ww+1)*(wh+1) + (sl+1)*(sw+1),
		Members: ww*(wh+1) + wh*(ww+1) + sl*(sw+1) + sw*(sl+1),
		Plates:  ww*wh + sl*sw,
	}
}

// Generate synthesizes the plate model: first the wall lattice, then the
// slab lattice, each meshed in row-major (i, j) order exactly as counted.
func (s PlateSpec) Generate() (*model.Model, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	b := newBuilder(KindPlate, s.Counts())

	// Wall: x=0 plane, i along Z (width), j along Y (height).
	ww, wh := divisions(s.WallWidth), divisions(s.WallHeight)
	wallAt := func(i, j int) (float64, float64, float64) {
		return 0, float64(j), float64(i)
	}
	meshLattice(b, model.LandmarkWall, ww, wh, wallAt)

	// Slab: y=0 plane, i along X (width, away from the wall), j along Z
	// (length), centered on the wall width.
	sl, sw := divisions(s.SlabLength), divisions(s.SlabWidth)
	zOffset := -(float64(sl) - float64(ww)) / 2
	slabAt := func(i, j int) (float64, float64, float64) {
		return float64(i), 0, zOffset + float64(j)
	}
	meshLattice(b, model.LandmarkSlab, sw, sl, slabAt)

	return b.finish(s.Counts(), false)
}

// meshLattice creates an ni×nj unit-cell lattice: (ni+1)(nj+1) joints at
// positions given by at(i, j), one plate per cell with counter-clockwise
// corners (i,j), (i+1,j), (i+1,j+1), (i,j+1), and each lattice edge once
// as a plate-edge member.
func meshLattice(b *builder, landmark string, ni, nj int, at func(i, j int) (x, y, z float64)) {
	ids := make([][]int, ni+1)
	for i := 0; i <= ni; i++ {
		ids[i] = make([]int, nj+1)
		for j := 0; j <= nj; j++ {
			x, y, z := at(i, j)
			ids[i][j] = b.joint(x, y, z)
			b.mark(landmark, ids[i][j])
		}
	}

	for i := 0; i <= ni; i++ {
		for j := 0; j <= nj; j++ {
			if i < ni {
				b.member(ids[i][j], ids[i+1][j], model.RolePlateEdge)
			}
			if j < nj {
				b.member(ids[i][j], ids[i][j+1], model.RolePlateEdge)
			}
		}
	}

	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			b.plate(ids[i][j], ids[i+1][j], ids[i+1][j+1], ids[i][j+1])
		}
	}
}
