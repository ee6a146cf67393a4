package topology

import (
	"github.com/mtkb13/framegen/pkg/errors"
	"github.com/mtkb13/framegen/pkg/model"
)

// GridSpec describes an orthogonal multi-story building grid: a regular
// lattice of joints indexed by (level, bay-x, bay-z) with beams along both
// horizontal axes at every elevated level and columns between levels.
//
// Beams along X carry role chord-top and beams along Z carry role
// chord-bottom, keeping the two orthogonal beam families separately
// addressable for section and load assignment (girders versus joists).
type GridSpec struct {
	BaysX       int     `json:"bays_x" bson:"bays_x" toml:"bays_x"`
	BaysZ       int     `json:"bays_z" bson:"bays_z" toml:"bays_z"`
	Stories     int     `json:"stories" bson:"stories" toml:"stories"`
	BayWidth    float64 `json:"bay_width" bson:"bay_width" toml:"bay_width"`
	BayDepth    float64 `json:"bay_depth" bson:"bay_depth" toml:"bay_depth"`
	StoryHeight float64 `json:"story_height" bson:"story_height" toml:"story_height"`
}

// Kind returns KindGrid.
func (s GridSpec) Kind() Kind { return KindGrid }

// Validate rejects out-of-range bay counts, story counts, and dimensions.
func (s GridSpec) Validate() error {
	if err := errors.CheckCount("bays along x", s.BaysX, 1, MaxBays); err != nil {
		return err
	}
	if err := errors.CheckCount("bays along z", s.BaysZ, 1, MaxBays); err != nil {
		return err
	}
	if err := errors.CheckCount("stories", s.Stories, 1, MaxStories); err != nil {
		return err
	}
	if err := errors.CheckPositiveDimension("bay width", s.BayWidth, MaxDimension); err != nil {
		return err
	}
	if err := errors.CheckPositiveDimension("bay depth", s.BayDepth, MaxDimension); err != nil {
		return err
	}
	return errors.CheckPositiveDimension("story height", s.StoryHeight, MaxDimension)
}

// Counts returns the exact model size.
//
// With nx×nz bays and st stories: joints are (st+1)(nx+1)(nz+1); members
// are st·nx·(nz+1) X-beams, st·nz·(nx+1) Z-beams (ground level has no
// beams), and st·(nx+1)(nz+1) columns.
func (s GridSpec) Counts() Counts {
	cols := (s.BaysX + 1) * (s.BaysZ + 1)
	joints := (s.Stories + 1) * cols
	members := s.Stories*(s.BaysX*(s.BaysZ+1)+s.BaysZ*(s.BaysX+1)) + s.Stories*cols
	return Counts{Joints: joints, Members: members}
}

// Generate synthesizes the building grid. Joints are created level by
// level in row-major (i, j) order; beams connect horizontally adjacent
// joints at each elevated level, columns connect vertically adjacent
// levels at every grid position.
func (s GridSpec) Generate() (*model.Model, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	b := newBuilder(KindGrid, s.Counts())

	type cell struct{ level, i, j int }
	ids := make(map[cell]int)

	for level := 0; level <= s.Stories; level++ {
		y := float64(level) * s.StoryHeight
		for i := 0; i <= s.BaysX; i++ {
			for j := 0; j <= s.BaysZ; j++ {
				id := b.joint(float64(i)*s.BayWidth, y, float64(j)*s.BayDepth)
				ids[cell{level, i, j}] = id
				if level == 0 {
					b.mark(model.LandmarkBase, id)
					b.mark(model.LandmarkSupports, id)
				}
			}
		}
	}

	for level := 1; level <= s.Stories; level++ {
		for i := 0; i <= s.BaysX; i++ {
			for j := 0; j <= s.BaysZ; j++ {
				from := ids[cell{level, i, j}]
				if i < s.BaysX {
					b.member(from, ids[cell{level, i + 1, j}], model.RoleChordTop)
				}
				if j < s.BaysZ {
					b.member(from, ids[cell{level, i, j + 1}], model.RoleChordBottom)
				}
			}
		}
	}

	for level := 0; level < s.Stories; level++ {
		for i := 0; i <= s.BaysX; i++ {
			for j := 0; j <= s.BaysZ; j++ {
				b.member(ids[cell{level, i, j}], ids[cell{level + 1, i, j}], model.RoleColumn)
			}
		}
	}

	return b.finish(s.Counts(), true)
}
