package topology

import (
	"math"

	"github.com/mtkb13/framegen/pkg/errors"
	"github.com/mtkb13/framegen/pkg/model"
)

// TrussSpec describes a planar truss in the XY plane: bottom chord along
// the X axis at y=0, top chord at y=Height (or on the sine arch for
// bowstring), Z fixed at 0.
//
// Supported kinds are [KindWarren], [KindPratt], [KindHowe], and
// [KindBowstring].
type TrussSpec struct {
	Type   Kind    `json:"type" bson:"type" toml:"type"`
	Span   float64 `json:"span" bson:"span" toml:"span"`
	Height float64 `json:"height" bson:"height" toml:"height"`
	Panels int     `json:"panels" bson:"panels" toml:"panels"`
}

// Kind returns the truss variant.
func (s TrussSpec) Kind() Kind { return s.Type }

// Validate rejects out-of-range dimensions, panel counts outside
// [1, MaxPanels], and unknown truss kinds. No geometry is produced for an
// invalid spec.
func (s TrussSpec) Validate() error {
	switch s.Type {
	case KindWarren, KindPratt, KindHowe, KindBowstring:
	default:
		return errors.New(errors.ErrCodeInvalidKind, "unknown truss kind %q", s.Type)
	}
	if err := errors.CheckPositiveDimension("span", s.Span, MaxDimension); err != nil {
		return err
	}
	if err := errors.CheckPositiveDimension("height", s.Height, MaxDimension); err != nil {
		return err
	}
	return errors.CheckCount("panel count", s.Panels, 1, MaxPanels)
}

// Counts returns the exact model size for the spec.
//
// With p panels: Warren has 2p+1 joints and 4p-1 members (p bottom chords,
// p-1 top chords, 2p diagonals). Pratt, Howe, and bowstring have 2(p+1)
// joints and 4p+1 members (p bottom chords, p top chords, p+1 verticals,
// p diagonals).
func (s TrussSpec) Counts() Counts {
	p := s.Panels
	if s.Type == KindWarren {
		return Counts{Joints: 2*p + 1, Members: 4*p - 1}
	}
	return Counts{Joints: 2 * (p + 1), Members: 4*p + 1}
}

// Generate synthesizes the truss model.
//
// Bottom-chord joints sit at uniform span fractions i/p·span. Warren top
// joints sit at panel centers; Pratt and Howe top joints mirror the bottom
// chord at full height; bowstring top joints follow height·sin(i/p·π), so
// both end top joints coincide positionally with the bottom chord while
// keeping their own ids.
//
// Diagonal direction for Pratt and Howe flips at midspan. The tie-break
// for odd panel counts is fixed: the extra panel counts as "before
// midspan" (integer division p/2), so the flip happens at panel ⌊p/2⌋.
func (s TrussSpec) Generate() (*model.Model, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	p := s.Panels
	panelWidth := s.Span / float64(p)
	b := newBuilder(s.Type, s.Counts())

	bottom := make([]int, 0, p+1)
	for i := 0; i <= p; i++ {
		bottom = append(bottom, b.joint(float64(i)*panelWidth, 0, 0))
	}

	var top []int
	switch s.Type {
	case KindWarren:
		for i := 0; i < p; i++ {
			top = append(top, b.joint((float64(i)+0.5)*panelWidth, s.Height, 0))
		}
	case KindBowstring:
		for i := 0; i <= p; i++ {
			// sin(0) and sin(pi) leave float residue; the arch ends
			// must land exactly on the bottom chord.
			y := 0.0
			if i > 0 && i < p {
				y = s.Height * math.Sin(float64(i)/float64(p)*math.Pi)
			}
			top = append(top, b.joint(float64(i)*panelWidth, y, 0))
		}
	default: // Pratt, Howe
		for i := 0; i <= p; i++ {
			top = append(top, b.joint(float64(i)*panelWidth, s.Height, 0))
		}
	}

	for i := 0; i < p; i++ {
		b.member(bottom[i], bottom[i+1], model.RoleChordBottom)
	}
	for i := 0; i < len(top)-1; i++ {
		b.member(top[i], top[i+1], model.RoleChordTop)
	}

	switch s.Type {
	case KindWarren:
		// Continuous zig-zag, two diagonals per panel, no verticals.
		for i := 0; i < p; i++ {
			b.member(bottom[i], top[i], model.RoleDiagonal)
			b.member(top[i], bottom[i+1], model.RoleDiagonal)
		}
	case KindBowstring:
		for i := 0; i <= p; i++ {
			b.member(bottom[i], top[i], model.RoleVertical)
		}
		for i := 0; i < p; i++ {
			b.member(bottom[i], top[i+1], model.RoleDiagonal)
		}
	default: // Pratt, Howe
		for i := 0; i <= p; i++ {
			b.member(bottom[i], top[i], model.RoleVertical)
		}
		half := p / 2 // odd counts put the extra panel before midspan
		for i := 0; i < p; i++ {
			descending := i < half // Pratt: diagonals descend toward midspan
			if s.Type == KindHowe {
				descending = !descending
			}
			if descending {
				b.member(top[i], bottom[i+1], model.RoleDiagonal)
			} else {
				b.member(bottom[i], top[i+1], model.RoleDiagonal)
			}
		}
	}

	b.mark(model.LandmarkBottomChord, bottom...)
	b.mark(model.LandmarkTopChord, top...)
	b.mark(model.LandmarkSupports, bottom[0], bottom[p])

	return b.finish(s.Counts(), true)
}
