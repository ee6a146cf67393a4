package topology

import (
	"math"

	"github.com/mtkb13/framegen/pkg/errors"
	"github.com/mtkb13/framegen/pkg/model"
)

// PortalSpec describes a single rigid portal frame in the XY plane: two
// columns of the given height and one horizontal beam across the span.
type PortalSpec struct {
	Span   float64 `json:"span" bson:"span" toml:"span"`
	Height float64 `json:"height" bson:"height" toml:"height"`
}

// Kind returns KindPortal.
func (s PortalSpec) Kind() Kind { return KindPortal }

// Validate rejects non-positive or oversized dimensions.
func (s PortalSpec) Validate() error {
	if err := errors.CheckPositiveDimension("span", s.Span, MaxDimension); err != nil {
		return err
	}
	return errors.CheckPositiveDimension("height", s.Height, MaxDimension)
}

// Counts returns the fixed portal size: 4 joints, 3 members.
func (s PortalSpec) Counts() Counts {
	return Counts{Joints: 4, Members: 3}
}

// Generate synthesizes the portal frame.
func (s PortalSpec) Generate() (*model.Model, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	b := newBuilder(KindPortal, s.Counts())

	baseL := b.joint(0, 0, 0)
	baseR := b.joint(s.Span, 0, 0)
	topL := b.joint(0, s.Height, 0)
	topR := b.joint(s.Span, s.Height, 0)

	b.member(baseL, topL, model.RoleColumn)
	b.member(baseR, topR, model.RoleColumn)
	b.member(topL, topR, model.RoleRafter)

	b.mark(model.LandmarkBase, baseL, baseR)
	b.mark(model.LandmarkSupports, baseL, baseR)

	return b.finish(s.Counts(), true)
}

// WarehouseSpec describes a multi-bay rigid warehouse frame: Bays+1 gabled
// frame stations spaced BaySpacing apart along the X axis, each with five
// landmark joints (two bases, two eaves, one ridge). Y is up and Z runs
// across the building width.
//
// The three longitudinal lines (eave-left, ridge, eave-right) always
// connect adjacent stations; without them the stations would be isolated
// planar frames and the model would violate the connectivity invariant.
// Purlins additionally places intermediate roof lines on each slope, and
// Bracing adds an X-brace pair per slope per bay.
type WarehouseSpec struct {
	Bays        int     `json:"bays" bson:"bays" toml:"bays"`
	BaySpacing  float64 `json:"bay_spacing" bson:"bay_spacing" toml:"bay_spacing"`
	Width       float64 `json:"width" bson:"width" toml:"width"`
	EaveHeight  float64 `json:"eave_height" bson:"eave_height" toml:"eave_height"`
	RidgeHeight float64 `json:"ridge_height" bson:"ridge_height" toml:"ridge_height"`

	Purlins       bool    `json:"purlins" bson:"purlins" toml:"purlins"`
	PurlinSpacing float64 `json:"purlin_spacing,omitempty" bson:"purlin_spacing,omitempty" toml:"purlin_spacing"`
	Bracing       bool    `json:"bracing" bson:"bracing" toml:"bracing"`
}

// station holds one frame station's joint ids under symbolic names.
// Purlin joints are indexed by slope line, eave side toward ridge, so
// connectivity never depends on arithmetic id offsets.
type station struct {
	baseL, eaveL, ridge, eaveR, baseR int
	purlinL, purlinR                  []int
}

// Kind returns KindWarehouse.
func (s WarehouseSpec) Kind() Kind { return KindWarehouse }

// Validate rejects out-of-range dimensions and counts, a ridge at or
// below the eave, and, when purlins are requested, a non-positive spacing
// or one beyond twice the half-width.
func (s WarehouseSpec) Validate() error {
	if err := errors.CheckCount("bay count", s.Bays, 1, MaxBays); err != nil {
		return err
	}
	if err := errors.CheckPositiveDimension("bay spacing", s.BaySpacing, MaxDimension); err != nil {
		return err
	}
	if err := errors.CheckPositiveDimension("width", s.Width, MaxDimension); err != nil {
		return err
	}
	if err := errors.CheckPositiveDimension("eave height", s.EaveHeight, MaxDimension); err != nil {
		return err
	}
	if err := errors.CheckPositiveDimension("ridge height", s.RidgeHeight, MaxDimension); err != nil {
		return err
	}
	if err := errors.CheckExceeds("ridge height", s.RidgeHeight, "eave height", s.EaveHeight); err != nil {
		return err
	}
	if s.Purlins {
		if s.PurlinSpacing <= 0 {
			return errors.New(errors.ErrCodeInvalidSpacing,
				"purlin spacing must be positive when purlins are requested, got %v", s.PurlinSpacing)
		}
		if s.PurlinSpacing > s.Width {
			return errors.New(errors.ErrCodeInvalidSpacing,
				"purlin spacing %v exceeds building width %v", s.PurlinSpacing, s.Width)
		}
	}
	return nil
}

// purlinLines returns the number of intermediate purlin lines per slope:
// ⌊halfWidth/spacing⌋. Zero means the slope lines are omitted without
// error; the eave and ridge lines remain.
func (s WarehouseSpec) purlinLines() int {
	if !s.Purlins {
		return 0
	}
	return int(math.Floor(s.Width / 2 / s.PurlinSpacing))
}

// Counts returns the exact model size.
//
// With s stations (Bays+1) and n intermediate purlin lines per slope:
// joints are 5s + 2ns; members are 2s columns, 2s(n+1) rafter segments,
// (3+2n)·Bays longitudinal lines, and 4·Bays braces when bracing is on.
func (s WarehouseSpec) Counts() Counts {
	stations := s.Bays + 1
	n := s.purlinLines()

	joints := 5*stations + 2*n*stations
	members := 2*stations + 2*stations*(n+1) + (3+2*n)*s.Bays
	if s.Bracing {
		members += 4 * s.Bays
	}
	return Counts{Joints: joints, Members: members}
}

// Generate synthesizes the warehouse frame.
//
// Each station's joints are created base-to-base across the section, then
// purlin joints per slope from eave toward ridge. Rafters run through the
// purlin joints as chained segments, so every joint participates in the
// frame graph. Longitudinal members connect like-named joints of adjacent
// stations; bracing crosses each slope of each bay between eave and ridge
// of neighboring stations.
func (s WarehouseSpec) Generate() (*model.Model, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	stations := s.Bays + 1
	n := s.purlinLines()
	halfW := s.Width / 2
	b := newBuilder(KindWarehouse, s.Counts())

	sts := make([]station, stations)
	for i := range sts {
		x := float64(i) * s.BaySpacing

		st := station{
			baseL: b.joint(x, 0, 0),
			eaveL: b.joint(x, s.EaveHeight, 0),
			ridge: b.joint(x, s.RidgeHeight, halfW),
			eaveR: b.joint(x, s.EaveHeight, s.Width),
			baseR: b.joint(x, 0, s.Width),
		}

		// Intermediate purlin joints, eave toward ridge on each slope.
		for k := 1; k <= n; k++ {
			t := float64(k) / float64(n+1)
			y := s.EaveHeight + t*(s.RidgeHeight-s.EaveHeight)
			st.purlinL = append(st.purlinL, b.joint(x, y, t*halfW))
			st.purlinR = append(st.purlinR, b.joint(x, y, s.Width-t*halfW))
		}

		sts[i] = st
	}

	for _, st := range sts {
		b.member(st.baseL, st.eaveL, model.RoleColumn)
		b.member(st.baseR, st.eaveR, model.RoleColumn)

		// Rafters run through the purlin joints as chained segments.
		chainRafter(b, st.eaveL, st.purlinL, st.ridge)
		chainRafter(b, st.eaveR, st.purlinR, st.ridge)
	}

	for i := 0; i < s.Bays; i++ {
		cur, next := sts[i], sts[i+1]

		b.member(cur.eaveL, next.eaveL, model.RolePurlin)
		b.member(cur.ridge, next.ridge, model.RolePurlin)
		b.member(cur.eaveR, next.eaveR, model.RolePurlin)
		for k := 0; k < n; k++ {
			b.member(cur.purlinL[k], next.purlinL[k], model.RolePurlin)
			b.member(cur.purlinR[k], next.purlinR[k], model.RolePurlin)
		}

		if s.Bracing {
			b.member(cur.eaveL, next.ridge, model.RoleBracing)
			b.member(cur.ridge, next.eaveL, model.RoleBracing)
			b.member(cur.ridge, next.eaveR, model.RoleBracing)
			b.member(cur.eaveR, next.ridge, model.RoleBracing)
		}
	}

	for _, st := range sts {
		b.mark(model.LandmarkBase, st.baseL, st.baseR)
		b.mark(model.LandmarkSupports, st.baseL, st.baseR)
		b.mark(model.LandmarkEaveLeft, st.eaveL)
		b.mark(model.LandmarkEaveRight, st.eaveR)
		b.mark(model.LandmarkRidge, st.ridge)
	}

	return b.finish(s.Counts(), true)
}

// chainRafter emits rafter segments from the eave through the purlin
// joints to the ridge.
func chainRafter(b *builder, eave int, purlins []int, ridge int) {
	prev := eave
	for _, p := range purlins {
		b.member(prev, p, model.RoleRafter)
		prev = p
	}
	b.member(prev, ridge, model.RoleRafter)
}
