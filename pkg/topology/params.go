package topology

import (
	"github.com/mtkb13/framegen/pkg/errors"
	"github.com/mtkb13/framegen/pkg/model"
)

// Params is the flat union of every spec's parameters, used where
// topology kind is chosen at runtime: TOML presets, the interactive
// designer, and the HTTP API. Fields irrelevant to the chosen kind are
// ignored; [Params.Topology] maps the set onto the kind's spec struct.
type Params struct {
	Kind Kind `json:"kind" bson:"kind" toml:"kind"`

	// Trusses and the portal frame.
	Span   float64 `json:"span,omitempty" bson:"span,omitempty" toml:"span"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty" toml:"height"`
	Panels int     `json:"panels,omitempty" bson:"panels,omitempty" toml:"panels"`

	// Warehouse frames.
	Bays          int     `json:"bays,omitempty" bson:"bays,omitempty" toml:"bays"`
	BaySpacing    float64 `json:"bay_spacing,omitempty" bson:"bay_spacing,omitempty" toml:"bay_spacing"`
	Width         float64 `json:"width,omitempty" bson:"width,omitempty" toml:"width"`
	EaveHeight    float64 `json:"eave_height,omitempty" bson:"eave_height,omitempty" toml:"eave_height"`
	RidgeHeight   float64 `json:"ridge_height,omitempty" bson:"ridge_height,omitempty" toml:"ridge_height"`
	Purlins       bool    `json:"purlins,omitempty" bson:"purlins,omitempty" toml:"purlins"`
	PurlinSpacing float64 `json:"purlin_spacing,omitempty" bson:"purlin_spacing,omitempty" toml:"purlin_spacing"`
	Bracing       bool    `json:"bracing,omitempty" bson:"bracing,omitempty" toml:"bracing"`

	// Building grids.
	BaysX       int     `json:"bays_x,omitempty" bson:"bays_x,omitempty" toml:"bays_x"`
	BaysZ       int     `json:"bays_z,omitempty" bson:"bays_z,omitempty" toml:"bays_z"`
	Stories     int     `json:"stories,omitempty" bson:"stories,omitempty" toml:"stories"`
	BayWidth    float64 `json:"bay_width,omitempty" bson:"bay_width,omitempty" toml:"bay_width"`
	BayDepth    float64 `json:"bay_depth,omitempty" bson:"bay_depth,omitempty" toml:"bay_depth"`
	StoryHeight float64 `json:"story_height,omitempty" bson:"story_height,omitempty" toml:"story_height"`

	// Plate meshes.
	WallHeight float64 `json:"wall_height,omitempty" bson:"wall_height,omitempty" toml:"wall_height"`
	WallWidth  float64 `json:"wall_width,omitempty" bson:"wall_width,omitempty" toml:"wall_width"`
	SlabLength float64 `json:"slab_length,omitempty" bson:"slab_length,omitempty" toml:"slab_length"`
	SlabWidth  float64 `json:"slab_width,omitempty" bson:"slab_width,omitempty" toml:"slab_width"`
}

// Topology resolves the parameter set into the spec struct for its kind.
// The spec is not validated here; callers run Validate or Generate, which
// validates first.
func (p Params) Topology() (Topology, error) {
	switch p.Kind {
	case KindWarren, KindPratt, KindHowe, KindBowstring:
		return TrussSpec{Type: p.Kind, Span: p.Span, Height: p.Height, Panels: p.Panels}, nil
	case KindPortal:
		return PortalSpec{Span: p.Span, Height: p.Height}, nil
	case KindWarehouse:
		return WarehouseSpec{
			Bays:          p.Bays,
			BaySpacing:    p.BaySpacing,
			Width:         p.Width,
			EaveHeight:    p.EaveHeight,
			RidgeHeight:   p.RidgeHeight,
			Purlins:       p.Purlins,
			PurlinSpacing: p.PurlinSpacing,
			Bracing:       p.Bracing,
		}, nil
	case KindGrid:
		return GridSpec{
			BaysX:       p.BaysX,
			BaysZ:       p.BaysZ,
			Stories:     p.Stories,
			BayWidth:    p.BayWidth,
			BayDepth:    p.BayDepth,
			StoryHeight: p.StoryHeight,
		}, nil
	case KindPlate:
		return PlateSpec{
			WallHeight: p.WallHeight,
			WallWidth:  p.WallWidth,
			SlabLength: p.SlabLength,
			SlabWidth:  p.SlabWidth,
		}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidKind, "unknown topology kind %q", p.Kind)
	}
}

// Generate resolves and generates in one step.
func Generate(p Params) (*model.Model, error) {
	t, err := p.Topology()
	if err != nil {
		return nil, err
	}
	return t.Generate()
}
