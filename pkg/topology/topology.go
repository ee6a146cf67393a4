// Package topology generates structural models from dimensional and
// typological parameters.
//
// # Overview
//
// Each topology family (trusses, rigid frames, building grids, plate
// meshes) is a spec struct implementing the [Topology] interface: it
// validates its parameters, predicts exact joint and member counts, and
// synthesizes a [model.Model]. Generation is a pure function of the spec:
// no package-level state, no I/O, no randomness. Two calls with equal
// specs produce identical models, so callers may generate concurrently
// and cache results by parameter hash.
//
// # Failure semantics
//
// All parameter validation happens before any joint is created. A
// rejected call produces a structured error (pkg/errors) naming the
// parameter and constraint, and no partial model. After synthesis each
// generator re-checks the model invariants as a post-condition; a
// violation there is reported as an internal error and indicates a
// generator bug, never a user error.
package topology

import (
	"github.com/mtkb13/framegen/pkg/errors"
	"github.com/mtkb13/framegen/pkg/model"
)

// Kind identifies a topology family.
type Kind string

// Topology kinds.
const (
	KindWarren    Kind = "warren"
	KindPratt     Kind = "pratt"
	KindHowe      Kind = "howe"
	KindBowstring Kind = "bowstring"
	KindPortal    Kind = "portal"
	KindWarehouse Kind = "warehouse"
	KindGrid      Kind = "grid"
	KindPlate     Kind = "plate"
)

// Kinds lists every supported topology kind.
var Kinds = []Kind{
	KindWarren, KindPratt, KindHowe, KindBowstring,
	KindPortal, KindWarehouse, KindGrid, KindPlate,
}

// Parameter bounds shared by all generators. Dimensions are in the
// caller's length unit; the generator attaches no unit meaning.
const (
	MaxDimension = 1000.0 // any span, height, width, depth, or spacing
	MaxPanels    = 20     // truss panel count
	MaxBays      = 20     // frame bays per axis
	MaxStories   = 50     // grid stories
	MaxDivisions = 200    // plate mesh divisions per axis
)

// Counts is the exact joint, member, and plate tally a spec will produce.
// It is computable before generation, so previews and the HTTP API can
// show model size without synthesizing geometry.
type Counts struct {
	Joints  int `json:"joints" bson:"joints"`
	Members int `json:"members" bson:"members"`
	Plates  int `json:"plates,omitempty" bson:"plates,omitempty"`
}

// Topology is the shared contract of all topology specs.
//
// Validate must be free of side effects and must reject every parameter
// combination Generate cannot turn into a valid model. Counts is only
// defined for specs that pass Validate. Generate never returns a partial
// model: it either returns a model satisfying every invariant in
// pkg/model or an error.
type Topology interface {
	Kind() Kind
	Validate() error
	Counts() Counts
	Generate() (*model.Model, error)
}

// builder accumulates joints, members, and plates during one generation
// run. Identifier counters are local to the builder, so independent
// generations never interfere.
type builder struct {
	kind      Kind
	joints    []model.Joint
	members   []model.Member
	plates    []model.Plate
	landmarks map[string][]int
}

func newBuilder(kind Kind, c Counts) *builder {
	return &builder{
		kind:      kind,
		joints:    make([]model.Joint, 0, c.Joints),
		members:   make([]model.Member, 0, c.Members),
		landmarks: make(map[string][]int),
	}
}

// joint creates a joint at (x, y, z) and returns its id.
func (b *builder) joint(x, y, z float64) int {
	id := len(b.joints) + 1
	b.joints = append(b.joints, model.Joint{ID: id, X: x, Y: y, Z: z})
	return id
}

// member connects two joints with the given role and returns the member id.
func (b *builder) member(start, end int, role model.Role) int {
	id := len(b.members) + 1
	b.members = append(b.members, model.Member{ID: id, Start: start, End: end, Role: role})
	return id
}

// plate records a four-joint surface element and returns the plate id.
func (b *builder) plate(c0, c1, c2, c3 int) int {
	id := len(b.plates) + 1
	b.plates = append(b.plates, model.Plate{ID: id, Corners: [4]int{c0, c1, c2, c3}})
	return id
}

// mark appends joint ids to a named landmark set.
func (b *builder) mark(name string, ids ...int) {
	b.landmarks[name] = append(b.landmarks[name], ids...)
}

// finish assembles the model, verifies the predicted counts, and runs the
// invariant post-condition. connected selects whether single-component
// connectivity is part of the check.
func (b *builder) finish(want Counts, connected bool) (*model.Model, error) {
	m := &model.Model{
		Kind:      string(b.kind),
		Joints:    b.joints,
		Members:   b.members,
		Plates:    b.plates,
		Landmarks: b.landmarks,
	}

	got := Counts{Joints: len(m.Joints), Members: len(m.Members), Plates: len(m.Plates)}
	if got != want {
		return nil, errors.New(errors.ErrCodeInternal,
			"%s generator produced %+v, predicted %+v", b.kind, got, want)
	}

	var err error
	if connected {
		err = m.ValidateConnected()
	} else {
		err = m.Validate()
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"%s generator violated a model invariant", b.kind)
	}

	return m, nil
}
