// Package model defines the structural model produced by the topology
// generators: joints, members, plate elements, role classification, and
// named landmark sets.
//
// A Model is a value object. Generators build one in a single call and the
// result is read-only afterwards; nothing in this package mutates a Model
// once it has been handed to a caller. Joint, member, and plate identifiers
// are dense 1-based integers in independent numbering spaces, which is the
// contract downstream adapters (STAAD export, rendering, the HTTP API)
// rely on.
package model

import "slices"

// Role classifies a member's structural function. Every member carries
// exactly one role; downstream consumers use it to assign section
// properties and loads without re-deriving geometry.
type Role string

// Member roles.
const (
	RoleChordTop    Role = "chord-top"
	RoleChordBottom Role = "chord-bottom"
	RoleDiagonal    Role = "diagonal"
	RoleVertical    Role = "vertical"
	RoleColumn      Role = "column"
	RoleRafter      Role = "rafter"
	RolePurlin      Role = "purlin"
	RoleBracing     Role = "bracing"
	RolePlateEdge   Role = "plate-edge"
)

// Roles lists every valid role in declaration order.
var Roles = []Role{
	RoleChordTop, RoleChordBottom, RoleDiagonal, RoleVertical,
	RoleColumn, RoleRafter, RolePurlin, RoleBracing, RolePlateEdge,
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool { return slices.Contains(Roles, r) }

// Landmark names the generators record. Not every model carries every
// landmark; consumers should treat a missing name as an empty set.
const (
	LandmarkBottomChord = "bottom-chord" // truss bottom-chord joints, left to right
	LandmarkTopChord    = "top-chord"    // truss top-chord joints, left to right
	LandmarkSupports    = "supports"     // joints where supports belong
	LandmarkBase        = "base"         // column base joints
	LandmarkEaveLeft    = "eave-left"    // left eave joints, one per frame station
	LandmarkEaveRight   = "eave-right"   // right eave joints, one per frame station
	LandmarkRidge       = "ridge-line"   // ridge joints, one per frame station
	LandmarkWall        = "wall"         // plate mesh wall joints
	LandmarkSlab        = "slab"         // plate mesh slab joints
)

// Joint is a point in 3D space with a 1-based identifier assigned in
// creation order. Coordinates never change after creation.
type Joint struct {
	ID int     `json:"id" bson:"id"`
	X  float64 `json:"x" bson:"x"`
	Y  float64 `json:"y" bson:"y"`
	Z  float64 `json:"z" bson:"z"`
}

// Member is a directed pair of joint identifiers with its own 1-based
// identifier, numbered independently of joints. Start and End must name
// distinct existing joints.
type Member struct {
	ID    int  `json:"id" bson:"id"`
	Start int  `json:"start" bson:"start"`
	End   int  `json:"end" bson:"end"`
	Role  Role `json:"role" bson:"role"`
}

// Plate is a four-joint surface element (one unit cell of a plate mesh).
// Corners are listed counter-clockwise. Plates have their own 1-based
// numbering space, matching how plate meshers count elements separately
// from line members.
type Plate struct {
	ID      int    `json:"id" bson:"id"`
	Corners [4]int `json:"corners" bson:"corners"`
}

// Model is the complete output of one generation run.
//
// Landmarks maps a topology-specific name (for example "base" or
// "ridge-line") to the joint ids that form it, in creation order. Adapters
// use landmarks to assign boundary conditions and loads; the generator
// itself attaches no engineering meaning beyond the name.
type Model struct {
	Kind      string           `json:"kind" bson:"kind"`
	Joints    []Joint          `json:"joints" bson:"joints"`
	Members   []Member         `json:"members" bson:"members"`
	Plates    []Plate          `json:"plates,omitempty" bson:"plates,omitempty"`
	Landmarks map[string][]int `json:"landmarks,omitempty" bson:"landmarks,omitempty"`
}

// Joint returns the joint with the given id, or false when no such joint
// exists. Ids are dense and 1-based, so the lookup is a slice index.
func (m *Model) Joint(id int) (Joint, bool) {
	if id < 1 || id > len(m.Joints) {
		return Joint{}, false
	}
	return m.Joints[id-1], true
}

// RoleMembers groups member ids by role. Ids within each group preserve
// creation order. Roles with no members are absent from the map.
func (m *Model) RoleMembers() map[Role][]int {
	groups := make(map[Role][]int)
	for _, mb := range m.Members {
		groups[mb.Role] = append(groups[mb.Role], mb.ID)
	}
	return groups
}

// Landmark returns the joint ids recorded under name, or nil when the
// model has no such landmark.
func (m *Model) Landmark(name string) []int {
	if m.Landmarks == nil {
		return nil
	}
	return m.Landmarks[name]
}
