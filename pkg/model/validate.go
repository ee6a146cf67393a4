package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyModel is returned by [Model.Validate] when the model has no
	// joints. Every valid generation produces at least one joint.
	ErrEmptyModel = errors.New("model has no joints")

	// ErrNonContiguousJointID is returned by [Model.Validate] when joint
	// ids are not the dense sequence 1..len(joints) in slice order.
	ErrNonContiguousJointID = errors.New("joint ids must be contiguous from 1")

	// ErrNonContiguousMemberID is returned by [Model.Validate] when member
	// ids are not the dense sequence 1..len(members) in slice order.
	ErrNonContiguousMemberID = errors.New("member ids must be contiguous from 1")

	// ErrNonContiguousPlateID is returned by [Model.Validate] when plate
	// ids are not the dense sequence 1..len(plates) in slice order.
	ErrNonContiguousPlateID = errors.New("plate ids must be contiguous from 1")

	// ErrNonFiniteCoordinate is returned by [Model.Validate] when a joint
	// coordinate is NaN or infinite. Generators must never emit these for
	// valid inputs.
	ErrNonFiniteCoordinate = errors.New("joint coordinate is not finite")

	// ErrDanglingEndpoint is returned by [Model.Validate] when a member or
	// plate references a joint id that does not exist.
	ErrDanglingEndpoint = errors.New("endpoint references unknown joint")

	// ErrSelfLoop is returned by [Model.Validate] when a member connects a
	// joint to itself.
	ErrSelfLoop = errors.New("member connects a joint to itself")

	// ErrDuplicateMember is returned by [Model.Validate] when two members
	// share the same unordered joint pair. Correct connectivity synthesis
	// never produces overlapping members.
	ErrDuplicateMember = errors.New("duplicate member between joint pair")

	// ErrUnknownRole is returned by [Model.Validate] when a member carries
	// a role outside the declared set, including the empty role. Roles are
	// assigned at creation time and partition the member set.
	ErrUnknownRole = errors.New("member has unknown role")

	// ErrDisconnected is returned by [Model.Validate] when the member graph
	// does not form a single connected component. Connectivity is a
	// post-condition of every truss, frame, and grid generator, checked
	// here rather than assumed from construction order.
	ErrDisconnected = errors.New("member graph is not connected")
)

// Validate checks the structural invariants every generated model must
// hold: dense 1-based id spaces, finite coordinates, no dangling
// references, no self-loops, no duplicate members, and a known role on
// every member. It returns the first violation found. Connectivity is
// checked separately by [Model.ValidateConnected].
//
// A non-nil error from Validate on a generator's output indicates a bug in
// the generator, never a user input problem: all input validation happens
// before geometry synthesis begins.
func (m *Model) Validate() error {
	if len(m.Joints) == 0 {
		return ErrEmptyModel
	}

	for i, j := range m.Joints {
		if j.ID != i+1 {
			return fmt.Errorf("joint at index %d has id %d: %w", i, j.ID, ErrNonContiguousJointID)
		}
		if !finite(j.X) || !finite(j.Y) || !finite(j.Z) {
			return fmt.Errorf("joint %d at (%v, %v, %v): %w", j.ID, j.X, j.Y, j.Z, ErrNonFiniteCoordinate)
		}
	}

	type pair struct{ lo, hi int }
	seen := make(map[pair]int, len(m.Members))

	for i, mb := range m.Members {
		if mb.ID != i+1 {
			return fmt.Errorf("member at index %d has id %d: %w", i, mb.ID, ErrNonContiguousMemberID)
		}
		if _, ok := m.Joint(mb.Start); !ok {
			return fmt.Errorf("member %d start joint %d: %w", mb.ID, mb.Start, ErrDanglingEndpoint)
		}
		if _, ok := m.Joint(mb.End); !ok {
			return fmt.Errorf("member %d end joint %d: %w", mb.ID, mb.End, ErrDanglingEndpoint)
		}
		if mb.Start == mb.End {
			return fmt.Errorf("member %d at joint %d: %w", mb.ID, mb.Start, ErrSelfLoop)
		}
		if !mb.Role.Valid() {
			return fmt.Errorf("member %d role %q: %w", mb.ID, mb.Role, ErrUnknownRole)
		}
		p := pair{mb.Start, mb.End}
		if p.lo > p.hi {
			p.lo, p.hi = p.hi, p.lo
		}
		if prev, dup := seen[p]; dup {
			return fmt.Errorf("members %d and %d both connect joints %d-%d: %w",
				prev, mb.ID, p.lo, p.hi, ErrDuplicateMember)
		}
		seen[p] = mb.ID
	}

	for i, pl := range m.Plates {
		if pl.ID != i+1 {
			return fmt.Errorf("plate at index %d has id %d: %w", i, pl.ID, ErrNonContiguousPlateID)
		}
		for _, c := range pl.Corners {
			if _, ok := m.Joint(c); !ok {
				return fmt.Errorf("plate %d corner joint %d: %w", pl.ID, c, ErrDanglingEndpoint)
			}
		}
	}

	for name, ids := range m.Landmarks {
		for _, id := range ids {
			if _, ok := m.Joint(id); !ok {
				return fmt.Errorf("landmark %q joint %d: %w", name, id, ErrDanglingEndpoint)
			}
		}
	}

	return nil
}

// ValidateConnected runs [Model.Validate] and additionally verifies the
// member graph forms a single connected component. Truss, frame, and grid
// generators use this as their post-condition; plate meshes are exempt
// because wall and slab lattices are composed without shared joints.
func (m *Model) ValidateConnected() error {
	if err := m.Validate(); err != nil {
		return err
	}
	return m.checkConnected()
}

// checkConnected verifies the member graph forms a single component using
// breadth-first search from joint 1. Member direction is ignored.
func (m *Model) checkConnected() error {
	if len(m.Members) == 0 {
		if len(m.Joints) > 1 {
			return fmt.Errorf("%d joints with no members: %w", len(m.Joints), ErrDisconnected)
		}
		return nil
	}

	adj := make([][]int, len(m.Joints)+1)
	for _, mb := range m.Members {
		adj[mb.Start] = append(adj[mb.Start], mb.End)
		adj[mb.End] = append(adj[mb.End], mb.Start)
	}

	visited := make([]bool, len(m.Joints)+1)
	queue := []int{1}
	visited[1] = true
	reached := 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if !visited[next] {
				visited[next] = true
				reached++
				queue = append(queue, next)
			}
		}
	}

	if reached != len(m.Joints) {
		return fmt.Errorf("reached %d of %d joints from joint 1: %w",
			reached, len(m.Joints), ErrDisconnected)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
