package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// twoBarFrame builds a minimal valid model: two columns sharing a beam.
func twoBarFrame() *Model {
	return &Model{
		Kind: "portal",
		Joints: []Joint{
			{ID: 1, X: 0, Y: 0, Z: 0},
			{ID: 2, X: 0, Y: 3, Z: 0},
			{ID: 3, X: 5, Y: 3, Z: 0},
			{ID: 4, X: 5, Y: 0, Z: 0},
		},
		Members: []Member{
			{ID: 1, Start: 1, End: 2, Role: RoleColumn},
			{ID: 2, Start: 2, End: 3, Role: RoleRafter},
			{ID: 3, Start: 4, End: 3, Role: RoleColumn},
		},
		Landmarks: map[string][]int{
			LandmarkBase:     {1, 4},
			LandmarkSupports: {1, 4},
		},
	}
}

func TestJointLookup(t *testing.T) {
	m := twoBarFrame()

	j, ok := m.Joint(2)
	require.True(t, ok)
	require.Equal(t, Joint{ID: 2, X: 0, Y: 3, Z: 0}, j)

	for _, id := range []int{0, -1, 5} {
		_, ok := m.Joint(id)
		require.False(t, ok, "id %d", id)
	}
}

func TestRoleMembers(t *testing.T) {
	m := twoBarFrame()
	groups := m.RoleMembers()

	require.Equal(t, []int{1, 3}, groups[RoleColumn])
	require.Equal(t, []int{2}, groups[RoleRafter])
	require.NotContains(t, groups, RoleDiagonal, "unused roles are absent")
}

func TestLandmarkLookup(t *testing.T) {
	m := twoBarFrame()
	require.Equal(t, []int{1, 4}, m.Landmark(LandmarkBase))
	require.Nil(t, m.Landmark(LandmarkRidge))

	empty := &Model{}
	require.Nil(t, empty.Landmark(LandmarkBase))
}

func TestRoleValid(t *testing.T) {
	for _, r := range Roles {
		require.True(t, r.Valid(), "role %q", r)
	}
	require.False(t, Role("").Valid())
	require.False(t, Role("strut").Valid())
}
