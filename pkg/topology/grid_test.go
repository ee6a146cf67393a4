package topology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtkb13/framegen/pkg/errors"
	"github.com/mtkb13/framegen/pkg/model"
)

func TestGridCounts(t *testing.T) {
	tests := []struct {
		name    string
		spec    GridSpec
		joints  int
		beamsX  int
		beamsZ  int
		columns int
	}{
		{
			name:    "SingleBaySingleStory",
			spec:    GridSpec{BaysX: 1, BaysZ: 1, Stories: 1, BayWidth: 5, BayDepth: 4, StoryHeight: 3},
			joints:  8,
			beamsX:  2,
			beamsZ:  2,
			columns: 4,
		},
		{
			name:    "ThreeByTwoByFour",
			spec:    GridSpec{BaysX: 3, BaysZ: 2, Stories: 4, BayWidth: 6, BayDepth: 5, StoryHeight: 3.2},
			joints:  60,      // 5 levels * 4 * 3
			beamsX:  4 * 9,   // per level: 3 bays * 3 z-lines
			beamsZ:  4 * 8,   // per level: 2 bays * 4 x-lines
			columns: 4 * 12,  // stories * grid positions
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.spec.Counts()
			require.Equal(t, tt.joints, c.Joints)
			require.Equal(t, tt.beamsX+tt.beamsZ+tt.columns, c.Members)

			m, err := tt.spec.Generate()
			require.NoError(t, err)

			groups := m.RoleMembers()
			require.Len(t, groups[model.RoleChordTop], tt.beamsX, "x-direction beams")
			require.Len(t, groups[model.RoleChordBottom], tt.beamsZ, "z-direction beams")
			require.Len(t, groups[model.RoleColumn], tt.columns)
		})
	}
}

func TestGridBaseLandmark(t *testing.T) {
	spec := GridSpec{BaysX: 2, BaysZ: 2, Stories: 3, BayWidth: 5, BayDepth: 5, StoryHeight: 3}
	m, err := spec.Generate()
	require.NoError(t, err)

	base := m.Landmark(model.LandmarkBase)
	require.Len(t, base, 9, "one base joint per grid position")

	for _, id := range base {
		j, ok := m.Joint(id)
		require.True(t, ok)
		require.Equal(t, 0.0, j.Y, "base joints at ground level")
	}
}

func TestGridGroundLevelHasNoBeams(t *testing.T) {
	spec := GridSpec{BaysX: 2, BaysZ: 1, Stories: 2, BayWidth: 5, BayDepth: 5, StoryHeight: 3}
	m, err := spec.Generate()
	require.NoError(t, err)

	for _, mb := range m.Members {
		if mb.Role == model.RoleColumn {
			continue
		}
		s, _ := m.Joint(mb.Start)
		require.Greater(t, s.Y, 0.0, "beams exist only at elevated levels")
	}
}

func TestGridValidation(t *testing.T) {
	tests := []struct {
		name string
		spec GridSpec
		code errors.Code
	}{
		{"ZeroBaysX", GridSpec{BaysX: 0, BaysZ: 1, Stories: 1, BayWidth: 5, BayDepth: 5, StoryHeight: 3}, errors.ErrCodeInvalidCount},
		{"TooManyStories", GridSpec{BaysX: 1, BaysZ: 1, Stories: 51, BayWidth: 5, BayDepth: 5, StoryHeight: 3}, errors.ErrCodeInvalidCount},
		{"ZeroBayWidth", GridSpec{BaysX: 1, BaysZ: 1, Stories: 1, BayWidth: 0, BayDepth: 5, StoryHeight: 3}, errors.ErrCodeInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.spec.Generate()
			require.Nil(t, m)
			require.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}
