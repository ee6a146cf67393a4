package topology

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtkb13/framegen/pkg/errors"
	"github.com/mtkb13/framegen/pkg/model"
)

func TestPortalFrame(t *testing.T) {
	m, err := PortalSpec{Span: 6, Height: 4}.Generate()
	require.NoError(t, err)

	require.Len(t, m.Joints, 4)
	require.Len(t, m.Members, 3)

	groups := m.RoleMembers()
	require.Len(t, groups[model.RoleColumn], 2)
	require.Len(t, groups[model.RoleRafter], 1)
	require.Len(t, m.Landmark(model.LandmarkSupports), 2)
}

func TestWarehouseFourBayScenario(t *testing.T) {
	// 4 bays at 25 spacing, eave 20, ridge 28, width 60: 5 stations,
	// 25 joints, 20 frame members (2 columns + 2 rafters per station),
	// plus the 3 longitudinal lines per bay keeping the stations tied.
	spec := WarehouseSpec{
		Bays:        4,
		BaySpacing:  25,
		Width:       60,
		EaveHeight:  20,
		RidgeHeight: 28,
	}
	m, err := spec.Generate()
	require.NoError(t, err)

	require.Len(t, m.Joints, 25, "5 joints per station")

	groups := m.RoleMembers()
	require.Len(t, groups[model.RoleColumn], 10)
	require.Len(t, groups[model.RoleRafter], 10)
	require.Len(t, groups[model.RolePurlin], 12, "eave-left, ridge, eave-right per bay")
	require.Len(t, m.Members, 32)

	// Roof slope: rise 8 over half-width 30.
	ridge := m.Landmark(model.LandmarkRidge)
	eave := m.Landmark(model.LandmarkEaveLeft)
	require.Len(t, ridge, 5)
	require.Len(t, eave, 5)

	rj, _ := m.Joint(ridge[0])
	ej, _ := m.Joint(eave[0])
	slope := math.Atan2(rj.Y-ej.Y, rj.Z-ej.Z) * 180 / math.Pi
	require.InDelta(t, 14.9, slope, 0.1)
}

func TestWarehouseRidgeAtEaveRejected(t *testing.T) {
	spec := WarehouseSpec{
		Bays:        4,
		BaySpacing:  25,
		Width:       60,
		EaveHeight:  20,
		RidgeHeight: 20,
	}
	m, err := spec.Generate()
	require.Nil(t, m, "flat roof must not produce a model")
	require.True(t, errors.Is(err, errors.ErrCodeInvalidDimension), "got %v", err)
}

func TestWarehousePurlins(t *testing.T) {
	spec := WarehouseSpec{
		Bays:          2,
		BaySpacing:    20,
		Width:         60,
		EaveHeight:    20,
		RidgeHeight:   28,
		Purlins:       true,
		PurlinSpacing: 10, // floor(30/10) = 3 intermediate lines per slope
	}
	require.Equal(t, 3, spec.purlinLines())

	m, err := spec.Generate()
	require.NoError(t, err)

	// 3 stations, 5 + 2*3 joints each.
	require.Len(t, m.Joints, 33)

	groups := m.RoleMembers()
	// Rafters are chained through the purlin joints: 4 segments per slope.
	require.Len(t, groups[model.RoleRafter], 3*2*4)
	// Longitudinal lines: 3 landmark lines + 2*3 intermediate, per bay.
	require.Len(t, groups[model.RolePurlin], 2*(3+6))

	// Purlin joints sit on the rafter line.
	for _, mb := range groups[model.RolePurlin] {
		member := m.Members[mb-1]
		s, _ := m.Joint(member.Start)
		e, _ := m.Joint(member.End)
		require.Equal(t, s.Y, e.Y, "purlins run level between stations")
		require.Equal(t, s.Z, e.Z, "purlins stay on their roof line")
	}
}

func TestWarehousePurlinFloorZeroOmitsSlopeLines(t *testing.T) {
	// Spacing wider than the half-width floors to zero intermediate
	// lines; this is omission, not an error.
	spec := WarehouseSpec{
		Bays:          2,
		BaySpacing:    20,
		Width:         60,
		EaveHeight:    20,
		RidgeHeight:   28,
		Purlins:       true,
		PurlinSpacing: 45,
	}
	require.Equal(t, 0, spec.purlinLines())

	m, err := spec.Generate()
	require.NoError(t, err)
	require.Len(t, m.Joints, 15, "no intermediate purlin joints")
	require.Len(t, m.RoleMembers()[model.RolePurlin], 6, "landmark lines only")
}

func TestWarehousePurlinSpacingValidation(t *testing.T) {
	base := WarehouseSpec{
		Bays: 2, BaySpacing: 20, Width: 60, EaveHeight: 20, RidgeHeight: 28,
		Purlins: true,
	}

	zero := base
	zero.PurlinSpacing = 0
	require.True(t, errors.Is(zero.Validate(), errors.ErrCodeInvalidSpacing))

	huge := base
	huge.PurlinSpacing = 61
	require.True(t, errors.Is(huge.Validate(), errors.ErrCodeInvalidSpacing))
}

func TestWarehouseBracing(t *testing.T) {
	spec := WarehouseSpec{
		Bays:        3,
		BaySpacing:  25,
		Width:       60,
		EaveHeight:  20,
		RidgeHeight: 28,
		Bracing:     true,
	}
	m, err := spec.Generate()
	require.NoError(t, err)

	braces := membersWithRole(m, model.RoleBracing)
	require.Len(t, braces, 12, "two X-braces per slope per bay")

	// Every brace spans adjacent stations between eave and ridge height.
	for _, br := range braces {
		s, _ := m.Joint(br.Start)
		e, _ := m.Joint(br.End)
		require.InDelta(t, 25, math.Abs(e.X-s.X), 1e-9, "brace crosses one bay")
		require.NotEqual(t, s.Y, e.Y, "brace ties eave to ridge")
	}
}
