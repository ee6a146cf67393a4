package elevation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtkb13/framegen/pkg/topology"
)

func TestDrawPortal(t *testing.T) {
	m, err := topology.PortalSpec{Span: 10, Height: 5}.Generate()
	require.NoError(t, err)

	out := Draw(m, Options{Width: 21, Height: 11})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 11)

	// Beam across the top, columns down the sides, supports at the base.
	require.Contains(t, lines[0], "-")
	require.True(t, strings.HasPrefix(lines[0], "·"))
	require.True(t, strings.HasSuffix(lines[0], "·"))
	require.Contains(t, lines[5], "|")
	require.True(t, strings.HasPrefix(lines[10], "^"))
	require.True(t, strings.HasSuffix(lines[10], "^"))
}

func TestDrawWarrenDiagonals(t *testing.T) {
	m, err := topology.TrussSpec{Type: topology.KindWarren, Span: 30, Height: 4, Panels: 5}.Generate()
	require.NoError(t, err)

	out := Draw(m, Options{Width: 61, Height: 9})
	require.Contains(t, out, "/")
	require.Contains(t, out, "\\")
	require.Contains(t, out, "-")
	require.Contains(t, out, "^")
}

func TestDrawDefaultsAndDegenerateSpans(t *testing.T) {
	m, err := topology.PortalSpec{Span: 4, Height: 3}.Generate()
	require.NoError(t, err)

	out := Draw(m, Options{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		require.LessOrEqual(t, len([]rune(line)), 72)
	}
}

func TestDrawWarehouseSideElevation(t *testing.T) {
	m, err := topology.WarehouseSpec{
		Bays: 2, BaySpacing: 20, Width: 30, EaveHeight: 10, RidgeHeight: 14,
	}.Generate()
	require.NoError(t, err)

	out := Draw(m, Options{Width: 41, Height: 15})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// The elevation drops Z, so the warehouse shows its long side: the
	// ridge line runs along the top row, eave lines lower, columns and
	// in-station rafters collapse to verticals, supports at the base.
	require.Contains(t, lines[0], "-")
	require.Contains(t, out, "|")
	require.True(t, strings.HasPrefix(lines[len(lines)-1], "^"))
}
